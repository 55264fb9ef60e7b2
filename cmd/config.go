package cmd

type Config struct {
	HTTPPort             string
	DBDriver             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	SQLitePath           string
	APIKey               string
	AdminAPIKey          string
	StaleOrderTTLMinutes string
	AuditRetentionDays   string
}
