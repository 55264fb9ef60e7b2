package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/result"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteError_StatusPerKind(t *testing.T) {
	tests := []struct {
		name       string
		err        *result.Error
		wantStatus int
	}{
		{"not found", result.NotFound("missing"), http.StatusNotFound},
		{"validation failed", result.ValidationFailed(map[string][]string{"quantity": {"is invalid"}}), http.StatusBadRequest},
		{"conflict", result.Conflict("already cancelled"), http.StatusConflict},
		{"business rule", result.BusinessRule("INSUFFICIENT_STOCK", "not enough stock"), http.StatusBadRequest},
		{"unauthorized", result.Unauthorized("no key"), http.StatusUnauthorized},
		{"forbidden", result.Forbidden("admin only"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newEchoContext(t)

			require.NoError(t, writeError(ctx, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWriteError_BusinessRuleCarriesMachineCode(t *testing.T) {
	ctx, rec := newEchoContext(t)

	require.NoError(t, writeError(ctx, result.BusinessRule("INSUFFICIENT_STOCK", "requested 5, available 2")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INSUFFICIENT_STOCK"`)
}

func TestWriteValue_EmptyAnswersNoContent(t *testing.T) {
	ctx, rec := newEchoContext(t)

	res := result.Empty[[]servers.AuditEntry]()
	require.NoError(t, writeValue(ctx, res, http.StatusOK, func(entries []servers.AuditEntry) any {
		return entries
	}))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestFieldErrors_FlattensJoinedConstructorErrors(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsInvalidErrorWithCause("customerId is invalid", fmt.Errorf("0 is not greater than 0")),
		errors.Join(
			errs.NewValueIsRequiredError("items"),
			errs.NewValueIsInvalidError("items[1].quantity is invalid"),
		),
	)

	fields := fieldErrors(err)

	assert.Equal(t, []string{"0 is not greater than 0"}, fields["customerId"])
	assert.Equal(t, []string{"is required"}, fields["items"])
	assert.Equal(t, []string{"is invalid"}, fields["items[1].quantity"])
}

func TestFieldErrors_OutOfRange(t *testing.T) {
	fields := fieldErrors(errs.NewValueIsOutOfRangeError("quantity", 11, 1, 10))

	assert.Equal(t, []string{"must be between 1 and 10"}, fields["quantity"])
}

func TestFieldErrors_UntypedErrorFallsBackToRequest(t *testing.T) {
	fields := fieldErrors(errors.New("boom"))

	assert.Equal(t, []string{"boom"}, fields["request"])
}

func TestFieldErrorsFromValidator(t *testing.T) {
	payload := servers.NewOrder{
		CustomerId: 0,
		Items: []servers.NewOrderItem{
			{ProductId: 7, Quantity: 0, UnitPrice: -5},
		},
	}

	err := NewCustomValidator().Validate(&payload)
	require.Error(t, err)

	fields := fieldErrorsFromValidator(err)

	assert.Contains(t, fields, "customerId")
	assert.Contains(t, fields, "items[0].quantity")
	assert.Contains(t, fields, "items[0].unitPrice")
	assert.Equal(t, []string{"must satisfy gte=0"}, fields["items[0].unitPrice"])
}

func TestJSONFieldName(t *testing.T) {
	tests := []struct {
		namespace string
		want      string
	}{
		{"NewOrder.CustomerId", "customerId"},
		{"NewOrder.Items[0].Quantity", "items[0].quantity"},
		{"RestockRequest.Quantity", "quantity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, jsonFieldName(tt.namespace))
	}
}
