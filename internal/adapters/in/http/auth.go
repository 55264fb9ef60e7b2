package http

import (
	"crypto/subtle"

	"storefront/internal/pkg/result"

	"github.com/labstack/echo/v4"
)

const apiKeyHeader = "X-Api-Key"

// adminOnly lists method and route pairs that require the admin key.
var adminOnly = map[string]bool{
	"GET /api/v1/orders/:orderId/audit":      true,
	"PUT /api/v1/inventory/:productId/stock": true,
}

// APIKeyAuth returns middleware enforcing the X-Api-Key header. userKey
// grants access to regular operations, adminKey additionally unlocks the
// admin-only ones. A missing or unknown key maps to Unauthorized, a user key
// on an admin route maps to Forbidden.
func APIKeyAuth(userKey, adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			key := ctx.Request().Header.Get(apiKeyHeader)

			isAdmin := keysEqual(key, adminKey)
			if !isAdmin && !keysEqual(key, userKey) {
				return writeError(ctx, result.Unauthorized("missing or unknown API key"))
			}

			if adminOnly[ctx.Request().Method+" "+ctx.Path()] && !isAdmin {
				return writeError(ctx, result.Forbidden("this operation requires an admin key"))
			}

			return next(ctx)
		}
	}
}

// keysEqual compares keys in constant time. An empty configured key never
// matches, so an unset admin key disables admin operations instead of
// opening them.
func keysEqual(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
