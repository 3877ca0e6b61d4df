package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// vendorIdentity is the slice of the submission body the limiter keys on.
type vendorIdentity struct {
	VendorID string `json:"vendor_id"`
}

// SubmissionRateLimiter builds the per-vendor rate-limit middleware for the
// order submission route. The identifier is "vendor:<vendor_id>" from the
// request body (the body is restored for downstream binding); requests without
// a vendor ID fall back to the caller's IP so they cannot bypass the limit.
func SubmissionRateLimiter(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: extractVendorIdentifier,
		ErrorHandler: func(ctx echo.Context, _ error) error {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "unable to identify request origin",
			})
		},
		DenyHandler: func(ctx echo.Context, _ string, _ error) error {
			return ctx.JSON(http.StatusTooManyRequests, ErrorResponse{
				Code:    http.StatusTooManyRequests,
				Message: "rate limit exceeded, try again later",
			})
		},
	})
}

// extractVendorIdentifier peeks at the JSON body for the vendor ID and puts
// the body back so the handler can still bind it.
func extractVendorIdentifier(ctx echo.Context) (string, error) {
	req := ctx.Request()
	if req.Body == nil {
		return ctx.RealIP(), nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return "", err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	var identity vendorIdentity
	if unmarshalErr := json.Unmarshal(body, &identity); unmarshalErr != nil || identity.VendorID == "" {
		return ctx.RealIP(), nil
	}

	return "vendor:" + identity.VendorID, nil
}
