package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderintake/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not found maps to 404",
			err:        errs.NewObjectNotFoundError("vendor_id", "123"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "conflict maps to 409",
			err:        errs.NewObjectAlreadyExistsError("order_id", "ORD-001"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid value maps to 400",
			err:        errs.NewValueIsInvalidError("priority"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "required value maps to 400",
			err:        errs.NewValueIsRequiredError("order_id"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "out of range maps to 400",
			err:        errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, rec := newTestContext(t)

			require.NoError(t, respondError(ctx, test.err))

			assert.Equal(t, test.wantStatus, rec.Code)
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	ctx, rec := newTestContext(t)

	require.NoError(t, respondError(ctx, errors.New("pq: password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRespondError_ValidationErrorsMapTo400(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}

	err := validator.New().Struct(payload{})
	require.Error(t, err)

	ctx, rec := newTestContext(t)
	require.NoError(t, respondError(ctx, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
