package httputil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/constguard/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "not found",
			err:            fmt.Errorf("%w: enhanced/Tau", apperrors.Wrap(apperrors.ErrNotFound, "constant not found")),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"not_found","message":"The requested resource was not found"}`,
		},
		{
			name:           "conflict",
			err:            apperrors.Wrap(apperrors.ErrConflict, "duplicate constant identifier"),
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"conflict","message":"A conflict occurred with existing data"}`,
		},
		{
			name:           "invalid input",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "constant kind mismatch"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"invalid_input","message":"constant kind mismatch: invalid input"}`,
		},
		{
			name:           "too many requests",
			err:            apperrors.ErrTooManyRequests,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"too_many_requests","message":"Request rate limit exceeded"}`,
		},
		{
			name:           "internal",
			err:            apperrors.Wrap(apperrors.ErrInternal, "invalid storage handle"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal_error","message":"An internal error occurred"}`,
		},
		{
			name:           "unknown",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal_error","message":"An internal error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/v1/constants/enhanced/Tau", nil)

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		HandleErrorGin(c, nil, logger)

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/constants?limit=0", nil)

	HandleBadRequestGin(c, errors.New("invalid limit parameter: must be between 1 and 100"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"error":"bad_request","message":"invalid limit parameter: must be between 1 and 100"}`,
		w.Body.String(),
	)
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/constants/basic/1Pi", nil)

	HandleValidationErrorGin(c, errors.New("name: must start with a letter"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"validation_error","message":"name: must start with a letter"}`, w.Body.String())
}

func TestHandleErrorGin_IncludesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string { return "req-123" })))
	router.GET("/v1/constants/:group/:name", func(c *gin.Context) {
		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrNotFound, "constant group not found"), nil)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/constants/nope/Pi", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t,
		`{"error":"not_found","message":"The requested resource was not found","request_id":"req-123"}`,
		w.Body.String(),
	)
}

func TestHandleErrorGin_WithoutRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.NotPanics(t, func() {
		HandleErrorGin(c, apperrors.ErrTooManyRequests, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too_many_requests","message":"Request rate limit exceeded"}`, w.Body.String())
}
