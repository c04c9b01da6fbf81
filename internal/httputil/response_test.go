package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/tokencrypt/internal/crypto/domain"
	apperrors "github.com/allisson/tokencrypt/internal/errors"
	tokenDomain "github.com/allisson/tokencrypt/internal/token/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
		exposeMessage bool
		expectedLevel string
	}{
		{
			name:          "InvalidToken",
			err:           fmt.Errorf("failed to decode token: %w", tokenDomain.ErrInvalidTokenCharacter),
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid_input",
			exposeMessage: true,
			expectedLevel: "WARN",
		},
		{
			name:          "InvalidPadding",
			err:           fmt.Errorf("failed to decrypt token: %w", cryptoDomain.ErrInvalidPadding),
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid_input",
			exposeMessage: true,
			expectedLevel: "WARN",
		},
		{
			name:          "NotFound",
			err:           apperrors.ErrNotFound,
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
			expectedLevel: "WARN",
		},
		{
			name:          "Canceled",
			err:           fmt.Errorf("%w: %w", apperrors.ErrCanceled, context.Canceled),
			expectedCode:  http.StatusRequestTimeout,
			expectedError: "canceled",
			expectedLevel: "WARN",
		},
		{
			name:          "DerivationFailure",
			err:           fmt.Errorf("failed to derive key: %w", cryptoDomain.ErrInvalidSalt),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
			expectedLevel: "ERROR",
		},
		{
			name:          "UnknownError",
			err:           errors.New("unexpected"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
			expectedLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeErrorResponse(t, w)
			assert.Equal(t, tt.expectedError, resp.Error)
			if tt.exposeMessage {
				assert.Equal(t, tt.err.Error(), resp.Message)
			} else {
				assert.NotEqual(t, tt.err.Error(), resp.Message)
			}
			assert.Contains(t, logs.String(), `"level":"`+tt.expectedLevel+`"`)
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorGin(c, nil, nil)

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "bad_request", resp.Error)
	assert.Equal(t, "unexpected EOF", resp.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, errors.New("token: must not be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "token: must not be blank.", resp.Message)
}
