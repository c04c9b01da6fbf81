// Package http provides HTTP handlers for token encode and decode operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokencrypt/internal/httputil"
	"github.com/allisson/tokencrypt/internal/token/http/dto"
	tokenUseCase "github.com/allisson/tokencrypt/internal/token/usecase"
	customValidation "github.com/allisson/tokencrypt/internal/validation"
)

// TokenHandler handles HTTP requests for the token pipeline.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(tokenUseCase tokenUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// EncodeHandler turns a plaintext into a token.
// POST /v1/tokens/encode - Returns 200 OK with the token.
func (h *TokenHandler) EncodeHandler(c *gin.Context) {
	var req dto.EncodeRequest
	if !h.bind(c, &req) {
		return
	}

	token, err := h.tokenUseCase.Encode(c.Request.Context(), req.Plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncodeResponse{Token: token})
}

// DecodeHandler recovers the plaintext carried by a token.
// POST /v1/tokens/decode - Returns 200 OK with the plaintext, 422 if the token is
// malformed or does not decrypt under the configured parameters.
func (h *TokenHandler) DecodeHandler(c *gin.Context) {
	var req dto.DecodeRequest
	if !h.bind(c, &req) {
		return
	}

	plaintext, err := h.tokenUseCase.Decode(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecodeResponse{Plaintext: plaintext})
}

// EncodeBatchHandler encodes several plaintexts; tokens are returned in request order.
// POST /v1/tokens/encode/batch - Any failing item fails the whole request.
func (h *TokenHandler) EncodeBatchHandler(c *gin.Context) {
	var req dto.EncodeBatchRequest
	if !h.bind(c, &req) {
		return
	}

	tokens, err := h.tokenUseCase.EncodeBatch(c.Request.Context(), req.Plaintexts)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncodeBatchResponse{Tokens: tokens})
}

// DecodeBatchHandler decodes several tokens; plaintexts are returned in request order.
// POST /v1/tokens/decode/batch - Any failing item fails the whole request.
func (h *TokenHandler) DecodeBatchHandler(c *gin.Context) {
	var req dto.DecodeBatchRequest
	if !h.bind(c, &req) {
		return
	}

	plaintexts, err := h.tokenUseCase.DecodeBatch(c.Request.Context(), req.Tokens)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecodeBatchResponse{Plaintexts: plaintexts})
}

type validatable interface {
	Validate() error
}

// bind parses the JSON body into req and validates it, writing the error response
// itself when either step fails.
func (h *TokenHandler) bind(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}
	return true
}
