// Package handlers is made to handle cipher requests
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"vigenere-backend/crypto"
	"vigenere-backend/metrics"
	"vigenere-backend/models"
)

type CipherHandler struct {
	table      *crypto.Table
	defaultKey string
	maxLength  int
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// Options configures a CipherHandler.
type Options struct {
	DefaultKey    string
	MaxTextLength int
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

func NewCipherHandler(table *crypto.Table, opts Options) *CipherHandler {
	return &CipherHandler{
		table:      table,
		defaultKey: opts.DefaultKey,
		maxLength:  opts.MaxTextLength,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Vigenère cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) Alphabet(c *gin.Context) {
	a := h.table.Alphabet()
	c.JSON(http.StatusOK, models.AlphabetResponse{
		Size:    a.Len(),
		Symbols: a.String(),
	})
}

func (h *CipherHandler) Encode(c *gin.Context) {
	var req models.EncodeRequest
	if !h.bind(c, &req) {
		return
	}

	result, ok := h.run(c, metrics.OpEncode, req.Text, req.Key, crypto.Encode)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Text encoded",
		Result:  result,
	})
}

func (h *CipherHandler) Decode(c *gin.Context) {
	var req models.DecodeRequest
	if !h.bind(c, &req) {
		return
	}

	result, ok := h.run(c, metrics.OpDecode, req.Text, req.Key, crypto.Decode)
	if !ok {
		return
	}

	resp := models.CipherResponse{
		Success: true,
		Message: "Text decoded",
		Result:  result,
	}
	if req.Display {
		resp.Display = crypto.ForDisplay(result)
	}
	c.JSON(http.StatusOK, resp)
}

// bodyOverhead leaves room for the key and JSON framing on top of the text.
const bodyOverhead = 64 << 10

// bind decodes the JSON body, capped at what MaxTextLength symbols can take
// once JSON-escaped (at most 6 bytes each), and writes the error response
// itself when it fails.
func (h *CipherHandler) bind(c *gin.Context, obj any) bool {
	if h.maxLength > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.maxLength)*6+bodyOverhead)
	}

	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Message: fmt.Sprintf("Request body too large. Maximum size: %d bytes", tooLarge.Limit),
			})
			return false
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return false
	}
	return true
}

type transform func(text, key string, t *crypto.Table) (string, error)

// run applies fn and writes the error response itself when it fails.
func (h *CipherHandler) run(c *gin.Context, op, text, key string, fn transform) (string, bool) {
	n := utf8.RuneCountInString(text)
	if h.maxLength > 0 && n > h.maxLength {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Message: fmt.Sprintf("Text too large. Maximum length: %d symbols, got: %d", h.maxLength, n),
		})
		return "", false
	}

	if key == "" {
		key = h.defaultKey
	}

	result, err := fn(text, key, h.table)
	if h.metrics != nil {
		h.metrics.Observe(op, n, err)
	}
	if err != nil {
		h.log().Info("cipher request rejected", "operation", op, "error", err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return "", false
	}
	return result, true
}

func (h *CipherHandler) log() *slog.Logger {
	if h.logger == nil {
		return slog.Default()
	}
	return h.logger
}

func errorResponse(err error) models.ErrorResponse {
	resp := models.ErrorResponse{Message: err.Error()}

	var ise *crypto.InvalidSymbolError
	if errors.As(err, &ise) {
		resp.Message = fmt.Sprintf("Invalid %s: %v", ise.Source, err)
		resp.Invalid = &models.InvalidSymbol{
			Symbol:    string(ise.Symbol),
			CodePoint: fmt.Sprintf("U+%04X", ise.Symbol),
			Source:    ise.Source,
			Position:  ise.Position,
		}
	} else if errors.Is(err, crypto.ErrEmptyKey) {
		resp.Message = "Key is required"
	}
	return resp
}
