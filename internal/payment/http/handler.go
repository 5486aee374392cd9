package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padelarena/booking-backend/internal/payment"
	"github.com/padelarena/booking-backend/internal/pkg/response"
)

// Webhook bodies are small JSON documents; cap reads defensively.
const maxBodyBytes = 1 << 20

type Handler struct {
	service payment.Service
	secret  string
}

func NewHandler(service payment.Service, secret string) *Handler {
	return &Handler{service: service, secret: secret}
}

// Webhook receives gateway deliveries. There is no session auth here; the
// HMAC signature over the raw body is the authentication.
func (h *Handler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	sig := c.GetHeader(payment.SignatureHeader)
	if sig == "" || !payment.VerifySignature(h.secret, body, sig) {
		response.Error(c, payment.ErrBadSignature)
		return
	}

	evt, err := payment.ParseEvent(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.HandleEvent(c.Request.Context(), evt); err != nil {
		if errors.Is(err, payment.ErrDuplicateEvent) {
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
