package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelarena/booking-backend/internal/payment"
)

const testSecret = "whsec_test"

type fakeService struct {
	events []payment.Event
	err    error
}

func (f *fakeService) HandleEvent(_ context.Context, evt payment.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func newTestRouter(svc payment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc, testSecret))
	return r
}

func deliver(r *gin.Engine, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/v1/payments/webhook", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(payment.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookAcceptsSignedEvent(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	body := `{"event":"checkout.completed","data":{"reference":"pay_1","booking_id":"b1","amount":16000,"currency":"XAF"}}`
	w := deliver(r, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	require.Len(t, svc.events, 1)
	assert.Equal(t, payment.EventCheckoutCompleted, svc.events[0].Type)
	require.NotNil(t, svc.events[0].Checkout)
	assert.Equal(t, "pay_1", svc.events[0].Checkout.Reference)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	body := `{"event":"checkout.completed","data":{"reference":"pay_1","booking_id":"b1"}}`

	t.Run("missing signature", func(t *testing.T) {
		w := deliver(r, body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong signature", func(t *testing.T) {
		w := deliver(r, body, signBody("other body"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	assert.Empty(t, svc.events, "unverified events must never reach the service")
}

func TestWebhookRejectsMalformedPayload(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	body := `{"event":"checkout.completed","data":{}}`
	w := deliver(r, body, signBody(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.events)
}

func TestWebhookAcknowledgesDuplicate(t *testing.T) {
	svc := &fakeService{err: payment.ErrDuplicateEvent}
	r := newTestRouter(svc)

	body := `{"event":"checkout.completed","data":{"reference":"pay_1","booking_id":"b1"}}`
	w := deliver(r, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"duplicate"}`, w.Body.String())
}
