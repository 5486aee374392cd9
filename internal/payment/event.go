package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/padelarena/booking-backend/internal/pkg/apperror"
)

var (
	ErrBadSignature   = apperror.New(http.StatusBadRequest, "invalid webhook signature")
	ErrMalformedEvent = apperror.New(http.StatusBadRequest, "malformed webhook payload")
	ErrDuplicateEvent = apperror.New(http.StatusOK, "event already processed")
)

// SignatureHeader carries the gateway's hex-encoded HMAC-SHA256 of the raw
// request body. The signature is the only authentication on this endpoint.
const SignatureHeader = "X-Webhook-Signature"

// Event kinds the gateway can deliver. The payload of each checkout event is
// a CheckoutData; anything else is acknowledged and ignored so the gateway
// does not retry forever when it grows new event types.
const (
	EventCheckoutCompleted = "checkout.completed"
	EventCheckoutFailed    = "checkout.failed"
	EventCheckoutExpired   = "checkout.expired"
)

// envelope is the raw wire shape: a type tag plus a payload whose structure
// depends on the tag.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// CheckoutData is the payload of every checkout.* event.
type CheckoutData struct {
	Reference string `json:"reference"`
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// Event is the parsed, tagged form of a webhook delivery.
type Event struct {
	Type     string
	Checkout *CheckoutData // set for checkout.* events, nil otherwise
}

// VerifySignature checks the HMAC-SHA256 signature over the raw body using a
// constant-time comparison.
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ParseEvent decodes a verified webhook body into its tagged form. Checkout
// events must carry a reference and a booking id; unknown event types parse
// successfully with Checkout left nil.
func ParseEvent(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if env.Event == "" {
		return Event{}, fmt.Errorf("%w: missing event type", ErrMalformedEvent)
	}

	evt := Event{Type: env.Event}

	switch env.Event {
	case EventCheckoutCompleted, EventCheckoutFailed, EventCheckoutExpired:
		var data CheckoutData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		if data.Reference == "" || data.BookingID == "" {
			return Event{}, fmt.Errorf("%w: checkout event missing reference or booking_id", ErrMalformedEvent)
		}
		evt.Checkout = &data
	}

	return evt, nil
}
