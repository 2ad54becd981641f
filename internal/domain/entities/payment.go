package entities

import (
	"encoding/json"
	"time"
)

// PaymentState is the client-side view of where a gateway payment stands.
//
// Domain notes:
//   - The gateway drives the lifecycle; this service only translates it.
//   - PaymentStateUnknown is the explicit "null" used when the gateway reports a
//     state we have no mapping for. It marshals as JSON null.

type PaymentState string

const (
	PaymentStateUnknown       PaymentState = ""
	PaymentStatePending       PaymentState = "pending"
	PaymentStateReviewing     PaymentState = "reviewing"
	PaymentStateRejected      PaymentState = "rejected"
	PaymentStateFailed        PaymentState = "failed"
	PaymentStateExpired       PaymentState = "expired"
	PaymentStateCancelled     PaymentState = "cancelled"
	PaymentStateCompleted     PaymentState = "completed"
	PaymentStateCompletedTest PaymentState = "completed_test"
)

// IsKnown reports whether the state came out of the mapping table.
func (s PaymentState) IsKnown() bool {
	return s != PaymentStateUnknown
}

func (s PaymentState) MarshalJSON() ([]byte, error) {
	if s == PaymentStateUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

func (s *PaymentState) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = PaymentStateUnknown
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = PaymentState(v)
	return nil
}

// Transaction is a single bank transaction attached to a payment.
// Amount is expressed in minor units (e.g. cents).
type Transaction struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Card is the card information reported by the gateway. All fields are empty
// when the gateway did not send a card reference.
type Card struct {
	Token       string `json:"token,omitempty"`
	Brand       string `json:"brand,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	BIN         string `json:"bin,omitempty"`
	Last4       string `json:"last4,omitempty"`
	RecurringID string `json:"recurring_id,omitempty"`
}

// Payment is the canonical payment representation handed to callers.
//
// Raw keeps the untouched gateway body for traceability/audit; callers that
// need to look the payment up again should store ID.

type Payment struct {
	ID                string          `json:"id"`
	AcquirerID        string          `json:"acquirer_id,omitempty"`
	State             PaymentState    `json:"state"`
	Event             string          `json:"event,omitempty"`
	ExpiryTime        *time.Time      `json:"expiry_time,omitempty"`
	RedirectURL       string          `json:"redirect_url,omitempty"`
	Transactions      []Transaction   `json:"transactions,omitempty"`
	KYCReviewIncluded bool            `json:"kyc_review_included"`
	Card              Card            `json:"card"`
	Raw               json.RawMessage `json:"raw,omitempty"`
}

// Handle returns a reference usable with lookup operations.
func (p Payment) Handle() PaymentHandle {
	return PaymentHandle{ID: p.ID}
}

// PaymentRef identifies a payment for lookups. It is either a PaymentID or a
// PaymentHandle; no other implementations exist.
type PaymentRef interface {
	PaymentID() string
	isPaymentRef()
}

// PaymentID is a bare gateway payment id.
type PaymentID string

func (id PaymentID) PaymentID() string { return string(id) }
func (PaymentID) isPaymentRef() {}

// PaymentHandle references a payment previously returned by this service.
type PaymentHandle struct {
	ID string
}

func (h PaymentHandle) PaymentID() string { return h.ID }
func (PaymentHandle) isPaymentRef() {}
