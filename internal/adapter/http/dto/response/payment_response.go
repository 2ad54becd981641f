package response

import (
	"encoding/json"
	"isignthis_psp/internal/domain/currency"
	"isignthis_psp/internal/domain/entities"
	"time"
)

type TransactionResponse struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	AmountMajor string `json:"amount_major"`
	Currency    string `json:"currency"`
} // @name TransactionResponse

type CardResponse struct {
	Token       string `json:"token,omitempty"`
	Brand       string `json:"brand,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	BIN         string `json:"bin,omitempty"`
	Last4       string `json:"last4,omitempty"`
	RecurringID string `json:"recurring_id,omitempty"`
} // @name CardResponse

// PaymentResponse renders a normalized payment. State is null when the gateway
// reported a state with no known mapping.
type PaymentResponse struct {
	ID                string                `json:"id"`
	AcquirerID        string                `json:"acquirer_id,omitempty"`
	State             entities.PaymentState `json:"state" swaggertype:"string"`
	Event             string                `json:"event,omitempty"`
	ExpiryTime        *time.Time            `json:"expiry_time,omitempty"`
	RedirectURL       string                `json:"redirect_url,omitempty"`
	Transactions      []TransactionResponse `json:"transactions"`
	KYCReviewIncluded bool                  `json:"kyc_review_included"`
	Card              CardResponse          `json:"card"`
	Raw               json.RawMessage       `json:"raw,omitempty" swaggertype:"object"`
} // @name PaymentResponse

// CallbackResponse acknowledges an authenticated gateway callback.
type CallbackResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Payment PaymentResponse `json:"payment"`
} // @name CallbackResponse

func FromPayment(p entities.Payment) PaymentResponse {
	txs := make([]TransactionResponse, 0, len(p.Transactions))
	for _, tx := range p.Transactions {
		txs = append(txs, TransactionResponse{
			ID:          tx.ID,
			Amount:      tx.Amount,
			AmountMajor: currency.ToMajorUnits(tx.Amount, tx.Currency),
			Currency:    tx.Currency,
		})
	}

	return PaymentResponse{
		ID:                p.ID,
		AcquirerID:        p.AcquirerID,
		State:             p.State,
		Event:             p.Event,
		ExpiryTime:        p.ExpiryTime,
		RedirectURL:       p.RedirectURL,
		Transactions:      txs,
		KYCReviewIncluded: p.KYCReviewIncluded,
		Card: CardResponse{
			Token:       p.Card.Token,
			Brand:       p.Card.Brand,
			ExpiryDate:  p.Card.ExpiryDate,
			BIN:         p.Card.BIN,
			Last4:       p.Card.Last4,
			RecurringID: p.Card.RecurringID,
		},
		Raw: p.Raw,
	}
}
