package entities

// Client describes the end user paying. IP is required; the rest is optional.
type Client struct {
	IP        string `json:"ip"`
	Name      string `json:"name,omitempty"`
	DOB       string `json:"dob,omitempty"`
	Country   string `json:"country,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// Account is the merchant-side account of the paying user. ID is required.
type Account struct {
	ID     string `json:"id"`
	Secret string `json:"secret,omitempty"`
	Name   string `json:"name,omitempty"`
}

// TransactionRef is the merchant's own reference for a payment.
type TransactionRef struct {
	ID        string `json:"id,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// PaymentRequest is the input for creating a new payment.
//
// Amount is in minor units of Currency. AcquirerID and MerchantID override the
// configured defaults when set.

type PaymentRequest struct {
	Amount        int64           `json:"amount"`
	Currency      string          `json:"currency"`
	ReturnURL     string          `json:"return_url"`
	Workflow      string          `json:"workflow"`
	Client        Client          `json:"client"`
	Account       Account         `json:"account"`
	Transaction   *TransactionRef `json:"transaction,omitempty"`
	CardToken     string          `json:"card_token,omitempty"`
	InitRecurring bool            `json:"init_recurring,omitempty"`
	AcquirerID    string          `json:"acquirer_id,omitempty"`
	MerchantID    string          `json:"merchant_id,omitempty"`
}

// RecurringPaymentRequest charges a card previously authorized with
// InitRecurring, identified by the RecurringID reported on that payment's card.
type RecurringPaymentRequest struct {
	ReturnURL   string          `json:"return_url"`
	Workflow    string          `json:"workflow"`
	RecurringID string          `json:"recurring_id"`
	Client      Client          `json:"client"`
	Account     Account         `json:"account"`
	Transaction *TransactionRef `json:"transaction,omitempty"`
	AcquirerID  string          `json:"acquirer_id,omitempty"`
	MerchantID  string          `json:"merchant_id,omitempty"`
}
