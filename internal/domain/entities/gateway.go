package entities

import "encoding/json"

// Wire shapes exchanged with the iSignThis gateway.
//
// Request side: field names follow the gateway API. The gateway rejects empty
// strings for transaction.reference and account.full_name, so the builder fills
// placeholders instead of omitting them.

type GatewayPaymentRequest struct {
	Workflow            string             `json:"workflow"`
	AcquirerID          string             `json:"acquirer_id"`
	Merchant            GatewayMerchant    `json:"merchant"`
	Transaction         GatewayTransaction `json:"transaction"`
	Client              GatewayClient      `json:"client"`
	Account             GatewayAccount     `json:"account"`
	Cardholder          *GatewayCardholder `json:"cardholder,omitempty"`
	DownstreamAuthType  string             `json:"downstream_auth_type"`
	DownstreamAuthValue string             `json:"downstream_auth_value"`
	RequestedWorkflow   string             `json:"requested_workflow"`
}

type GatewayMerchant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ReturnURL string `json:"return_url"`
}

type GatewayTransaction struct {
	ID            string `json:"id"`
	Datetime      string `json:"datetime"`
	Amount        string `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	Reference     string `json:"reference"`
	InitRecurring bool   `json:"init_recurring,omitempty"`
	RecurringID   string `json:"recurring_id,omitempty"`
}

// GatewayClient has no country field: the gateway wants citizen and birth
// country separately.
type GatewayClient struct {
	IP             string `json:"ip"`
	Name           string `json:"name"`
	DOB            string `json:"dob,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address"`
	CitizenCountry string `json:"citizen_country,omitempty"`
	BirthCountry   string `json:"birth_country,omitempty"`
}

type GatewayAccount struct {
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifier_type"`
	Secret         string `json:"secret,omitempty"`
	FullName       string `json:"full_name"`
}

type GatewayCardholder struct {
	CardToken string `json:"card_token"`
}

// GatewayResponse is the payment object returned by the gateway and delivered
// by its webhooks. It is untrusted input: every field may be missing.
// TestTransaction is kept raw because only a literal JSON true counts.
type GatewayResponse struct {
	ID              string                     `json:"id"`
	State           string                     `json:"state"`
	CompoundState   string                     `json:"compound_state"`
	Event           string                     `json:"event"`
	TestTransaction json.RawMessage            `json:"test_transaction"`
	WorkflowState   *GatewayWorkflowState      `json:"workflow_state"`
	CardReference   *GatewayCardReference      `json:"card_reference"`
	Transactions    []GatewayTransactionResult `json:"transactions"`
	ExpiresAt       string                     `json:"expires_at"`
	RedirectURL     string                     `json:"redirect_url"`
}

// GatewayWorkflowState holds the per-step review status
// (NA / PENDING / ACCEPTED / FAILED / EXPIRED).
type GatewayWorkflowState struct {
	SCA     string `json:"sca"`
	Charge  string `json:"charge"`
	KYC     string `json:"kyc"`
	Capture string `json:"capture"`
	PIV     string `json:"piv"`
}

type GatewayCardReference struct {
	CardBrand   string `json:"card_brand"`
	CardToken   string `json:"card_token"`
	MaskedPAN   string `json:"masked_pan"`
	ExpiryDate  string `json:"expiry_date"`
	RecurringID string `json:"recurring_id"`
}

// GatewayTransactionResult keeps Success and Amount raw: the gateway has sent
// both as strings and as JSON scalars.
type GatewayTransactionResult struct {
	AcquirerID   string          `json:"acquirer_id"`
	BankID       string          `json:"bank_id"`
	ResponseCode string          `json:"response_code"`
	Success      json.RawMessage `json:"success"`
	Amount       json.RawMessage `json:"amount"`
	Currency     string          `json:"currency"`
	MessageClass string          `json:"message_class"`
	StatusCode   string          `json:"status_code"`
}
