package request

import "isignthis_psp/internal/domain/entities"

type ClientRequest struct {
	IP        string `json:"ip"`
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	UserAgent string `json:"user_agent"`
} // @name ClientRequest

type AccountRequest struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
	Name   string `json:"name"`
} // @name AccountRequest

type TransactionRequest struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
} // @name TransactionRequest

// CreatePaymentRequest is the payload of POST /v1/payments.
//
// Amount is in minor units of Currency (5000 DKK = 50.00 DKK). client.ip and
// account.id are required as well; the use case reports them as missing.

type CreatePaymentRequest struct {
	Amount        int64               `json:"amount" binding:"required"`
	Currency      string              `json:"currency" binding:"required"`
	ReturnURL     string              `json:"return_url" binding:"required"`
	Workflow      string              `json:"workflow" binding:"required"`
	Client        ClientRequest       `json:"client"`
	Account       AccountRequest      `json:"account"`
	Transaction   *TransactionRequest `json:"transaction,omitempty"`
	CardToken     string              `json:"card_token,omitempty"`
	InitRecurring bool                `json:"init_recurring,omitempty"`
	AcquirerID    string              `json:"acquirer_id,omitempty"`
	MerchantID    string              `json:"merchant_id,omitempty"`
} // @name CreatePaymentRequest

func (r CreatePaymentRequest) ToEntity() entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:        r.Amount,
		Currency:      r.Currency,
		ReturnURL:     r.ReturnURL,
		Workflow:      r.Workflow,
		Client:        r.Client.toEntity(),
		Account:       r.Account.toEntity(),
		Transaction:   r.Transaction.toEntity(),
		CardToken:     r.CardToken,
		InitRecurring: r.InitRecurring,
		AcquirerID:    r.AcquirerID,
		MerchantID:    r.MerchantID,
	}
}

// RecurringPaymentRequest is the payload of POST /v1/payments/recurring.
type RecurringPaymentRequest struct {
	ReturnURL   string              `json:"return_url" binding:"required"`
	Workflow    string              `json:"workflow" binding:"required"`
	RecurringID string              `json:"recurring_id" binding:"required"`
	Client      ClientRequest       `json:"client"`
	Account     AccountRequest      `json:"account"`
	Transaction *TransactionRequest `json:"transaction,omitempty"`
	AcquirerID  string              `json:"acquirer_id,omitempty"`
	MerchantID  string              `json:"merchant_id,omitempty"`
} // @name RecurringPaymentRequest

func (r RecurringPaymentRequest) ToEntity() entities.RecurringPaymentRequest {
	return entities.RecurringPaymentRequest{
		ReturnURL:   r.ReturnURL,
		Workflow:    r.Workflow,
		RecurringID: r.RecurringID,
		Client:      r.Client.toEntity(),
		Account:     r.Account.toEntity(),
		Transaction: r.Transaction.toEntity(),
		AcquirerID:  r.AcquirerID,
		MerchantID:  r.MerchantID,
	}
}

func (c ClientRequest) toEntity() entities.Client {
	return entities.Client{
		IP:        c.IP,
		Name:      c.Name,
		DOB:       c.DOB,
		Country:   c.Country,
		Email:     c.Email,
		Address:   c.Address,
		UserAgent: c.UserAgent,
	}
}

func (a AccountRequest) toEntity() entities.Account {
	return entities.Account{ID: a.ID, Secret: a.Secret, Name: a.Name}
}

func (t *TransactionRequest) toEntity() *entities.TransactionRef {
	if t == nil {
		return nil
	}
	return &entities.TransactionRef{ID: t.ID, Reference: t.Reference}
}
