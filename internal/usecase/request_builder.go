package usecase

import (
	"isignthis_psp/internal/config"
	"isignthis_psp/internal/domain/currency"
	"isignthis_psp/internal/domain/entities"
	"strings"
	"time"
)

const (
	downstreamAuthType = "bearer"
	requestedWorkflow  = "SCA"
	identifierTypeID   = "ID"

	// The gateway rejects empty strings for these two fields.
	defaultTransactionReference = " "
	defaultAccountFullName      = "  "

	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

// RequestBuilder turns caller input into gateway request bodies. It performs
// no I/O and is safe for concurrent use.
type RequestBuilder struct {
	cfg config.Gateway
	now func() time.Time
}

func NewRequestBuilder(cfg config.Gateway) *RequestBuilder {
	return &RequestBuilder{cfg: cfg, now: time.Now}
}

// WithClock replaces the clock used for transaction.datetime.
func (b *RequestBuilder) WithClock(now func() time.Time) *RequestBuilder {
	b.now = now
	return b
}

func (b *RequestBuilder) BuildPayment(req entities.PaymentRequest) (entities.GatewayPaymentRequest, error) {
	if req.Amount == 0 || strings.TrimSpace(req.Currency) == "" {
		return entities.GatewayPaymentRequest{}, insufficientArguments("create payment")
	}
	body, err := b.build("create payment", req.ReturnURL, req.Workflow, req.AcquirerID, req.MerchantID, req.Transaction, req.Client, req.Account)
	if err != nil {
		return entities.GatewayPaymentRequest{}, err
	}

	body.Transaction.Amount = currency.ToMajorUnits(req.Amount, req.Currency)
	body.Transaction.Currency = req.Currency
	body.Transaction.InitRecurring = req.InitRecurring
	if req.CardToken != "" {
		body.Cardholder = &entities.GatewayCardholder{CardToken: req.CardToken}
	}
	return body, nil
}

// BuildRecurringPayment builds a charge against an existing recurring card.
// Amount and currency are fixed by the original authorization and not sent.
func (b *RequestBuilder) BuildRecurringPayment(req entities.RecurringPaymentRequest) (entities.GatewayPaymentRequest, error) {
	if strings.TrimSpace(req.RecurringID) == "" {
		return entities.GatewayPaymentRequest{}, insufficientArguments("process recurring payment")
	}
	body, err := b.build("process recurring payment", req.ReturnURL, req.Workflow, req.AcquirerID, req.MerchantID, req.Transaction, req.Client, req.Account)
	if err != nil {
		return entities.GatewayPaymentRequest{}, err
	}
	body.Transaction.RecurringID = req.RecurringID
	return body, nil
}

func (b *RequestBuilder) build(op, returnURL, workflow, acquirerID, merchantID string, tx *entities.TransactionRef, client entities.Client, account entities.Account) (entities.GatewayPaymentRequest, error) {
	if returnURL == "" || workflow == "" || client.IP == "" || account.ID == "" {
		return entities.GatewayPaymentRequest{}, insufficientArguments(op)
	}

	if acquirerID == "" {
		acquirerID = b.cfg.AcquirerID
	}
	if acquirerID == "" {
		return entities.GatewayPaymentRequest{}, entities.NewModuleError(entities.ErrMissingAcquirer)
	}
	if merchantID == "" {
		merchantID = b.cfg.MerchantID
	}

	txID, txRef := b.cfg.TransactionID, defaultTransactionReference
	if tx != nil {
		if tx.ID != "" {
			txID = tx.ID
		}
		if tx.Reference != "" {
			txRef = tx.Reference
		}
	}

	return entities.GatewayPaymentRequest{
		Workflow:   workflow,
		AcquirerID: acquirerID,
		Merchant: entities.GatewayMerchant{
			ID:        merchantID,
			Name:      b.cfg.MerchantName,
			ReturnURL: returnURL,
		},
		Transaction: entities.GatewayTransaction{
			ID:        txID,
			Datetime:  b.now().UTC().Format(isoMillis),
			Reference: txRef,
		},
		Client:              sanitizeClient(client),
		Account:             sanitizeAccount(account),
		DownstreamAuthType:  downstreamAuthType,
		DownstreamAuthValue: b.cfg.CallbackAuthToken,
		RequestedWorkflow:   requestedWorkflow,
	}, nil
}

// sanitizeClient keeps only ip, name, dob, country, email and address. The
// gateway wants country twice, as citizen and birth country.
func sanitizeClient(c entities.Client) entities.GatewayClient {
	return entities.GatewayClient{
		IP:             c.IP,
		Name:           c.Name,
		DOB:            c.DOB,
		Email:          c.Email,
		Address:        c.Address,
		CitizenCountry: c.Country,
		BirthCountry:   c.Country,
	}
}

func sanitizeAccount(a entities.Account) entities.GatewayAccount {
	fullName := a.Name
	if fullName == "" {
		fullName = defaultAccountFullName
	}
	return entities.GatewayAccount{
		Identifier:     a.ID,
		IdentifierType: identifierTypeID,
		Secret:         a.Secret,
		FullName:       fullName,
	}
}

func insufficientArguments(op string) error {
	return entities.NewGatewayError(entities.ErrorKindModule, op, entities.ErrInsufficientArguments)
}
