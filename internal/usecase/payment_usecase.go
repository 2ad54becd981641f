package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"isignthis_psp/internal/config"
	"isignthis_psp/internal/domain/entities"
	"isignthis_psp/internal/infrastructure/telemetry"
	"isignthis_psp/internal/usecase/interfaces"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	AuthorizationPath          = "/v1/authorization"
	RecurringAuthorizationPath = "/v1/recurring/authorization"

	transactionCompleteID = "transaction-complete"
)

var (
	ErrEmptyResponseBody     = errors.New("empty response body")
	ErrUnparsableResponse    = errors.New("couldn't parse response body")
	ErrErrorInResponseObject = errors.New("error in response object")
)

// IPaymentUseCase is the merchant-facing API of the gateway client.
//
// Requested behavior:
//   - Build the gateway request, send it, normalize the answer.
//   - Never keep state between calls; the gateway owns the payment lifecycle.

type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.Payment, error)
	ProcessRecurringPayment(ctx context.Context, req entities.RecurringPaymentRequest) (entities.Payment, error)
	GetPayment(ctx context.Context, ref entities.PaymentRef) (entities.Payment, error)
	CancelPayment(ctx context.Context, id string) error
	ParsePayment(raw json.RawMessage) entities.Payment
	IsCallbackValid(header http.Header) (bool, error)
}

type PaymentUseCase struct {
	gateway    interfaces.IPaymentGateway
	builder    *RequestBuilder
	normalizer *PaymentNormalizer
	validator  *CallbackValidator
	logger     *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(cfg config.Gateway, gateway interfaces.IPaymentGateway, logger *zap.Logger, metrics *telemetry.Metrics) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{
		gateway:    gateway,
		builder:    NewRequestBuilder(cfg),
		normalizer: NewPaymentNormalizer(logger, metrics),
		validator:  NewCallbackValidator(cfg.CallbackAuthToken, logger, metrics),
		logger:     logger,
	}
}

// WithClock replaces the clock used to stamp outbound transactions.
func (u *PaymentUseCase) WithClock(now func() time.Time) *PaymentUseCase {
	u.builder.WithClock(now)
	return u
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.Payment, error) {
	u.logger.Info("[payment][usecase] create payment start",
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
		zap.String("account_id", req.Account.ID),
	)
	body, err := u.builder.BuildPayment(req)
	if err != nil {
		u.logger.Warn("[payment][usecase] invalid create payment request", zap.Error(err))
		return entities.Payment{}, err
	}
	return u.post(ctx, "create payment", AuthorizationPath, body)
}

func (u *PaymentUseCase) ProcessRecurringPayment(ctx context.Context, req entities.RecurringPaymentRequest) (entities.Payment, error) {
	u.logger.Info("[payment][usecase] recurring payment start",
		zap.String("recurring_id", req.RecurringID),
		zap.String("account_id", req.Account.ID),
	)
	body, err := u.builder.BuildRecurringPayment(req)
	if err != nil {
		u.logger.Warn("[payment][usecase] invalid recurring payment request", zap.Error(err))
		return entities.Payment{}, err
	}
	return u.post(ctx, "recurring payment", RecurringAuthorizationPath, body)
}

func (u *PaymentUseCase) GetPayment(ctx context.Context, ref entities.PaymentRef) (entities.Payment, error) {
	if ref == nil || strings.TrimSpace(ref.PaymentID()) == "" {
		return entities.Payment{}, entities.NewModuleError(entities.ErrMissingPaymentID)
	}
	id := ref.PaymentID()

	raw, err := u.gateway.Get(ctx, paymentPath(id))
	if err != nil {
		u.logger.Error("[payment][usecase] get payment failed", zap.String("payment_id", id), zap.Error(err))
		return entities.Payment{}, err
	}
	payment, err := u.handleResponse(raw)
	if err != nil {
		u.logger.Error("[payment][usecase] get payment bad response", zap.String("payment_id", id), zap.Error(err))
		return entities.Payment{}, err
	}
	u.logger.Info("[payment][usecase] get payment success", zap.String("payment_id", payment.ID), zap.String("state", string(payment.State)))
	return payment, nil
}

// CancelPayment asks the gateway to cancel a pending payment. A payment that
// is already final yields an invalid_state error carrying the gateway message
// and HTTP diagnostics; it never matches ErrProvider.
func (u *PaymentUseCase) CancelPayment(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return entities.NewModuleError(entities.ErrMissingPaymentID)
	}

	_, err := u.gateway.Post(ctx, paymentPath(id)+"/cancel", struct{}{})
	if err == nil {
		u.logger.Info("[payment][usecase] cancel payment success", zap.String("payment_id", id))
		return nil
	}

	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusBadRequest {
		if msg, ok := transactionCompleteMessage(gwErr.ResponseBody); ok {
			u.logger.Warn("[payment][usecase] cancel payment rejected: payment is final", zap.String("payment_id", id), zap.String("reason", msg))
			return &entities.GatewayError{
				Kind:         entities.ErrorKindInvalidState,
				Message:      msg,
				StatusCode:   gwErr.StatusCode,
				RequestURL:   gwErr.RequestURL,
				RequestBody:  gwErr.RequestBody,
				ResponseBody: gwErr.ResponseBody,
			}
		}
	}
	u.logger.Error("[payment][usecase] cancel payment failed", zap.String("payment_id", id), zap.Error(err))
	return err
}

// ParsePayment normalizes a webhook body. Authenticate the request with
// IsCallbackValid first.
func (u *PaymentUseCase) ParsePayment(raw json.RawMessage) entities.Payment {
	return u.normalizer.Normalize(raw)
}

func (u *PaymentUseCase) IsCallbackValid(header http.Header) (bool, error) {
	return u.validator.Validate(header)
}

func (u *PaymentUseCase) post(ctx context.Context, op, path string, body entities.GatewayPaymentRequest) (entities.Payment, error) {
	raw, err := u.gateway.Post(ctx, path, body)
	if err != nil {
		u.logger.Error("[payment][usecase] "+op+" failed", zap.String("path", path), zap.Error(err))
		return entities.Payment{}, err
	}
	payment, err := u.handleResponse(raw)
	if err != nil {
		u.logger.Error("[payment][usecase] "+op+" bad response", zap.String("path", path), zap.Error(err))
		return entities.Payment{}, err
	}
	u.logger.Info("[payment][usecase] "+op+" success", zap.String("payment_id", payment.ID), zap.String("state", string(payment.State)))
	return payment, nil
}

// handleResponse rejects bodies that are not a payment object before handing
// them to the normalizer.
func (u *PaymentUseCase) handleResponse(raw json.RawMessage) (entities.Payment, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return entities.Payment{}, entities.NewGatewayError(entities.ErrorKindProvider, "", ErrEmptyResponseBody)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		gwErr := entities.NewGatewayError(entities.ErrorKindProvider, "", fmt.Errorf("%w: %v", ErrUnparsableResponse, err))
		gwErr.ResponseBody = string(raw)
		return entities.Payment{}, gwErr
	}
	if isTruthy(probe["error"]) {
		gwErr := entities.NewGatewayError(entities.ErrorKindProvider, "", ErrErrorInResponseObject)
		gwErr.ResponseBody = string(raw)
		return entities.Payment{}, gwErr
	}
	return u.normalizer.Normalize(raw), nil
}

func paymentPath(id string) string {
	return AuthorizationPath + "/" + url.PathEscape(id)
}

// transactionCompleteMessage looks for the "transaction-complete" reason in a
// cancel rejection. Both the legacy {"error":[{id: message}]} shape and the
// {"details":[{"id":..., "message":...}]} shape are accepted.
func transactionCompleteMessage(body string) (string, bool) {
	var parsed struct {
		Error json.RawMessage `json:"error"`
		Details []struct {
			ID      string `json:"id"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return "", false
	}

	// error may be any JSON value; only the array-of-maps shape is inspected.
	var legacy []map[string]any
	if err := json.Unmarshal(parsed.Error, &legacy); err == nil {
		for _, entry := range legacy {
			if msg, ok := entry[transactionCompleteID].(string); ok && msg != "" {
				return msg, true
			}
		}
	}
	for _, detail := range parsed.Details {
		if detail.ID == transactionCompleteID && detail.Message != "" {
			return detail.Message, true
		}
	}
	return "", false
}

// isTruthy follows JavaScript truthiness for a decoded JSON value.
func isTruthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
