package handlers

import (
	"errors"
	request "isignthis_psp/internal/adapter/http/dto/request"
	response "isignthis_psp/internal/adapter/http/dto/response"
	"isignthis_psp/internal/domain/entities"
	"isignthis_psp/internal/usecase"
	"isignthis_psp/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// PaymentHandler exposes the gateway client to the merchant backend.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, logger: logger}
}

// CreatePayment godoc
// @Summary      Create a payment
// @Description  Creates an iSignThis authorization and returns the normalized payment with its redirect URL.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.CreatePaymentRequest  true  "Payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("[payment][handler] invalid create payload", zap.Error(err))
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.CreatePayment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.renderError(c, "create", err)
		return
	}
	h.logger.Info("[payment][handler] create success", zap.String("payment_id", payment.ID), zap.String("state", string(payment.State)))

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// CreateRecurringPayment godoc
// @Summary      Charge a recurring card
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.RecurringPaymentRequest  true  "Recurring payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/recurring [post]
func (h *PaymentHandler) CreateRecurringPayment(c *gin.Context) {
	var payload request.RecurringPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("[payment][handler] invalid recurring payload", zap.Error(err))
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.ProcessRecurringPayment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.renderError(c, "recurring", err)
		return
	}
	h.logger.Info("[payment][handler] recurring success", zap.String("payment_id", payment.ID), zap.String("state", string(payment.State)))

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Gateway payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	payment, err := h.usecase.GetPayment(c.Request.Context(), entities.PaymentID(id))
	if err != nil {
		h.renderError(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// CancelPayment godoc
// @Summary      Cancel a pending payment
// @Tags         payments
// @Param        id   path  string  true  "Gateway payment id"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/{id}/cancel [post]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.CancelPayment(c.Request.Context(), id); err != nil {
		h.renderError(c, "cancel", err)
		return
	}
	h.logger.Info("[payment][handler] cancel success", zap.String("payment_id", id))

	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) renderError(c *gin.Context, op string, err error) {
	appErr := mapPaymentError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[payment][handler] "+op+" failed", zap.String("kind", string(entities.KindOf(err))), zap.Error(err))
	} else {
		h.logger.Warn("[payment][handler] "+op+" rejected", zap.String("kind", string(entities.KindOf(err))), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	var gwErr *entities.GatewayError
	switch {
	case errors.Is(err, entities.ErrInsufficientArguments):
		return pkg.NewDomainError("INSUFFICIENT_ARGUMENTS", "Insufficient arguments", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingAcquirer):
		return pkg.NewDomainError("MISSING_ACQUIRER", "No acquirer id provided", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingPaymentID):
		return pkg.NewDomainError("MISSING_PAYMENT_ID", "Payment id not provided", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingAuthorizationHeader):
		return pkg.NewDomainError("AUTHORIZATION_HEADER_MISSING", "Authorization header missing", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidState) && errors.As(err, &gwErr):
		return pkg.NewDomainError("PAYMENT_INVALID_STATE", gwErr.Message, err, http.StatusConflict)
	case errors.Is(err, entities.ErrProvider):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
