package handlers

import (
	"encoding/json"
	response "isignthis_psp/internal/adapter/http/dto/response"
	"isignthis_psp/internal/usecase"
	"isignthis_psp/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidCallback     = pkg.NewDomainErrorSimple("INVALID_CALLBACK", "Callback is invalid", http.StatusUnauthorized)
	errInvalidCallbackBody = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Callback body is not a JSON object", http.StatusBadRequest)
)

// CallbackHandler receives payment state notifications pushed by iSignThis.
//
// The gateway authenticates with "Authorization: Bearer <callback token>",
// the token we sent as downstream_auth_value when creating the payment.

type CallbackHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewCallbackHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *CallbackHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallbackHandler{usecase: uc, logger: logger}
}

// HandleCallback godoc
// @Summary      iSignThis payment callback
// @Tags         callbacks
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.CallbackResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /callbacks/isignthis [post]
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	valid, err := h.usecase.IsCallbackValid(c.Request.Header)
	if err != nil {
		appErr := mapPaymentError(err)
		h.logger.Warn("[payment][callback] rejected", zap.String("client_ip", c.ClientIP()), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !valid {
		h.logger.Warn("[payment][callback] invalid token", zap.String("client_ip", c.ClientIP()))
		c.JSON(errInvalidCallback.HTTPStatus, errInvalidCallback.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil || !isJSONObject(raw) {
		h.logger.Warn("[payment][callback] invalid body", zap.Int("body_len", len(raw)), zap.Error(err))
		c.JSON(errInvalidCallbackBody.HTTPStatus, errInvalidCallbackBody.ToHTTPError())
		return
	}

	payment := h.usecase.ParsePayment(raw)
	h.logger.Info("[payment][callback] accepted",
		zap.String("payment_id", payment.ID),
		zap.String("state", string(payment.State)),
		zap.String("event", payment.Event),
	)

	c.JSON(http.StatusOK, response.CallbackResponse{
		Success: true,
		Message: "Callback is valid",
		Payment: response.FromPayment(payment),
	})
}

func isJSONObject(raw []byte) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}
