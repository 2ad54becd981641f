package usecase

import (
	"isignthis_psp/internal/domain/entities"
	"isignthis_psp/internal/infrastructure/telemetry"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// CallbackValidator checks that an inbound webhook carries the callback token
// the gateway was given in downstream_auth_value.
type CallbackValidator struct {
	token   string
	logger  *zap.Logger
	metrics *telemetry.Metrics
}

func NewCallbackValidator(callbackAuthToken string, logger *zap.Logger, metrics *telemetry.Metrics) *CallbackValidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallbackValidator{token: callbackAuthToken, logger: logger, metrics: metrics}
}

// Validate reports whether header carries "Authorization: <scheme> <token>"
// with the expected token. A missing Authorization header is a request_error;
// a wrong token is not an error.
func (v *CallbackValidator) Validate(header http.Header) (bool, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		v.logger.Warn("[payment][callback] authorization header missing")
		return false, entities.NewGatewayError(entities.ErrorKindRequest, "", entities.ErrMissingAuthorizationHeader)
	}

	var token string
	if parts := strings.Split(authorization, " "); len(parts) > 1 {
		token = parts[1]
	}

	valid := token != "" && token == v.token
	v.metrics.IncCallbackValidation(valid)
	if !valid {
		v.logger.Warn("[payment][callback] callback is invalid", zap.Int("authorization_len", len(authorization)))
	}
	return valid, nil
}
