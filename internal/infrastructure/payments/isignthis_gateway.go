package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"isignthis_psp/internal/config"
	"isignthis_psp/internal/domain/entities"
	"isignthis_psp/internal/infrastructure/telemetry"
	"isignthis_psp/internal/usecase/interfaces"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName        = "isignthis_psp/payments"
	defaultRetryWait  = 500 * time.Millisecond
	communicationFail = "provider communication error"
)

// ISignThisGateway is the HTTP transport to the iSignThis API. Every call
// builds its own request, so one instance is safe for concurrent use.
type ISignThisGateway struct {
	client  *resty.Client
	baseURL string
	logger  *zap.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

var _ interfaces.IPaymentGateway = (*ISignThisGateway)(nil)

func NewISignThisGateway(cfg config.Gateway, logger *zap.Logger, metrics *telemetry.Metrics) *ISignThisGateway {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("From", cfg.APIClient).
		SetAuthToken(cfg.AuthToken).
		SetLogger(logger.Sugar())

	// Only lookups are retried; authorizations and cancellations are not idempotent.
	if cfg.RetryCount > 0 {
		client.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(defaultRetryWait).
			SetRetryMaxWaitTime(time.Duration(cfg.RetryCount) * defaultRetryWait).
			AddRetryCondition(retryGetOnErrOr5xx)
	}

	logger.Info("[payment][gateway] iSignThis client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("retry_count", cfg.RetryCount),
	)

	return &ISignThisGateway{
		client:  client,
		baseURL: cfg.BaseURL,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
}

func (g *ISignThisGateway) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return g.do(ctx, http.MethodGet, path, nil)
}

func (g *ISignThisGateway) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, entities.NewModuleError(fmt.Errorf("encode request body: %w", err))
	}
	return g.do(ctx, http.MethodPost, path, payload)
}

func (g *ISignThisGateway) do(ctx context.Context, method, path string, payload []byte) (json.RawMessage, error) {
	url := g.baseURL + path
	ctx, span := g.tracer.Start(ctx, "isignthis "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", url),
		),
	)
	defer span.End()

	g.logger.Info("[payment][gateway] request start", zap.String("method", method), zap.String("url", url), zap.Int("payload_len", len(payload)))
	start := time.Now()

	req := g.client.R().SetContext(ctx)
	if payload != nil {
		req.SetBody(payload)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		g.metrics.ObserveGatewayRequest(method, "error", time.Since(start))
		g.logger.Error("[payment][gateway] request error", zap.String("method", method), zap.String("url", url), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, communicationFail)
		return nil, &entities.GatewayError{
			Kind:        entities.ErrorKindProvider,
			Message:     communicationFail,
			RequestURL:  url,
			RequestBody: payload,
			Err:         err,
		}
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status < 200 || status > 299 {
		g.metrics.ObserveGatewayRequest(method, "unexpected_status", time.Since(start))
		g.logger.Error("[payment][gateway] unexpected status",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", status),
			zap.ByteString("response_body", resp.Body()),
		)
		msg := fmt.Sprintf("expected HTTP status 2xx, received %d", status)
		span.SetStatus(codes.Error, msg)
		return nil, &entities.GatewayError{
			Kind:         entities.ErrorKindProvider,
			Message:      msg,
			StatusCode:   status,
			RequestURL:   url,
			RequestBody:  payload,
			ResponseBody: string(resp.Body()),
		}
	}

	g.metrics.ObserveGatewayRequest(method, "success", time.Since(start))
	g.logger.Info("[payment][gateway] request success", zap.String("method", method), zap.String("url", url), zap.Int("status", status))
	return json.RawMessage(resp.Body()), nil
}

func retryGetOnErrOr5xx(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || r.StatusCode() >= http.StatusInternalServerError
}
