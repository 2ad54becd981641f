package routes

import (
	"context"
	"errors"
	_ "isignthis_psp/docs"
	"isignthis_psp/internal/adapter/http/handlers"
	"isignthis_psp/internal/config"
	"isignthis_psp/internal/infrastructure/payments"
	"isignthis_psp/internal/infrastructure/telemetry"
	"isignthis_psp/internal/usecase"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathPayments  = "/payments"
	PathCallbacks = "/callbacks"

	shutdownTimeout = 10 * time.Second
)

// Dependencies are the handlers mounted by NewRouter.
type Dependencies struct {
	PaymentHandler  *handlers.PaymentHandler
	CallbackHandler *handlers.CallbackHandler
	Logger          *zap.Logger
}

// Run wires the gateway client and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)
	gateway := payments.NewISignThisGateway(cfg.Gateway, logger, metrics)
	paymentUseCase := usecase.NewPaymentUseCase(cfg.Gateway, gateway, logger, metrics)

	router := NewRouter(Dependencies{
		PaymentHandler:  handlers.NewPaymentHandler(paymentUseCase, logger),
		CallbackHandler: handlers.NewCallbackHandler(paymentUseCase, logger),
		Logger:          logger,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http] server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("[http] shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[http] server forced to shutdown", zap.Error(err))
		return err
	}
	logger.Info("[http] server exited")
	return nil
}

// NewRouter builds the gin engine with middlewares, docs, metrics and the /v1 API.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, deps.PaymentHandler)
	addCallbackRoutes(v1, deps.CallbackHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestIDMiddleware())
	router.Use(telemetry.TracingMiddleware())
	router.Use(loggerMiddleware(logger))
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	if h == nil {
		return
	}
	group := rg.Group(PathPayments)
	{
		group.POST("", h.CreatePayment)
		group.POST("/recurring", h.CreateRecurringPayment)
		group.GET("/:id", h.GetPayment)
		group.POST("/:id/cancel", h.CancelPayment)
	}
}

func addCallbackRoutes(rg *gin.RouterGroup, h *handlers.CallbackHandler) {
	if h == nil {
		return
	}
	callbacks := rg.Group(PathCallbacks)
	{
		callbacks.POST("/isignthis", h.HandleCallback)
	}
}
