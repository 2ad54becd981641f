// Package config holds the immutable settings of the gateway client and the
// HTTP service around it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL      = "https://gateway.isignthis.com"
	DefaultMerchantName = "go-isignthis-psp"
	DefaultPort         = 8080
	DefaultTimeout      = 30 * time.Second
)

var ErrMissingConfiguration = errors.New("missing configuration options")

// Gateway is the configuration of the iSignThis client.
//
// MerchantID, APIClient, AuthToken and CallbackAuthToken are required.
// AuthToken authenticates our outbound calls; CallbackAuthToken is what the
// gateway must present when calling our webhook.

type Gateway struct {
	MerchantID        string
	APIClient         string
	AuthToken         string
	CallbackAuthToken string

	BaseURL       string
	AcquirerID    string
	MerchantName  string
	TransactionID string

	Timeout    time.Duration
	RetryCount int
}

// Config is the full service configuration.
type Config struct {
	Gateway      Gateway
	Port         int
	LogLevel     string
	OTLPEndpoint string
}

// New fills defaults and validates the required gateway settings. The
// returned value is never modified afterwards.
func New(gw Gateway) (Gateway, error) {
	var missing []string
	if gw.MerchantID == "" {
		missing = append(missing, "merchant id")
	}
	if gw.APIClient == "" {
		missing = append(missing, "api client")
	}
	if gw.AuthToken == "" {
		missing = append(missing, "auth token")
	}
	if gw.CallbackAuthToken == "" {
		missing = append(missing, "callback auth token")
	}
	if len(missing) > 0 {
		return Gateway{}, fmt.Errorf("%w: %s", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	if gw.BaseURL == "" {
		gw.BaseURL = DefaultBaseURL
	}
	gw.BaseURL = strings.TrimRight(gw.BaseURL, "/")
	if gw.MerchantName == "" {
		gw.MerchantName = DefaultMerchantName
	}
	if gw.Timeout <= 0 {
		gw.Timeout = DefaultTimeout
	}
	if gw.RetryCount < 0 {
		gw.RetryCount = 0
	}
	return gw, nil
}

// Load reads the configuration from environment variables.
//
// Supported env vars:
//   - ISIGNTHIS_MERCHANT_ID, ISIGNTHIS_API_CLIENT, ISIGNTHIS_AUTH_TOKEN,
//     ISIGNTHIS_CALLBACK_AUTH_TOKEN (required)
//   - ISIGNTHIS_BASE_URL (default: https://gateway.isignthis.com)
//   - ISIGNTHIS_ACQUIRER_ID, ISIGNTHIS_MERCHANT_NAME, ISIGNTHIS_TRANSACTION_ID
//   - ISIGNTHIS_TIMEOUT (Go duration, default: 30s), ISIGNTHIS_RETRY_COUNT (GET only, default: 0)
//   - PORT (default: 8080), LOG_LEVEL (default: info), OTEL_EXPORTER_OTLP_ENDPOINT
func Load() (Config, error) {
	gw, err := New(Gateway{
		MerchantID:        os.Getenv("ISIGNTHIS_MERCHANT_ID"),
		APIClient:         os.Getenv("ISIGNTHIS_API_CLIENT"),
		AuthToken:         os.Getenv("ISIGNTHIS_AUTH_TOKEN"),
		CallbackAuthToken: os.Getenv("ISIGNTHIS_CALLBACK_AUTH_TOKEN"),
		BaseURL:           os.Getenv("ISIGNTHIS_BASE_URL"),
		AcquirerID:        os.Getenv("ISIGNTHIS_ACQUIRER_ID"),
		MerchantName:      os.Getenv("ISIGNTHIS_MERCHANT_NAME"),
		TransactionID:     os.Getenv("ISIGNTHIS_TRANSACTION_ID"),
		Timeout:           getenvDuration("ISIGNTHIS_TIMEOUT", DefaultTimeout),
		RetryCount:        getenvInt("ISIGNTHIS_RETRY_COUNT", 0),
	})
	if err != nil {
		return Config{}, err
	}

	return Config{
		Gateway:      gw,
		Port:         getenvInt("PORT", DefaultPort),
		LogLevel:     getenvDefault("LOG_LEVEL", "info"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
