package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway is the transport to the iSignThis API.
//
// Paths are relative to the configured base URL and start with a slash.
// Implementations return the raw response body of 2xx answers and a
// *entities.GatewayError of kind provider_error for anything else.
type IPaymentGateway interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}
