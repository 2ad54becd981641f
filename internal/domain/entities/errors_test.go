package entities

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGatewayError_Is(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := error(&GatewayError{Kind: ErrorKindProvider, Message: "provider communication error", Err: cause})

	if !errors.Is(err, ErrProvider) {
		t.Fatalf("expected provider sentinel")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if errors.Is(err, ErrModule) {
		t.Fatalf("unexpected module sentinel")
	}
	if got := err.Error(); got != "provider communication error: dial tcp: refused" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestGatewayError_ErrorStatus(t *testing.T) {
	err := &GatewayError{Kind: ErrorKindProvider, Message: "expected HTTP status 2xx, received 500", StatusCode: 500, RequestURL: "https://gw/v1/authorization"}
	if got := err.Error(); got != "expected HTTP status 2xx, received 500 (status=500 url=https://gw/v1/authorization)" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestNewModuleError(t *testing.T) {
	err := NewModuleError(ErrMissingPaymentID)
	if !errors.Is(err, ErrModule) || !errors.Is(err, ErrMissingPaymentID) {
		t.Fatalf("expected module error wrapping ErrMissingPaymentID, got %v", err)
	}
	if err.Error() != ErrMissingPaymentID.Error() {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if KindOf(err) != ErrorKindModule {
		t.Fatalf("expected module kind, got %q", KindOf(err))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty kind for plain errors")
	}
}

func TestPaymentState_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		State PaymentState `json:"state"`
	}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"state":null}` {
		t.Fatalf("expected null state, got %s", b)
	}

	var out struct {
		State PaymentState `json:"state"`
	}
	if err := json.Unmarshal([]byte(`{"state":"completed"}`), &out); err != nil || out.State != PaymentStateCompleted {
		t.Fatalf("unexpected state %q (err %v)", out.State, err)
	}
}

func TestPaymentRef(t *testing.T) {
	refs := []PaymentRef{PaymentID("pay-1"), Payment{ID: "pay-1"}.Handle()}
	for _, ref := range refs {
		if ref.PaymentID() != "pay-1" {
			t.Fatalf("unexpected id %q", ref.PaymentID())
		}
	}
}
