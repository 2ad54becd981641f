package usecase

import (
	"encoding/json"
	"isignthis_psp/internal/domain/entities"
	"isignthis_psp/internal/infrastructure/telemetry"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const pendingPaymentBody = `{
  "id": "c97f0bfc-c1ac-46c3-96d8-6605a63d380d",
  "uid": "c97f0bfc-c1ac-46c3-96d8-6605a63d380d",
  "mode": "registration",
  "original_message": {"merchant_id": "merchant_id", "transaction_id": "Test", "reference": "Card Verification"},
  "expires_at": "2016-03-06T13:36:59.196Z",
  "transactions": [
    {"acquirer_id": "clearhaus", "bank_id": "2774d451-5499-41a6-a37e-6a90f2b8673c", "response_code": "20000", "success": true, "amount": "0.70", "currency": "DKK", "message_class": "authorization-and-capture", "status_code": "20000"},
    {"acquirer_id": "clearhaus", "bank_id": "73f63c0b-7c59-416f-89e5-17dcc38b64ac", "response_code": "20000", "success": true, "amount": "0.30", "currency": "DKK", "message_class": "authorization-and-capture", "status_code": "20000"}
  ],
  "state": "PENDING",
  "compound_state": "PENDING.AWAIT_SECRET"
}`

func withFields(t *testing.T, base string, fields map[string]any) json.RawMessage {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(base), &obj))
	for k, v := range fields {
		obj[k] = v
	}
	b, err := json.Marshal(obj)
	require.NoError(t, err)
	return b
}

func TestPaymentNormalizer_Normalize_Pending(t *testing.T) {
	n := NewPaymentNormalizer(zap.NewNop(), nil)
	p := n.Normalize(json.RawMessage(pendingPaymentBody))

	expiry := time.Date(2016, 3, 6, 13, 36, 59, 196_000_000, time.UTC)
	require.Equal(t, "c97f0bfc-c1ac-46c3-96d8-6605a63d380d", p.ID)
	require.Equal(t, "clearhaus", p.AcquirerID)
	require.Equal(t, entities.PaymentStatePending, p.State)
	require.NotNil(t, p.ExpiryTime)
	require.True(t, expiry.Equal(*p.ExpiryTime))
	require.Empty(t, p.RedirectURL)
	require.Equal(t, []entities.Transaction{
		{ID: "2774d451-5499-41a6-a37e-6a90f2b8673c", Amount: 70, Currency: "DKK"},
		{ID: "73f63c0b-7c59-416f-89e5-17dcc38b64ac", Amount: 30, Currency: "DKK"},
	}, p.Transactions)
	require.False(t, p.KYCReviewIncluded)
	require.Equal(t, entities.Card{}, p.Card)
	require.JSONEq(t, pendingPaymentBody, string(p.Raw))
}

func TestPaymentNormalizer_StateMapping(t *testing.T) {
	cases := []struct {
		state    string
		compound string
		test     any
		want     entities.PaymentState
	}{
		{"PENDING", "PENDING.AWAIT_SECRET", nil, entities.PaymentStatePending},
		{"rejected", "", nil, entities.PaymentStateRejected},
		{"FAILED", "", nil, entities.PaymentStateFailed},
		{"expired", "", nil, entities.PaymentStateExpired},
		{"CANCELLED", "", nil, entities.PaymentStateCancelled},
		{"manual_review", "", nil, entities.PaymentStateReviewing},
		{"success", "", nil, entities.PaymentStateCompleted},
		{"SUCCESS", "", true, entities.PaymentStateCompletedTest},
		{"success", "", "true", entities.PaymentStateCompleted},
		{"success", "", false, entities.PaymentStateCompleted},
		{"expired", "", true, entities.PaymentStateExpired},
		{"declined", "", nil, entities.PaymentStateRejected},
		{"CARD_EXPIRED", "", nil, entities.PaymentStateRejected},
		{"PROCESSING_DOCUMENT", "", nil, entities.PaymentStatePending},
		{"PREFLIGHT", "", nil, entities.PaymentStatePending},
		{"PENDING", "PENDING.MANUAL_REVIEW", nil, entities.PaymentStateReviewing},
		{"PENDING", "PENDING.MANUAL_HOLD", nil, entities.PaymentStateReviewing},
		{"PENDING", "PENDING.RISK_REVIEW", nil, entities.PaymentStateReviewing},
		{"success", "PENDING.RISK_REVIEW", true, entities.PaymentStateReviewing},
		{"not_a_state", "PENDING.RISK_REVIEW", nil, entities.PaymentStateUnknown},
		{"", "", nil, entities.PaymentStateUnknown},
	}
	n := NewPaymentNormalizer(zap.NewNop(), nil)
	for _, tc := range cases {
		t.Run(tc.state+"/"+tc.compound, func(t *testing.T) {
			fields := map[string]any{"state": tc.state, "compound_state": tc.compound}
			if tc.test != nil {
				fields["test_transaction"] = tc.test
			}
			p := n.Normalize(withFields(t, pendingPaymentBody, fields))
			require.Equal(t, tc.want, p.State)
		})
	}
}

func TestPaymentNormalizer_UnknownState_Diagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	n := NewPaymentNormalizer(zap.New(core), metrics)

	p := n.Normalize(withFields(t, pendingPaymentBody, map[string]any{"state": "SOMETHING_NEW"}))

	require.Equal(t, entities.PaymentStateUnknown, p.State)
	require.Equal(t, 1, logs.FilterMessage("[payment][normalizer] unknown payment state").Len())
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.UnmappedStates.WithLabelValues("something_new")))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(out), `"state":null`)
}

func TestPaymentNormalizer_KYC(t *testing.T) {
	n := NewPaymentNormalizer(zap.NewNop(), nil)
	workflow := func(kyc string) map[string]any {
		return map[string]any{"workflow_state": map[string]any{
			"sca": "ACCEPTED", "charge": "ACCEPTED", "kyc": kyc, "capture": "ACCEPTED", "piv": "ACCEPTED",
		}}
	}

	require.True(t, n.Normalize(withFields(t, pendingPaymentBody, workflow("ACCEPTED"))).KYCReviewIncluded)
	require.True(t, n.Normalize(withFields(t, pendingPaymentBody, workflow("PENDING"))).KYCReviewIncluded)
	require.False(t, n.Normalize(withFields(t, pendingPaymentBody, workflow("NA"))).KYCReviewIncluded)
	require.False(t, n.Normalize(json.RawMessage(pendingPaymentBody)).KYCReviewIncluded)
}

func TestPaymentNormalizer_Card(t *testing.T) {
	n := NewPaymentNormalizer(zap.NewNop(), nil)

	t.Run("with recurring id", func(t *testing.T) {
		p := n.Normalize(withFields(t, pendingPaymentBody, map[string]any{"card_reference": map[string]any{
			"masked_pan":   "550000...0004",
			"card_token":   "f7fb955_15fc0a831d7__7fa8",
			"card_brand":   "MASTERCARD",
			"expiry_date":  "1217",
			"recurring_id": "f7fb955_15fc0a831d7__7fa7",
		}}))
		require.Equal(t, entities.Card{
			Token:       "f7fb955_15fc0a831d7__7fa8",
			Brand:       "MASTERCARD",
			ExpiryDate:  "1217",
			BIN:         "550000",
			Last4:       "0004",
			RecurringID: "f7fb955_15fc0a831d7__7fa7",
		}, p.Card)
	})

	t.Run("without recurring id", func(t *testing.T) {
		p := n.Normalize(withFields(t, pendingPaymentBody, map[string]any{"card_reference": map[string]any{
			"masked_pan":  "123456...9876",
			"card_token":  "token",
			"card_brand":  "VISA",
			"expiry_date": "0721",
		}}))
		require.Equal(t, "123456", p.Card.BIN)
		require.Equal(t, "9876", p.Card.Last4)
		require.Empty(t, p.Card.RecurringID)

		out, err := json.Marshal(p.Card)
		require.NoError(t, err)
		require.NotContains(t, string(out), "recurring_id")
	})

	t.Run("short masked pan", func(t *testing.T) {
		p := n.Normalize(withFields(t, pendingPaymentBody, map[string]any{"card_reference": map[string]any{
			"masked_pan": "123",
		}}))
		require.Equal(t, "123", p.Card.BIN)
		require.Equal(t, "123", p.Card.Last4)
	})
}

func TestPaymentNormalizer_EventAndEmptyTransactions(t *testing.T) {
	body := `{
	  "id": "48c72c5b-b618-4ccc-9419-88f17536dde0",
	  "transactions": [],
	  "state": "PENDING",
	  "event": "transaction_accepted",
	  "compound_state": "PENDING.VALIDATED_TRANSACTION",
	  "redirect_url": "https://stage-verify.isignthis.com/landing/48c72c5b-b618-4ccc-9419-88f17536dde0"
	}`
	p := NewPaymentNormalizer(nil, nil).Normalize(json.RawMessage(body))

	require.Equal(t, entities.PaymentStatePending, p.State)
	require.Equal(t, "transaction_accepted", p.Event)
	require.Empty(t, p.AcquirerID)
	require.Nil(t, p.ExpiryTime)
	require.NotNil(t, p.Transactions)
	require.Empty(t, p.Transactions)
	require.Equal(t, "https://stage-verify.isignthis.com/landing/48c72c5b-b618-4ccc-9419-88f17536dde0", p.RedirectURL)
}

func TestPaymentNormalizer_Undecodable(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"PENDING"`, `null`, `{`} {
		core, logs := observer.New(zapcore.ErrorLevel)
		n := NewPaymentNormalizer(zap.New(core), nil)

		raw := json.RawMessage(body)
		p := n.Normalize(raw)

		require.Equal(t, entities.PaymentStateUnknown, p.State, body)
		require.Empty(t, p.ID, body)
		require.Equal(t, raw, p.Raw, body)
		require.Equal(t, 1, logs.FilterMessage("[payment][normalizer] undecodable payment object").Len(), body)
	}
}

func TestPaymentNormalizer_MistypedFields(t *testing.T) {
	t.Run("mistyped fields only lose themselves", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		n := NewPaymentNormalizer(zap.New(core), nil)

		p := n.Normalize(json.RawMessage(`{"id":"pay-1","state":"SUCCESS","event":42,"expires_at":["x"],"redirect_url":"https://x"}`))

		require.Equal(t, "pay-1", p.ID)
		require.Equal(t, entities.PaymentStateCompleted, p.State)
		require.Equal(t, "https://x", p.RedirectURL)
		require.Empty(t, p.Event)
		require.Nil(t, p.ExpiryTime)
		require.Equal(t, 2, logs.FilterMessage("[payment][normalizer] invalid field").Len())
	})

	t.Run("numeric amount and string success", func(t *testing.T) {
		body := `{"id":"pay-1","state":"SUCCESS","redirect_url":"https://x","transactions":[
		  {"acquirer_id":"clearhaus","bank_id":"b-1","success":"true","amount":0.70,"currency":"DKK"}
		]}`
		p := NewPaymentNormalizer(nil, nil).Normalize(json.RawMessage(body))

		require.Equal(t, "pay-1", p.ID)
		require.Equal(t, entities.PaymentStateCompleted, p.State)
		require.Equal(t, "https://x", p.RedirectURL)
		require.Equal(t, "clearhaus", p.AcquirerID)
		require.Equal(t, []entities.Transaction{{ID: "b-1", Amount: 70, Currency: "DKK"}}, p.Transactions)
	})

	t.Run("bad transaction is skipped", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		n := NewPaymentNormalizer(zap.New(core), nil)

		body := `{"id":"pay-1","state":"PENDING","transactions":[
		  {"bank_id":7,"amount":"0.70","currency":"DKK"},
		  {"bank_id":"b-2","amount":"0.30","currency":"DKK"}
		]}`
		p := n.Normalize(json.RawMessage(body))

		require.Equal(t, "pay-1", p.ID)
		require.Equal(t, entities.PaymentStatePending, p.State)
		require.Equal(t, []entities.Transaction{{ID: "b-2", Amount: 30, Currency: "DKK"}}, p.Transactions)
		require.Equal(t, 1, logs.FilterMessage("[payment][normalizer] invalid transaction").Len())
	})
}
