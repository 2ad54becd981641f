package usecase

import (
	"bytes"
	"encoding/json"
	"isignthis_psp/internal/domain/currency"
	"isignthis_psp/internal/domain/entities"
	"isignthis_psp/internal/infrastructure/telemetry"
	"strings"
	"time"

	"go.uber.org/zap"
)

const kycNotApplicable = "NA"

// PaymentNormalizer converts gateway payment objects into entities.Payment.
// It never fails: anything it cannot interpret is logged, counted and left
// empty, while the body itself is always kept in Payment.Raw.
type PaymentNormalizer struct {
	logger  *zap.Logger
	metrics *telemetry.Metrics
}

func NewPaymentNormalizer(logger *zap.Logger, metrics *telemetry.Metrics) *PaymentNormalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentNormalizer{logger: logger, metrics: metrics}
}

func (n *PaymentNormalizer) Normalize(raw json.RawMessage) entities.Payment {
	payment := entities.Payment{Raw: append(json.RawMessage(nil), raw...)}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		n.logger.Error("[payment][normalizer] undecodable payment object", zap.Int("body_len", len(raw)), zap.Error(err))
		n.metrics.IncUnmappedState("")
		return payment
	}
	gw := n.decodeResponse(obj)

	payment.ID = gw.ID
	payment.Event = gw.Event
	payment.RedirectURL = gw.RedirectURL

	payment.State = n.mapState(gw.State, gw.CompoundState)
	if payment.State == entities.PaymentStateCompleted && isJSONTrue(gw.TestTransaction) {
		payment.State = entities.PaymentStateCompletedTest
	}

	if gw.ExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, gw.ExpiresAt); err == nil {
			payment.ExpiryTime = &t
		} else {
			n.logger.Warn("[payment][normalizer] invalid expires_at", zap.String("payment_id", gw.ID), zap.String("expires_at", gw.ExpiresAt))
		}
	}

	payment.KYCReviewIncluded = gw.WorkflowState != nil && gw.WorkflowState.KYC != kycNotApplicable

	if ref := gw.CardReference; ref != nil {
		payment.Card = entities.Card{
			Token:       ref.CardToken,
			Brand:       ref.CardBrand,
			ExpiryDate:  ref.ExpiryDate,
			BIN:         prefix(ref.MaskedPAN, 6),
			Last4:       suffix(ref.MaskedPAN, 4),
			RecurringID: ref.RecurringID,
		}
	}

	if gw.Transactions != nil {
		payment.Transactions = make([]entities.Transaction, 0, len(gw.Transactions))
		for _, tx := range gw.Transactions {
			payment.Transactions = append(payment.Transactions, n.convertTransaction(gw.ID, tx))
		}
		if len(gw.Transactions) > 0 {
			payment.AcquirerID = gw.Transactions[0].AcquirerID
		}
	}

	return payment
}

// decodeResponse decodes the payment object one field at a time, so a
// mistyped value only loses itself. Undecodable transactions are skipped.
func (n *PaymentNormalizer) decodeResponse(obj map[string]json.RawMessage) entities.GatewayResponse {
	var gw entities.GatewayResponse
	n.decodeField("", obj, "id", &gw.ID)
	n.decodeField(gw.ID, obj, "state", &gw.State)
	n.decodeField(gw.ID, obj, "compound_state", &gw.CompoundState)
	n.decodeField(gw.ID, obj, "event", &gw.Event)
	n.decodeField(gw.ID, obj, "test_transaction", &gw.TestTransaction)
	n.decodeField(gw.ID, obj, "workflow_state", &gw.WorkflowState)
	n.decodeField(gw.ID, obj, "card_reference", &gw.CardReference)
	n.decodeField(gw.ID, obj, "expires_at", &gw.ExpiresAt)
	n.decodeField(gw.ID, obj, "redirect_url", &gw.RedirectURL)

	var txs []json.RawMessage
	if n.decodeField(gw.ID, obj, "transactions", &txs) && txs != nil {
		gw.Transactions = make([]entities.GatewayTransactionResult, 0, len(txs))
		for i, rawTx := range txs {
			var tx entities.GatewayTransactionResult
			if err := json.Unmarshal(rawTx, &tx); err != nil {
				n.logger.Warn("[payment][normalizer] invalid transaction", zap.String("payment_id", gw.ID), zap.Int("index", i), zap.Error(err))
				continue
			}
			gw.Transactions = append(gw.Transactions, tx)
		}
	}
	return gw
}

func (n *PaymentNormalizer) decodeField(paymentID string, obj map[string]json.RawMessage, key string, dst any) bool {
	v, ok := obj[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(v, dst); err != nil {
		n.logger.Warn("[payment][normalizer] invalid field", zap.String("payment_id", paymentID), zap.String("field", key), zap.Error(err))
		return false
	}
	return true
}

// mapState applies the base table first; compound states may only refine a
// state that was recognized.
func (n *PaymentNormalizer) mapState(state, compound string) entities.PaymentState {
	var mapped entities.PaymentState
	switch strings.ToLower(state) {
	case "pending":
		mapped = entities.PaymentStatePending
	case "rejected":
		mapped = entities.PaymentStateRejected
	case "failed":
		mapped = entities.PaymentStateFailed
	case "expired":
		mapped = entities.PaymentStateExpired
	case "cancelled":
		mapped = entities.PaymentStateCancelled
	case "manual_review":
		mapped = entities.PaymentStateReviewing
	case "success":
		mapped = entities.PaymentStateCompleted
	case "declined", "card_expired":
		mapped = entities.PaymentStateRejected
	case "processing_document":
		mapped = entities.PaymentStatePending
	case "preflight":
		// Received by the gateway but not yet validated.
		mapped = entities.PaymentStatePending
	default:
		n.logger.Error("[payment][normalizer] unknown payment state", zap.String("state", state), zap.String("compound_state", compound))
		n.metrics.IncUnmappedState(strings.ToLower(state))
		return entities.PaymentStateUnknown
	}

	switch strings.ToLower(compound) {
	case "pending.manual_review", "pending.manual_hold", "pending.risk_review":
		mapped = entities.PaymentStateReviewing
	}
	return mapped
}

func (n *PaymentNormalizer) convertTransaction(paymentID string, tx entities.GatewayTransactionResult) entities.Transaction {
	major := scalarString(tx.Amount)
	amount, err := currency.ToMinorUnits(major, tx.Currency)
	if err != nil {
		n.logger.Warn("[payment][normalizer] invalid transaction amount",
			zap.String("payment_id", paymentID),
			zap.String("bank_id", tx.BankID),
			zap.String("amount", major),
			zap.Error(err),
		)
	}
	return entities.Transaction{ID: tx.BankID, Amount: amount, Currency: tx.Currency}
}

// scalarString returns a JSON string's content, or the literal text of any
// other scalar ("0.70" and 0.70 both yield "0.70").
func scalarString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

func isJSONTrue(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("true"))
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func suffix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[len(s)-n:]
}
