package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"account-storefront/config"
	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/apperror"

	"github.com/rs/zerolog"
)

// callbackAck is the fixed acknowledgement for an accepted callback.
var callbackAck = ports.CallbackResult{
	HTTPStatus:      http.StatusOK,
	ResponseCode:    apperror.CodeCallbackSuccess,
	ResponseMessage: "Successful",
}

// CallbackServiceImpl implements ports.CallbackService.
// Checks run in order: headers, signature, partner identity, then accept.
type CallbackServiceImpl struct {
	cfg     config.GatewayConfig
	sigSvc  ports.SignatureService
	store   ports.TransactionStore
	metrics ports.PaymentMetrics
	now     func() time.Time
	log     zerolog.Logger
}

// NewCallbackService creates a new CallbackServiceImpl. metrics may be nil.
func NewCallbackService(
	cfg config.GatewayConfig,
	sigSvc ports.SignatureService,
	store ports.TransactionStore,
	metrics ports.PaymentMetrics,
	log zerolog.Logger,
) *CallbackServiceImpl {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &CallbackServiceImpl{
		cfg:     cfg,
		sigSvc:  sigSvc,
		store:   store,
		metrics: metrics,
		now:     time.Now,
		log:     log,
	}
}

// HandlePayment verifies a payment callback and returns the acknowledgement.
// It never panics and never exposes internal error detail.
func (s *CallbackServiceImpl) HandlePayment(ctx context.Context, headers domain.CallbackHeaders, body []byte) (result ports.CallbackResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("external_id", headers.ExternalID).Msg("panic while handling payment callback")
			result = callbackFailure(apperror.InternalError(fmt.Errorf("panic: %v", r)))
		}
		s.metrics.ObserveCallback(result.ResponseCode)
	}()

	return s.handle(ctx, headers, body)
}

func (s *CallbackServiceImpl) handle(ctx context.Context, headers domain.CallbackHeaders, body []byte) ports.CallbackResult {
	log := s.log.With().
		Str("external_id", headers.ExternalID).
		Str("partner_id", headers.PartnerID).
		Str("channel_id", headers.ChannelID).
		Logger()

	// 1. Header check
	if missing := headers.Missing(); len(missing) > 0 {
		log.Warn().Strs("missing", missing).Msg("callback rejected: missing mandatory headers")
		return callbackFailure(apperror.ErrMissingHeaders())
	}

	// 2. Signature check
	switch {
	case s.cfg.CallbackSecretConfigured():
		if !s.sigSvc.VerifyCallback(body, headers.Timestamp, headers.Signature, s.cfg.ClientSecret, domain.PathPaymentCallback) {
			log.Warn().Str("timestamp", headers.Timestamp).Msg("callback rejected: invalid signature")
			return callbackFailure(apperror.ErrInvalidSignature())
		}
	case s.cfg.AllowUnsignedCallbacks:
		log.Warn().Msg("callback signature NOT verified: client secret not configured, accepting with reduced assurance")
	default:
		log.Error().Msg("callback rejected: client secret not configured and unsigned callbacks are disabled")
		return callbackFailure(apperror.InternalError(apperror.ErrMissingConfig("gateway.client_secret")))
	}

	// 3. Partner identity check
	if headers.PartnerID != s.cfg.PartnerID {
		log.Warn().Msg("callback rejected: partner id mismatch")
		return callbackFailure(apperror.ErrPartnerMismatch())
	}

	// 4. Accept
	var cb domain.VirtualAccountCallback
	if err := json.Unmarshal(body, &cb); err != nil {
		log.Warn().Err(err).Msg("callback rejected: body is not a valid payment notification")
		return callbackFailure(apperror.ErrInvalidBody(err))
	}
	if cb.TrxID == "" {
		log.Warn().Msg("callback rejected: trxId missing")
		return callbackFailure(apperror.ErrInvalidMandatoryField("trxId"))
	}

	recorded, err := s.store.RecordPayment(ctx, domain.NewPaidRecord(&cb, headers.ExternalID, s.now().UTC()))
	if err != nil {
		log.Error().Err(err).Str("trx_id", cb.TrxID).Msg("failed to record payment")
		return callbackFailure(apperror.InternalError(err))
	}
	if !recorded {
		log.Info().Str("trx_id", cb.TrxID).Msg("duplicate payment callback acknowledged")
		return callbackAck
	}

	log.Info().
		Str("trx_id", cb.TrxID).
		Str("payment_request_id", cb.PaymentRequestID).
		Str("amount", cb.PaidAmount.Value).
		Msg("payment callback accepted")

	return callbackAck
}

// callbackFailure converts an AppError into a callback result.
// Internal errors always carry the generic message.
func callbackFailure(err *apperror.AppError) ports.CallbackResult {
	return ports.CallbackResult{
		HTTPStatus:      err.HTTPStatus,
		ResponseCode:    err.Code,
		ResponseMessage: err.Message,
	}
}
