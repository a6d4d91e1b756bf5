package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"account-storefront/config"
	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rs/zerolog"
)

// Gateway call outcomes reported to PaymentMetrics.
const (
	OutcomeSuccess        = "success"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
	OutcomeSigningError   = "signing_error"
)

// VAServiceImpl implements ports.VirtualAccountService.
type VAServiceImpl struct {
	cfg      config.GatewayConfig
	sigSvc   ports.SignatureService
	ids      ports.IdentifierGenerator
	gateway  ports.PaymentGateway
	store    ports.TransactionStore
	metrics  ports.PaymentMetrics
	validate *validator.Validate
	now      func() time.Time
	log      zerolog.Logger
}

// NewVAService creates a new VAServiceImpl. metrics may be nil.
func NewVAService(
	cfg config.GatewayConfig,
	sigSvc ports.SignatureService,
	ids ports.IdentifierGenerator,
	gateway ports.PaymentGateway,
	store ports.TransactionStore,
	metrics ports.PaymentMetrics,
	log zerolog.Logger,
) *VAServiceImpl {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &VAServiceImpl{
		cfg:      cfg,
		sigSvc:   sigSvc,
		ids:      ids,
		gateway:  gateway,
		store:    store,
		metrics:  metrics,
		validate: newJSONValidator(),
		now:      time.Now,
		log:      log,
	}
}

// CreateVirtualAccount validates, signs and submits a create-va request.
// The upstream status and body are returned verbatim, 2xx or not.
func (s *VAServiceImpl) CreateVirtualAccount(ctx context.Context, req ports.CreateVARequest) (*ports.UpstreamResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, mandatoryFieldError(err)
	}
	if strings.TrimSpace(s.cfg.PrivateKey) == "" {
		return nil, apperror.ErrMissingConfig("gateway.private_key")
	}
	if s.cfg.PartnerID == "" {
		return nil, apperror.ErrMissingConfig("gateway.partner_id")
	}

	vaReq := s.buildRequest(req)
	timestamp := s.ids.Timestamp()
	externalID := s.ids.ExternalID()

	body, err := MinifyJSON(vaReq)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal create-va body: %w", err))
	}

	stringToSign, err := s.sigSvc.BuildStringToSign(http.MethodPost, domain.PathCreateVA, body, timestamp)
	if err != nil {
		s.metrics.ObserveGatewayCall(OutcomeSigningError, 0)
		return nil, apperror.ErrSigning(err)
	}
	signature, err := s.sigSvc.SignAsymmetric(stringToSign, s.cfg.PrivateKey)
	if err != nil {
		s.metrics.ObserveGatewayCall(OutcomeSigningError, 0)
		s.log.Error().Err(err).Str("trx_id", vaReq.TrxID).Msg("failed to sign create-va request")
		return nil, apperror.ErrSigning(err)
	}

	headers := map[string]string{
		"Content-Type":          "application/json",
		domain.HeaderTimestamp:  timestamp,
		domain.HeaderPartnerID:  s.cfg.PartnerID,
		domain.HeaderSignature:  signature,
		domain.HeaderExternalID: externalID,
		domain.HeaderChannelID:  s.cfg.ChannelID,
	}

	start := s.now()
	resp, err := s.gateway.Post(ctx, domain.PathCreateVA, headers, body)
	elapsed := s.now().Sub(start)
	if err != nil {
		s.metrics.ObserveGatewayCall(OutcomeTransportError, elapsed)
		s.log.Error().Err(err).
			Str("trx_id", vaReq.TrxID).
			Str("external_id", externalID).
			Msg("create-va request failed")
		return nil, apperror.ErrUpstreamUnavailable(err)
	}

	if !resp.IsSuccess() {
		s.metrics.ObserveGatewayCall(OutcomeUpstreamError, elapsed)
		s.log.Warn().
			Str("trx_id", vaReq.TrxID).
			Str("external_id", externalID).
			Int("status", resp.StatusCode).
			Msg("gateway rejected create-va")
		return resp, nil
	}

	s.metrics.ObserveGatewayCall(OutcomeSuccess, elapsed)

	// Post-process: record pending VA (best-effort)
	if err := s.store.RecordPending(ctx, domain.NewPendingRecord(&vaReq, externalID, s.now().UTC())); err != nil {
		s.log.Warn().Err(err).Str("trx_id", vaReq.TrxID).Msg("failed to record pending virtual account")
	}

	s.log.Info().
		Str("trx_id", vaReq.TrxID).
		Str("external_id", externalID).
		Str("channel", vaReq.AdditionalInfo.Channel).
		Msg("virtual account created")

	return resp, nil
}

// GetPaymentStatus returns the stored record for trxID.
func (s *VAServiceImpl) GetPaymentStatus(ctx context.Context, trxID string) (*domain.PaymentRecord, error) {
	rec, err := s.store.GetByTrxID(ctx, trxID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment record: %w", err))
	}
	if rec == nil {
		return nil, apperror.ErrNotFound("Virtual account")
	}
	return rec, nil
}

func (s *VAServiceImpl) buildRequest(req ports.CreateVARequest) domain.VirtualAccountRequest {
	channel := req.Channel
	if channel == "" {
		channel = s.cfg.DefaultChannel
	}
	if channel == "" {
		channel = domain.DefaultChannel
	}

	amount := *req.TotalAmount
	if amount.Currency == "" {
		amount.Currency = domain.DefaultCurrency
	}

	expiredDate := req.ExpiredDate
	if expiredDate == "" && s.cfg.ExpiryHours > 0 {
		expiredDate = s.ids.Expiry(s.cfg.ExpiryHours)
	}

	return domain.VirtualAccountRequest{
		CustomerNo:            req.CustomerNo,
		VirtualAccountName:    req.VirtualAccountName,
		TrxID:                 req.TrxID,
		TotalAmount:           amount,
		VirtualAccountTrxType: req.VirtualAccountTrxType,
		ExpiredDate:           expiredDate,
		AdditionalInfo:        domain.VAAdditionalInfo{Channel: channel},
	}
}

// newJSONValidator reports field errors by their JSON names.
func newJSONValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// mandatoryFieldError maps the first validation failure to 4002702.
func mandatoryFieldError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation(err.Error())
	}
	ns := verrs[0].Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return apperror.ErrInvalidMandatoryField(ns)
}

type nopMetrics struct{}

func (nopMetrics) ObserveCallback(string)                   {}
func (nopMetrics) ObserveGatewayCall(string, time.Duration) {}
