package handler

import (
	"io"

	"account-storefront/internal/adapter/http/middleware"
	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/apperror"
	"account-storefront/pkg/response"

	"github.com/gin-gonic/gin"
)

// CallbackHandler receives payment notifications pushed by the gateway.
type CallbackHandler struct {
	callbackSvc ports.CallbackService
}

func NewCallbackHandler(callbackSvc ports.CallbackService) *CallbackHandler {
	return &CallbackHandler{callbackSvc: callbackSvc}
}

// Payment handles POST /v1.0/transfer-va/payment.
// The raw body is passed through untouched; the signature covers its compacted form.
func (h *CallbackHandler) Payment(c *gin.Context) {
	headers := domain.CallbackHeaders{
		Timestamp:  c.GetHeader(domain.HeaderTimestamp),
		PartnerID:  c.GetHeader(domain.HeaderPartnerID),
		Signature:  c.GetHeader(domain.HeaderSignature),
		ExternalID: c.GetHeader(domain.HeaderExternalID),
		ChannelID:  c.GetHeader(domain.HeaderChannelID),
	}
	c.Set(middleware.CtxResourceID, headers.ExternalID)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, apperror.ErrInvalidBody(err))
		return
	}

	result := h.callbackSvc.HandlePayment(c.Request.Context(), headers, body)

	c.Set(middleware.CtxResponseCode, result.ResponseCode)
	response.Write(c, result.HTTPStatus, result.ResponseCode, result.ResponseMessage)
}
