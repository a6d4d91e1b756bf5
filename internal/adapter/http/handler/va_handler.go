package handler

import (
	"encoding/json"
	"io"

	"account-storefront/internal/adapter/http/dto"
	"account-storefront/internal/adapter/http/middleware"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/apperror"
	"account-storefront/pkg/response"

	"github.com/gin-gonic/gin"
)

// VAHandler handles virtual account endpoints.
type VAHandler struct {
	vaSvc ports.VirtualAccountService
}

// NewVAHandler creates a new VAHandler.
func NewVAHandler(vaSvc ports.VirtualAccountService) *VAHandler {
	return &VAHandler{vaSvc: vaSvc}
}

// CreateVA handles POST /api/v1/va.
// Field validation happens in the service so missing fields report 4002702 with their JSON name.
func (h *VAHandler) CreateVA(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, apperror.ErrInvalidBody(err))
		return
	}

	var req ports.CreateVARequest
	if err := json.Unmarshal(raw, &req); err != nil {
		writeError(c, apperror.ErrInvalidBody(err))
		return
	}
	c.Set(middleware.CtxResourceID, req.TrxID)

	resp, err := h.vaSvc.CreateVirtualAccount(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	if code := upstreamResponseCode(resp.Body); code != "" {
		c.Set(middleware.CtxResponseCode, code)
	}
	response.Relay(c, resp.StatusCode, resp.ContentType, resp.Body)
}

// GetStatus handles GET /api/v1/va/:trxId.
func (h *VAHandler) GetStatus(c *gin.Context) {
	var params dto.TrxIDParam
	if err := c.ShouldBindUri(&params); err != nil {
		writeError(c, apperror.ErrInvalidMandatoryField("trxId"))
		return
	}

	rec, err := h.vaSvc.GetPaymentStatus(c.Request.Context(), params.TrxID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, dto.NewPaymentStatusResponse(rec))
}

// upstreamResponseCode extracts responseCode from a gateway body, if there is one.
func upstreamResponseCode(body []byte) string {
	var envelope struct {
		ResponseCode string `json:"responseCode"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.ResponseCode
}
