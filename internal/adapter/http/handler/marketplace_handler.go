package handler

import (
	"account-storefront/internal/adapter/http/dto"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/apperror"
	"account-storefront/pkg/response"

	"github.com/gin-gonic/gin"
)

// MarketplaceHandler proxies catalogue reads.
type MarketplaceHandler struct {
	marketplaceSvc ports.MarketplaceService
}

func NewMarketplaceHandler(marketplaceSvc ports.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceSvc: marketplaceSvc}
}

// Fetch handles GET /api/v1/marketplace/:category.
func (h *MarketplaceHandler) Fetch(c *gin.Context) {
	var params dto.CategoryParam
	if err := c.ShouldBindUri(&params); err != nil {
		writeError(c, apperror.Validation("Invalid category"))
		return
	}

	resp, err := h.marketplaceSvc.Fetch(c.Request.Context(), params.Category, dto.SanitizeQuery(c.Request.URL.Query()))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Relay(c, resp.StatusCode, resp.ContentType, resp.Body)
}
