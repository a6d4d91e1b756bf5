package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// auditRoute describes how a route is audited.
type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	// allOutcomes audits rejected requests too.
	allOutcomes bool
}

// auditRoutes is keyed by method and route template.
var auditRoutes = map[string]auditRoute{
	http.MethodPost + " /api/v1/va":                    {domain.AuditActionCreateVA, "virtual_account", false},
	http.MethodPost + " " + domain.PathPaymentCallback: {domain.AuditActionPaymentCallback, "payment_callback", true},
}

// AuditLog creates an audit middleware for the payment routes.
// VA creation is audited on success only; callbacks are audited whatever the acknowledgement.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		status := c.Writer.Status()
		if !route.allOutcomes && (status < 200 || status >= 300) {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(response.CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   c.GetString(CtxResourceID),
			Status:       status,
			ResponseCode: c.GetString(CtxResponseCode),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}
