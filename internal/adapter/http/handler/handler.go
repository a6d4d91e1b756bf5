package handler

import (
	"errors"
	"net/http"

	"account-storefront/internal/adapter/http/middleware"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/apperror"
	"account-storefront/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError sends err as an envelope and records its responseCode for logging and audit.
func writeError(c *gin.Context, err error) {
	code := apperror.CodeInternal
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	c.Set(middleware.CtxResponseCode, code)
	response.Error(c, err)
}

// HealthCheck returns a handler that pings every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
