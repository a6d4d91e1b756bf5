package response

import (
	"errors"
	"net/http"

	"account-storefront/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is echoed on every response written by this package.
const HeaderRequestID = "X-Request-ID"

// CtxRequestID is the gin context key holding the request ID.
const CtxRequestID = "request_id"

// Envelope is the gateway-style response body. Data is omitted when nil so
// acknowledgements serialize to exactly {"responseCode":…,"responseMessage":…}.
type Envelope struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	Data            interface{} `json:"data,omitempty"`
}

// Write sends an envelope with the given status and code.
func Write(c *gin.Context, status int, code, message string) {
	c.Header(HeaderRequestID, getRequestID(c))
	c.JSON(status, Envelope{ResponseCode: code, ResponseMessage: message})
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.Header(HeaderRequestID, getRequestID(c))
	c.JSON(http.StatusOK, Envelope{
		ResponseCode:    "2000000",
		ResponseMessage: "Successful",
		Data:            data,
	})
}

// Relay writes an upstream response verbatim.
func Relay(c *gin.Context, status int, contentType string, body []byte) {
	if contentType == "" {
		contentType = "application/json"
	}
	c.Header(HeaderRequestID, getRequestID(c))
	c.Data(status, contentType, body)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Write(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
		return
	}

	// Unknown error -> 500
	Write(c, http.StatusInternalServerError, apperror.CodeInternal, "Internal server error")
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get(CtxRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
