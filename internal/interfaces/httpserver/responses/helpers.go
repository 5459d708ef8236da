package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

const requestIDKey = "request_id"

// HandleError writes err as an HTTP response. Platform errors keep their type
// and code; anything else becomes an internal error carrying message.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()

	if platformerrors.GetPlatformError(err) == nil && err != nil {
		err = platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute,
			platformerrors.ErrorTypeInternal, message, err, "")
	}

	platformerrors.WriteError(c, err, logger)
}

// HandleNewError creates and writes a new typed error response.
// Use this for route-level errors like request validation.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string) {
	c.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(errorType), ErrorResponse{
		Error: &ErrorDetail{
			Message:   message,
			Type:      platformerrors.ErrorTypeToString(errorType),
			RequestID: c.GetString(requestIDKey),
		},
	})
}
