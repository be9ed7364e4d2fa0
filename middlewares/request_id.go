package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-ID"
const REQUEST_ID_KEY = "request_id"

func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(REQUEST_ID_KEY, requestID)
		ctx.Header(REQUEST_ID_HEADER, requestID)
		ctx.Next()
	}
}
