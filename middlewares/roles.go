package middlewares

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BCatalog/funct"
	"github.com/CPU-commits/Intranet_BCatalog/res"
	"github.com/CPU-commits/Intranet_BCatalog/services"
	"github.com/gin-gonic/gin"
)

func RolesMiddleware(roles []string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := services.NewClaimsFromContext(ctx)
		if !ok {
			unauthorized(ctx, "Unauthorized")
			return
		}
		allowed := funct.Some(roles, func(role string) bool {
			return role == claims.Role
		})
		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusForbidden, &res.Response{
				Success:    false,
				StatusCode: http.StatusForbidden,
				Message:    "You are not authorized",
			})
			return
		}
		ctx.Next()
	}
}
