package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/CPU-commits/Intranet_BCatalog/res"
	"github.com/CPU-commits/Intranet_BCatalog/services"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func unauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
		Success:    false,
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	})
}

func extractToken(ctx *gin.Context) string {
	bearer := ctx.GetHeader("Authorization")
	parts := strings.SplitN(bearer, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func JWTMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)
		if tokenString == "" {
			unauthorized(ctx, "Unauthorized")
			return
		}

		claims := &services.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(ctx, "Unauthorized")
			return
		}
		ctx.Set(services.CLAIMS_KEY, claims)
		ctx.Next()
	}
}
