package services

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const CLAIMS_KEY = "user"

type Claims struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	value, exists := ctx.Get(CLAIMS_KEY)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}
