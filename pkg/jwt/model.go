package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

type tokenType string

const (
	accessToken  tokenType = "access"
	refreshToken tokenType = "refresh"
)

// CustomClaims 自定义 JWT 载荷，用户以 uuid 标识
type CustomClaims struct {
	UserUUID string `json:"user_uuid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
