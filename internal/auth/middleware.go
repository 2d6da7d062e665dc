package auth

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	. "campus-events/pkg/campus"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

func GenerateToken(secret string, user *User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":          strconv.FormatUint(uint64(user.ID), 10),
		"email":        user.Email,
		"is_superuser": user.IsSuperuser,
		"exp":          time.Now().Add(ttl).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken verifies the credential and yields the stable user identity.
func ValidateToken(secret, tokenString string) (uint, bool, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return 0, false, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, false, jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false, jwt.ErrTokenInvalidClaims
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, false, errors.Join(jwt.ErrTokenInvalidClaims, err)
	}

	isSuperuser, _ := claims["is_superuser"].(bool)

	return uint(userID), isSuperuser, nil
}

// RequireAuth reads the bearer token from the Authorization header, with a
// query-param fallback for clients that cannot set headers.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication token"})
			c.Abort()
			return
		}

		userID, isSuperuser, err := ValidateToken(am.secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("is_superuser", isSuperuser)

		c.Next()
	}
}

// RequireSuperuser must run after RequireAuth.
func (am *AuthMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_superuser") {
			c.JSON(http.StatusForbidden, gin.H{"error": "The user doesn't have enough privileges"})
			c.Abort()
			return
		}

		c.Next()
	}
}
