package util

import (
	"academic_dashboard/internal/model"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims identify a server-side session; the role and id are re-checked
// against the session store on each request.
type Claims struct {
	SessionID string         `json:"sid"`
	UserID    string         `json:"user_id"`
	Role      model.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func GenerateJWT(sessionID string, id model.Identity, secret string, expiration time.Duration) (string, error) {
	claims := &Claims{
		SessionID: sessionID,
		UserID:    id.UserID,
		Role:      id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if expiration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(expiration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.SessionID == "" {
			return nil, errors.New("token has no session")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func GetClaimsFromContext(c *gin.Context) *Claims {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetIdentityFromContext returns the hydrated identity or nil.
func GetIdentityFromContext(c *gin.Context) *model.Identity {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return nil
	}
	id, ok := v.(model.Identity)
	if !ok {
		return nil
	}
	return &id
}

// MustGetIdentity panics when called outside an authenticated route.
func MustGetIdentity(c *gin.Context) model.Identity {
	return c.MustGet(ContextIdentity).(model.Identity)
}
