package services

import (
	"strconv"
	"time"

	"techsphere-api/models"
	"techsphere-api/policy"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the payload of the session token.
type Claims struct {
	UserID   uint   `json:"userId"`
	IsAdmin  bool   `json:"isAdmin"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Caller converts verified claims into the identity used by the policy.
func (c *Claims) Caller() policy.Caller {
	return policy.Caller{UserID: c.UserID, IsAdmin: c.IsAdmin, Username: c.Username}
}

// TokenService issues and verifies HS256 session tokens.
type TokenService interface {
	Issue(user *models.User) (string, error)
	Verify(tokenString string) (*Claims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) TokenService {
	return &tokenService{secret: secret, ttl: ttl}
}

func (s *tokenService) Issue(user *models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:   user.ID,
		IsAdmin:  user.IsAdmin,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry. Any failure is reported as
// an invalid token.
func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrorUnauthorized{Message: models.MessageInvalidToken}
	}

	return claims, nil
}
