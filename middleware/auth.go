package middleware

import (
	"techsphere-api/config"
	"techsphere-api/helper"
	"techsphere-api/models"
	"techsphere-api/policy"
	"techsphere-api/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

// CallerKey is the gin context key holding the verified policy.Caller.
const CallerKey = "caller"

// AuthMiddleware requires a valid session token in the token cookie and
// stores the caller in the context.
func AuthMiddleware(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(config.TokenCookieName)
		if err != nil || tokenString == "" {
			HTTPHelper.SendUnauthorizedError(c, models.MessageLoginRequired)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, models.MessageInvalidToken)
			return
		}

		c.Set(CallerKey, claims.Caller())
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CurrentCaller(c)
		if !ok {
			HTTPHelper.SendUnauthorizedError(c, models.MessageLoginRequired)
			return
		}

		if !policy.Authorize(caller, nil, policy.AdminOnly) {
			HTTPHelper.SendForbiddenError(c, models.MessageAdminRequired)
			return
		}

		c.Next()
	}
}

// CurrentCaller returns the caller stored by AuthMiddleware.
func CurrentCaller(c *gin.Context) (policy.Caller, bool) {
	v, exists := c.Get(CallerKey)
	if !exists {
		return policy.Caller{}, false
	}
	caller, ok := v.(policy.Caller)
	return caller, ok
}
