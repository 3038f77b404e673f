package middleware

import (
	"net/http"
	"strings"

	"techsphere-api/config"
	"techsphere-api/models"
	"techsphere-api/services"

	"github.com/gin-gonic/gin"
)

// Route groups guarded by the gateway.
var (
	adminPrefixes    = []string{"/admin"}
	profilePrefixes  = []string{"/profile", "/settings"}
	profileAPIPrefix = "/api/user/profile"
	guestOnlyPaths   = []string{"/login", "/register"}
)

// Gateway protects route groups before any handler runs. Page paths are
// redirected to "/", API paths are denied with JSON:
//
//   - no or invalid token on admin, profile and profile API paths
//   - a signed in user on the login and register pages
//   - a non-admin on admin paths
func Gateway(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		isAdmin := hasPrefix(path, adminPrefixes...)
		isProfile := hasPrefix(path, profilePrefixes...)
		isProfileAPI := hasPrefix(path, profileAPIPrefix)
		isGuestOnly := matchesAny(path, guestOnlyPaths...)

		if !isAdmin && !isProfile && !isProfileAPI && !isGuestOnly {
			c.Next()
			return
		}

		var claims *services.Claims
		tokenString, err := c.Cookie(config.TokenCookieName)
		hasToken := err == nil && tokenString != ""
		if hasToken {
			claims, _ = tokens.Verify(tokenString)
		}

		switch {
		case isGuestOnly:
			if claims != nil {
				redirectHome(c)
				return
			}
		case claims == nil:
			if isProfileAPI {
				message := models.MessageLoginRequired
				if hasToken {
					message = models.MessageInvalidToken
				}
				HTTPHelper.SendUnauthorizedError(c, message)
				return
			}
			redirectHome(c)
			return
		case isAdmin && !claims.IsAdmin:
			redirectHome(c)
			return
		}

		c.Next()
	}
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}

// hasPrefix matches a path segment prefix, so "/admin" covers "/admin" and
// "/admin/users" but not "/administrator".
func hasPrefix(path string, prefixes ...string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func matchesAny(path string, paths ...string) bool {
	for _, p := range paths {
		if path == p || path == p+"/" {
			return true
		}
	}
	return false
}
