package config

import "time"

// Session cookie and token settings.
//
// The token expires before the cookie does. Both are configurable on their
// own, see TOKEN_TTL and COOKIE_MAX_AGE.
const (
	TokenCookieName = "token"
	TokenTTL        = 5 * 24 * time.Hour
	CookieMaxAge    = 7 * 24 * time.Hour
	MinBcryptCost   = 10
)
