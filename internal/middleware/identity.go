package middleware

// identity.go defines helper functions shared across middleware files. It
// provides the user identifier extraction used by the response cache and
// the rate limiter key builders. When no user is authenticated, "anon" is
// returned so unauthenticated traffic shares one bucket per IP/route.

import (
    "strconv"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from the Echo context. JWTAuth
// stores the raw "sub" claim under "user_id"; numeric claims decode as
// float64, so the value may arrive in several shapes.
func currentUserID(c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        switch t := v.(type) {
        case string:
            if t != "" { return t }
        case float64:
            return strconv.FormatUint(uint64(t), 10)
        case uint64:
            return strconv.FormatUint(t, 10)
        }
    }
    // Fall back to a raw token when a route stored one instead of the claim.
    if u := c.Get("user"); u != nil {
        if tok, ok := u.(*jwt.Token); ok {
            if cl, ok := tok.Claims.(jwt.MapClaims); ok {
                if v, ok := cl["sub"].(string); ok && v != "" {
                    return v
                }
                if v, ok := cl["user_id"].(string); ok && v != "" {
                    return v
                }
            }
        }
    }
    return "anon"
}
