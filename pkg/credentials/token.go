package credentials

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// userIDClaims are the claims that may carry the user id, in order of preference.
var userIDClaims = []string{"sub", "nameid", "userId", "user_id"}

// UserIDFromToken reads the user id from a JWT bearer token.
//
// The signature is not verified, the backend does that. An empty string is
// returned for tokens that are not JWTs or do not carry a user id claim.
func UserIDFromToken(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return ""
	}

	for _, name := range userIDClaims {
		switch v := claims[name].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}

	return ""
}
