// Package claims reads the expiry claim out of an access token without
// verifying its signature. The backend is the authority on token validity;
// the client only needs to know when to stop presenting a token and ask for
// a new one.
package claims

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// IsExpired reports whether accessToken should be treated as stale.
//
// The check is fail-closed: an absent token, a token without exactly three
// dot-separated segments, a payload that does not decode as base64url JSON,
// or a payload without a numeric exp claim are all reported as expired. A
// token expiring exactly now is already expired.
func IsExpired(accessToken string) bool {
	if strings.TrimSpace(accessToken) == "" {
		return true
	}

	token, _, err := jwtlib.NewParser().ParseUnverified(accessToken, jwtlib.MapClaims{})
	if err != nil {
		return true
	}

	mapClaims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return true
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return NowTimeFunc().Unix() >= exp.Unix()
}
