package handler

import (
	"net/http"
	"strings"

	"market/internal/errors"

	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// tokenVerifier checks the identity token on a push request.
type tokenVerifier func(req *http.Request) error

// newIDTokenVerifier validates the OIDC token Google attaches to
// authenticated push requests. An empty audience is taken from the request.
func newIDTokenVerifier(audience string) tokenVerifier {
	return func(req *http.Request) error {
		token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !ok || token == "" {
			return errors.New("missing bearer token")
		}

		aud := audience
		if aud == "" {
			aud = requestURL(req)
		}

		payload, err := idtoken.Validate(req.Context(), token, aud)
		if err != nil {
			return errors.Wrap(err, "failed to validate token")
		}
		if !googleIssuers[payload.Issuer] {
			return errors.Errorf("invalid issuer: %s", payload.Issuer)
		}
		if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
			return errors.New("email not verified")
		}

		return nil
	}
}

// requestURL rebuilds the URL the push subscription was configured with,
// trusting X-Forwarded-Proto from the load balancer.
func requestURL(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + req.Host + req.URL.Path
}
