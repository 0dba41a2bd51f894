package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mlaily/falco/core/handler"
)

const (
	// minSecretLength keeps HMAC keys out of brute-force range.
	minSecretLength = 32

	// DefaultTicketTTL is the ticket lifetime when none is configured.
	DefaultTicketTTL = 24 * time.Hour
)

// CookieTicket is an Authenticator that stores an HMAC-signed ticket in a
// cookie per scheme. The ticket value is base64(payload).base64(signature);
// tampering or expiry invalidates it.
type CookieTicket struct {
	secret   []byte
	ttl      time.Duration
	secure   bool
	sameSite http.SameSite
}

// TicketOption configures a CookieTicket.
type TicketOption func(*CookieTicket)

// WithTTL sets the ticket lifetime.
func WithTTL(ttl time.Duration) TicketOption {
	return func(c *CookieTicket) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithSecure marks issued cookies as HTTPS-only.
func WithSecure(secure bool) TicketOption {
	return func(c *CookieTicket) {
		c.secure = secure
	}
}

// NewCookieTicket creates a cookie-ticket authenticator. The secret must be
// at least 32 bytes.
func NewCookieTicket(secret string, opts ...TicketOption) (*CookieTicket, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d",
			ErrSecretTooShort, len(secret), minSecretLength)
	}

	c := &CookieTicket{
		secret:   []byte(secret),
		ttl:      DefaultTicketTTL,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ticket is the signed payload.
type ticket struct {
	Principal Principal `json:"p"`
	Scheme    string    `json:"s"`
	ExpiresAt int64     `json:"exp"`
}

// SignIn issues a signed ticket cookie for the scheme. The Set-Cookie header
// lands on whatever response the surrounding handler completes next.
func (c *CookieTicket) SignIn(ctx handler.Context, scheme string, principal Principal) error {
	value, err := c.encode(ticket{
		Principal: principal,
		Scheme:    scheme,
		ExpiresAt: time.Now().Add(c.ttl).Unix(),
	})
	if err != nil {
		return err
	}

	http.SetCookie(ctx.ResponseWriter(), &http.Cookie{
		Name:     cookieName(scheme),
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	})
	return nil
}

// SignOut expires the scheme's ticket cookie.
func (c *CookieTicket) SignOut(ctx handler.Context, scheme string) error {
	http.SetCookie(ctx.ResponseWriter(), &http.Cookie{
		Name:     cookieName(scheme),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	})
	return nil
}

// Challenge leaves completion to the calling combinator; the cookie scheme
// has no handshake of its own.
func (c *CookieTicket) Challenge(ctx handler.Context, scheme string, props Properties) error {
	return nil
}

// Authenticate reads and validates the scheme's ticket from the request.
func (c *CookieTicket) Authenticate(r *http.Request, scheme string) (Principal, error) {
	cookie, err := r.Cookie(cookieName(scheme))
	if err != nil {
		return Principal{}, ErrNoTicket
	}

	t, err := c.decode(cookie.Value)
	if err != nil {
		return Principal{}, err
	}
	if t.Scheme != scheme {
		return Principal{}, ErrInvalidTicket
	}
	if time.Now().Unix() >= t.ExpiresAt {
		return Principal{}, ErrTicketExpired
	}
	return t.Principal, nil
}

func (c *CookieTicket) encode(t ticket) (string, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("auth: marshal ticket: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(encoded), nil
}

func (c *CookieTicket) decode(value string) (ticket, error) {
	encoded, sig, ok := strings.Cut(value, ".")
	if !ok {
		return ticket{}, ErrInvalidTicket
	}
	if subtle.ConstantTimeCompare([]byte(c.sign(encoded)), []byte(sig)) != 1 {
		return ticket{}, ErrInvalidTicket
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ticket{}, ErrInvalidTicket
	}
	var t ticket
	if err := json.Unmarshal(payload, &t); err != nil {
		return ticket{}, ErrInvalidTicket
	}
	return t, nil
}

func (c *CookieTicket) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func cookieName(scheme string) string {
	return "__ticket_" + scheme
}
