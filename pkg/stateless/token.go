package stateless

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrUndecodable is returned when a token fails its signature check or
	// cannot be parsed. It signals a transport or secret mismatch, not a
	// wrong answer.
	ErrUndecodable = errors.New("captcha token undecodable")

	// ErrEmptySecret is returned by Sign when no secret is given.
	ErrEmptySecret = errors.New("captcha token secret is empty")
)

// DefaultIssuer is written into the iss claim of issued tokens.
const DefaultIssuer = "LingCaptcha"

// Outcome is the three-way result of checking a candidate against a token.
type Outcome int

const (
	OutcomeUndecodable Outcome = iota
	OutcomeInvalid
	OutcomeValid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "undecodable"
	}
}

// Claims carries a keyed digest of the normalized solution, never the
// solution itself, since JWT payloads are readable by the client.
type Claims struct {
	Digest string `json:"sol"`
	jwt.RegisteredClaims
}

// Verifier signs and checks captcha tokens. The zero value is ready to use.
type Verifier struct {
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
	// Issuer overrides DefaultIssuer.
	Issuer string
}

var defaultVerifier = &Verifier{}

// Sign issues a token for solution valid for ttl, truncated to whole seconds.
func Sign(solution string, ttl time.Duration, secret string) (string, error) {
	return defaultVerifier.Sign(solution, ttl, secret)
}

// Verify checks candidate against token. See Verifier.Verify.
func Verify(token, candidate, secret string) (bool, error) {
	return defaultVerifier.Verify(token, candidate, secret)
}

// Check collapses Verify into an Outcome.
func Check(token, candidate, secret string) Outcome {
	return defaultVerifier.Check(token, candidate, secret)
}

// Sign issues a token for solution valid for ttl.
func (v *Verifier) Sign(solution string, ttl time.Duration, secret string) (string, error) {
	token, _, err := v.Issue(solution, ttl, secret)
	return token, err
}

// Issue is Sign that also reports the expiry embedded in the token.
func (v *Verifier) Issue(solution string, ttl time.Duration, secret string) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrEmptySecret
	}

	now := v.now().Truncate(time.Second)
	expiresAt := now.Add(ttl.Truncate(time.Second))
	claims := &Claims{
		Digest: digest(solution, secret),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign captcha token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify returns (true, nil) only when the token was signed with secret, has
// not expired and candidate matches the solution case-insensitively. Expired
// or wrong answers give (false, nil); a bad signature or malformed token gives
// (false, err) with err wrapping ErrUndecodable.
func (v *Verifier) Verify(token, candidate, secret string) (bool, error) {
	claims, err := v.decode(token, secret)
	if err != nil {
		return false, err
	}

	if v.now().Unix() > claims.ExpiresAt.Unix() {
		return false, nil
	}
	return hmac.Equal([]byte(digest(candidate, secret)), []byte(claims.Digest)), nil
}

// Check is Verify reduced to an Outcome.
func (v *Verifier) Check(token, candidate, secret string) Outcome {
	ok, err := v.Verify(token, candidate, secret)
	switch {
	case err != nil:
		return OutcomeUndecodable
	case ok:
		return OutcomeValid
	default:
		return OutcomeInvalid
	}
}

// ExpiresAt returns the expiry of a token signed with secret.
func (v *Verifier) ExpiresAt(token, secret string) (time.Time, error) {
	claims, err := v.decode(token, secret)
	if err != nil {
		return time.Time{}, err
	}
	return claims.ExpiresAt.Time, nil
}

func (v *Verifier) decode(token, secret string) (*Claims, error) {
	if secret == "" || token == "" {
		return nil, ErrUndecodable
	}

	// Expiry is checked by the caller against v.Now, not by the parser.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if !parsed.Valid || claims.ExpiresAt == nil || claims.Digest == "" {
		return nil, fmt.Errorf("%w: incomplete claims", ErrUndecodable)
	}
	return claims, nil
}

func (v *Verifier) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

func (v *Verifier) issuer() string {
	if v.Issuer != "" {
		return v.Issuer
	}
	return DefaultIssuer
}

// Normalize is the case folding applied to solutions and candidates.
func Normalize(s string) string {
	return strings.ToLower(s)
}

func digest(solution, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Normalize(solution)))
	return hex.EncodeToString(mac.Sum(nil))
}
