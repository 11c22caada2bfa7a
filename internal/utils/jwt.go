package utils // utils provides token issuance/verification and hashing helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token parse failures are collapsed into two sentinel values so handlers
// and middleware can report "expired" distinctly from every other defect
// (bad signature, wrong algorithm, truncated payload, missing claims).
var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is invalid")
)

// AccessToken is a signed HS256 JWT together with its expiry instant.
// The token is stateless: once issued it stays valid until Exp regardless
// of later account changes, and logout does not revoke it.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims is the identity a verified access token asserts: the subject
// account and the role it held at issuance. The role is deliberately NOT
// re-read from the accounts table on use; a role change takes effect only
// after the next login.
type Claims struct {
	AccountID uint64
	Role      string
}

// NewAccessToken builds and signs an HS256 JWT for an account. ttlMin is
// the token lifetime in minutes (the service default is 60). The claims
// carry the subject account id (sub), the role, expiry (exp) and issue
// time (iat).
func NewAccessToken(secret string, accountID uint64, role string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  accountID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies signature, algorithm and expiry of a raw token
// string and extracts the identity claims. It returns ErrTokenExpired for
// a structurally valid but stale token and ErrTokenMalformed for anything
// else that fails verification.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenMalformed
	}
	if !tok.Valid {
		return Claims{}, ErrTokenMalformed
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenMalformed
	}
	var out Claims
	switch sub := mc["sub"].(type) {
	case float64: // numeric JSON claims decode as float64
		out.AccountID = uint64(sub)
	default:
		return Claims{}, ErrTokenMalformed
	}
	role, ok := mc["role"].(string)
	if !ok {
		return Claims{}, ErrTokenMalformed
	}
	out.Role = role
	return out, nil
}
