package accounts

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"foodgram/pkg/domain"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errInvalidSubject = errors.New("invalid subject")

// Claims are the registered claims carried by auth tokens. Subject holds the
// user ID and ID (jti) identifies the token for revocation.
type Claims = jwt.RegisteredClaims

// Tokens issues and verifies RS256 signed auth tokens.
type Tokens struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	now        func() time.Time
}

// NewTokens parses the PEM encoded key pair. privatePEM may be empty for a
// verify-only instance.
func NewTokens(privatePEM, publicPEM string, ttl time.Duration) (*Tokens, error) {
	t := &Tokens{ttl: ttl, now: time.Now}

	if privatePEM != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privatePEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		t.privateKey = key
		t.publicKey = &key.PublicKey
	}

	if publicPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicPEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		t.publicKey = key
	}

	if t.publicKey == nil {
		return nil, errors.New("no RSA key configured")
	}

	return t, nil
}

// Issue signs a new token for userID.
func (t *Tokens) Issue(userID domain.UserID) (string, *Claims, error) {
	if t.privateKey == nil {
		return "", nil, errors.New("no RSA private key configured")
	}

	now := t.now()
	claims := &Claims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatInt(int64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.privateKey)
	if err != nil {
		return "", nil, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, claims, nil
}

// Parse verifies signature and time based claims of raw and returns the
// claims together with the user ID from the subject.
func (t *Tokens) Parse(raw string) (*Claims, domain.UserID, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return t.publicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("could not parse JWT: %w", err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, 0, errInvalidSubject
	}

	return claims, domain.UserID(id), nil
}
