package accounts_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"foodgram/internal/accounts"
	"foodgram/pkg/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return both PEM encoded.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(privPEM), string(pubPEM)
}

func newTokens(t *testing.T) (*accounts.Tokens, *rsa.PrivateKey, string) {
	t.Helper()
	priv, privPEM, pubPEM := genRSAKeys(t)
	tokens, err := accounts.NewTokens(privPEM, pubPEM, time.Hour)
	require.NoError(t, err)

	return tokens, priv, pubPEM
}

func signRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		ID:        "jti",
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestTokens_IssueAndParse(t *testing.T) {
	tokens, _, _ := newTokens(t)

	raw, issued, err := tokens.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)
	require.Equal(t, "42", issued.Subject)

	claims, userID, err := tokens.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(42), userID)
	require.Equal(t, issued.ID, claims.ID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokens_PrivateKeyOnly(t *testing.T) {
	_, privPEM, _ := genRSAKeys(t)
	tokens, err := accounts.NewTokens(privPEM, "", time.Hour)
	require.NoError(t, err)

	raw, _, err := tokens.Issue(1)
	require.NoError(t, err)
	_, _, err = tokens.Parse(raw)
	require.NoError(t, err)
}

func TestTokens_VerifyOnly(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	tokens, err := accounts.NewTokens("", pubPEM, time.Hour)
	require.NoError(t, err)

	_, _, err = tokens.Issue(1)
	require.Error(t, err)

	now := time.Now()
	_, userID, err := tokens.Parse(signRS256(t, priv, "7", now, now.Add(time.Hour)))
	require.NoError(t, err)
	require.Equal(t, domain.UserID(7), userID)
}

func TestTokens_NoKeys(t *testing.T) {
	_, err := accounts.NewTokens("", "", time.Hour)
	require.Error(t, err)

	_, err = accounts.NewTokens("garbage", "", time.Hour)
	require.Error(t, err)
}

func TestTokens_InvalidSignature(t *testing.T) {
	tokens, _, _ := newTokens(t)
	privOther, _, _ := genRSAKeys(t)

	now := time.Now()
	_, _, err := tokens.Parse(signRS256(t, privOther, "1", now, now.Add(time.Hour)))
	require.Error(t, err)
}

func TestTokens_Expired(t *testing.T) {
	tokens, priv, _ := newTokens(t)

	now := time.Now()
	_, _, err := tokens.Parse(signRS256(t, priv, "1", now.Add(-2*time.Hour), now.Add(-time.Hour)))
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokens_InvalidSubject(t *testing.T) {
	tokens, priv, _ := newTokens(t)

	now := time.Now()
	for _, sub := range []string{"not-a-number", "0", "-3", ""} {
		_, _, err := tokens.Parse(signRS256(t, priv, sub, now, now.Add(time.Hour)))
		require.Error(t, err, "subject %q", sub)
	}
}

func TestTokens_WrongAlgorithm(t *testing.T) {
	tokens, _, pubPEM := newTokens(t)

	// HS256 signed with the public key bytes must not be accepted.
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(pubPEM))
	require.NoError(t, err)

	_, _, err = tokens.Parse(signed)
	require.Error(t, err)
}

func TestTokens_MissingExpiry(t *testing.T) {
	tokens, priv, _ := newTokens(t)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{Subject: "1"}).SignedString(priv)
	require.NoError(t, err)

	_, _, err = tokens.Parse(signed)
	require.Error(t, err)
}
