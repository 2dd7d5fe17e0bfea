package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-test-secret-test-secret!")

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestCodec(t *testing.T, clock *fakeClock) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(TokenConfig{
		Secret: testSecret,
		TTL:    time.Hour,
		Issuer: "sports-camp360",
		Now:    clock.Now,
	})
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodec(t *testing.T) {
	_, err := NewTokenCodec(TokenConfig{Secret: []byte("short"), TTL: time.Hour})
	assert.Error(t, err)

	_, err = NewTokenCodec(TokenConfig{Secret: testSecret})
	assert.Error(t, err)

	_, err = NewTokenCodec(TokenConfig{Secret: testSecret, TTL: time.Hour})
	require.NoError(t, err)
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	emails := []string{"alice@example.com", "Bob.Smith+camp@example.org", "x@y.z"}
	for _, email := range emails {
		token, err := codec.Issue(email)
		require.NoError(t, err)

		claims, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, email, claims.Email)
		assert.Equal(t, "sports-camp360", claims.Issuer)
		assert.Equal(t, clock.now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	}
}

func TestTokenCodec_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	token, err := codec.Issue("alice@example.com")
	require.NoError(t, err)

	clock.now = clock.now.Add(59 * time.Minute)
	_, err = codec.Verify(token)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestTokenCodec_TamperedTokenRejected(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clock)

	token, err := codec.Issue("alice@example.com")
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, err := codec.Verify(string(mutated))
		require.Error(t, err, "mutation at byte %d accepted", i)
		assert.True(t, err == ErrInvalidSignature || err == ErrMalformed,
			"mutation at byte %d: unexpected error %v", i, err)
	}
}

func TestTokenCodec_RejectsForeignTokens(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clock)

	otherSecret, err := NewTokenCodec(TokenConfig{
		Secret: []byte("another-secret-another-secret-0123"),
		TTL:    time.Hour,
		Issuer: "sports-camp360",
		Now:    clock.Now,
	})
	require.NoError(t, err)
	foreign, err := otherSecret.Issue("alice@example.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sports-camp360",
			IssuedAt:  jwt.NewNumericDate(clock.now),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sports-camp360",
			IssuedAt:  jwt.NewNumericDate(clock.now),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "different secret", token: foreign, wantErr: ErrInvalidSignature},
		{name: "alg none", token: noneToken, wantErr: ErrInvalidSignature},
		{name: "alg HS512", token: hs512, wantErr: ErrInvalidSignature},
		{name: "empty", token: "", wantErr: ErrMalformed},
		{name: "garbage", token: "not-a-token", wantErr: ErrMalformed},
		{name: "two segments", token: strings.Join(strings.Split(foreign, ".")[:2], "."), wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenCodec_RequiresEmail(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clock)

	_, err := codec.Issue("")
	assert.Error(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sports-camp360",
			IssuedAt:  jwt.NewNumericDate(clock.now),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	_, err = codec.Verify(noEmail)
	assert.ErrorIs(t, err, ErrMalformed)
}
