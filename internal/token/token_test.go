package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventaris/internal/token"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := token.NewCodec("test_secret", "inventaris", "inventaris-api", time.Hour)
	userID := uuid.New().String()

	signed, err := codec.Issue(userID, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, err := codec.Resolve(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestCodec_TamperedSignature(t *testing.T) {
	codec := token.NewCodec("test_secret", "inventaris", "inventaris-api", time.Hour)
	other := token.NewCodec("other_secret", "inventaris", "inventaris-api", time.Hour)

	signed, err := other.Issue(uuid.New().String(), "alice@example.com")
	require.NoError(t, err)

	_, err = codec.Resolve(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_WrongAudience(t *testing.T) {
	codec := token.NewCodec("test_secret", "inventaris", "inventaris-api", time.Hour)
	foreign := token.NewCodec("test_secret", "inventaris", "some-other-api", time.Hour)

	signed, err := foreign.Issue(uuid.New().String(), "alice@example.com")
	require.NoError(t, err)

	_, err = codec.Resolve(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_WrongIssuer(t *testing.T) {
	codec := token.NewCodec("test_secret", "inventaris", "inventaris-api", time.Hour)
	foreign := token.NewCodec("test_secret", "someone-else", "inventaris-api", time.Hour)

	signed, err := foreign.Issue(uuid.New().String(), "alice@example.com")
	require.NoError(t, err)

	_, err = codec.Resolve(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Expired(t *testing.T) {
	codec := token.NewCodec("test_secret", "inventaris", "inventaris-api", time.Hour)
	expired := token.NewCodec("test_secret", "inventaris", "inventaris-api", -time.Hour)

	signed, err := expired.Issue(uuid.New().String(), "alice@example.com")
	require.NoError(t, err)

	_, err = codec.Resolve(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_MalformedUserID(t *testing.T) {
	codec := token.NewCodec("test_secret", "inventaris", "inventaris-api", time.Hour)

	signed, err := codec.Issue("not-a-uuid", "alice@example.com")
	require.NoError(t, err)

	_, err = codec.Resolve(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Garbage(t *testing.T) {
	codec := token.NewCodec("test_secret", "inventaris", "inventaris-api", time.Hour)

	_, err := codec.Resolve("definitely.not.a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
