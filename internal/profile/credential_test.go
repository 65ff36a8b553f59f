package profile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	cred, err := Extract("default", map[string]string{
		KeyAccessKeyID:     "foo",
		KeySecretAccessKey: "bar",
		"region":           "eu-west-1",
	})
	require.NoError(t, err)
	assert.Equal(t, Credential{AccessKeyID: "foo", SecretAccessKey: "bar"}, cred)
}

func TestExtractSessionToken(t *testing.T) {
	cred, err := Extract("p", map[string]string{
		KeyAccessKeyID:     "foo",
		KeySecretAccessKey: "bar",
		KeySecurityToken:   "legacy",
	})
	require.NoError(t, err)
	assert.Equal(t, "legacy", cred.SessionToken)

	cred, err = Extract("p", map[string]string{
		KeyAccessKeyID:     "foo",
		KeySecretAccessKey: "bar",
		KeySessionToken:    "current",
		KeySecurityToken:   "legacy",
	})
	require.NoError(t, err)
	assert.Equal(t, "current", cred.SessionToken)
}

func TestExtractMissingKeys(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]string
		want  error
	}{
		{"only access key", map[string]string{KeyAccessKeyID: "foo"}, ErrMissingSecretKey},
		{"only secret key", map[string]string{KeySecretAccessKey: "bar"}, ErrMissingAccessKey},
		{"neither", map[string]string{"region": "us-east-1"}, ErrMissingKeys},
		{"empty access key", map[string]string{KeyAccessKeyID: "", KeySecretAccessKey: "bar"}, ErrMissingAccessKey},
		{"token only", map[string]string{KeySessionToken: "tok"}, ErrMissingKeys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract("dev", tt.props)
			require.ErrorIs(t, err, tt.want)

			var perr *ProfileError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "dev", perr.Profile)
			assert.Contains(t, err.Error(), `"dev"`)
		})
	}
}

func TestCredentialAWS(t *testing.T) {
	creds := Credential{AccessKeyID: "a", SecretAccessKey: "s", SessionToken: "t"}.AWS()
	assert.Equal(t, "a", creds.AccessKeyID)
	assert.Equal(t, "s", creds.SecretAccessKey)
	assert.Equal(t, "t", creds.SessionToken)
	assert.Equal(t, ProviderName, creds.Source)
	assert.False(t, creds.CanExpire)

	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	creds = Credential{AccessKeyID: "a", SecretAccessKey: "s", Expires: &exp}.AWS()
	assert.True(t, creds.CanExpire)
	assert.Equal(t, exp, creds.Expires)
}
