package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, optFns ...func(*Options)) *Provider {
	t.Helper()
	noEnv := func(o *Options) { o.Env = mapEnv(nil, t.TempDir()) }
	p, err := New(append([]func(*Options){noEnv}, optFns...)...)
	require.NoError(t, err)
	return p
}

func TestProviderDefaultProfile(t *testing.T) {
	p := newTestProvider(t, WithCredentialsFile("testdata/default_profile_credentials"))
	assert.Equal(t, DefaultProfile, p.Profile())

	cred, err := p.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Credential{AccessKeyID: "foo", SecretAccessKey: "bar"}, cred)
}

func TestProviderNamedProfile(t *testing.T) {
	p := newTestProvider(t,
		WithCredentialsFile("testdata/multiple_profile_credentials"),
		WithProfile("bar"))

	creds, err := p.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bar_access_key", creds.AccessKeyID)
	assert.Equal(t, "bar_secret_key", creds.SecretAccessKey)
	assert.Empty(t, creds.SessionToken)
	assert.Equal(t, ProviderName, creds.Source)
}

func TestProviderFullProfile(t *testing.T) {
	p := newTestProvider(t, WithCredentialsFile("testdata/full_profile_credentials"))

	cred, err := p.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "foo", cred.AccessKeyID)
	assert.Equal(t, "bar", cred.SecretAccessKey)
	assert.Equal(t, "token-part-twopart-three", cred.SessionToken)
}

func TestProviderMergesConfigFile(t *testing.T) {
	opts := []func(*Options){
		WithCredentialsFile("testdata/multiple_profile_credentials"),
		WithConfigFile("testdata/mixed_config"),
	}

	cred, err := newTestProvider(t, append(opts, WithProfile("foo"))...).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "foo_access_key", cred.AccessKeyID, "credentials file shadows config file")

	cred, err = newTestProvider(t, append(opts, WithProfile("baz"))...).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "baz_access_key", cred.AccessKeyID)

	_, err = newTestProvider(t, append(opts, WithProfile("qux"))...).Resolve(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound, "bare section names are invalid in the config file")

	_, err = newTestProvider(t, append(opts, WithProfile("default"))...).Resolve(context.Background())
	assert.ErrorIs(t, err, ErrMissingKeys)
}

func TestProviderProfileNotFound(t *testing.T) {
	p := newTestProvider(t,
		WithCredentialsFile("testdata/default_profile_credentials"),
		WithProfile("ghost"))

	_, err := p.Retrieve(context.Background())
	require.ErrorIs(t, err, ErrProfileNotFound)

	var perr *ProfileError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "ghost", perr.Profile)
}

func TestProviderOneFileMissing(t *testing.T) {
	p := newTestProvider(t,
		WithCredentialsFile("testdata/default_profile_credentials"),
		WithConfigFile(filepath.Join(t.TempDir(), "missing")))

	cred, err := p.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "foo", cred.AccessKeyID)
}

func TestProviderBothFilesMissing(t *testing.T) {
	dir := t.TempDir()
	p := newTestProvider(t,
		WithCredentialsFile(filepath.Join(dir, "credentials")),
		WithConfigFile(filepath.Join(dir, "config")))

	_, err := p.Retrieve(context.Background())
	var unreadable *FilesUnreadableError
	assert.True(t, errors.As(err, &unreadable))
}

func TestProviderRereadsFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "credentials", "[default]\naws_access_key_id=old\naws_secret_access_key=s\n")
	p := newTestProvider(t, WithCredentialsFile(path))

	cred, err := p.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "old", cred.AccessKeyID)

	writeFile(t, dir, "credentials", "[default]\naws_access_key_id=new\naws_secret_access_key=s\n")
	cred, err = p.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", cred.AccessKeyID)
}

func TestProviderCanceledContext(t *testing.T) {
	p := newTestProvider(t, WithCredentialsFile("testdata/default_profile_credentials"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Retrieve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProviderFromEnvironment(t *testing.T) {
	t.Setenv(EnvCredentialsFile, "testdata/multiple_profile_credentials")
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing"))
	t.Setenv(EnvProfile, "bar")

	p, err := New()
	require.NoError(t, err)
	assert.Equal(t, "testdata/multiple_profile_credentials", p.Request().CredentialsFile)
	assert.Equal(t, "bar", p.Profile())

	creds, err := p.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bar_access_key", creds.AccessKeyID)
}

func TestProviderHomeUnavailable(t *testing.T) {
	_, err := New(func(o *Options) { o.Env = mapEnv(nil, "") })
	assert.ErrorIs(t, err, ErrHomeDirectoryUnavailable)
}

func TestProviderSatisfiesSDKCache(t *testing.T) {
	p := newTestProvider(t, WithCredentialsFile("testdata/default_profile_credentials"))
	var provider aws.CredentialsProvider = p

	creds, err := aws.NewCredentialsCache(provider).Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "foo", creds.AccessKeyID)
}

func TestProviderRetrieveAsync(t *testing.T) {
	p := newTestProvider(t, WithCredentialsFile("testdata/default_profile_credentials"))

	f := p.RetrieveAsync(context.Background())
	creds, ready, err := f.Poll()
	require.True(t, ready)
	require.NoError(t, err)
	assert.Equal(t, "foo", creds.AccessKeyID)

	p = newTestProvider(t, WithCredentialsFile("testdata/default_profile_credentials"), WithProfile("ghost"))
	_, err = p.RetrieveAsync(context.Background()).Wait(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
