// Package profile resolves AWS credentials from the shared credentials and
// config files.
package profile

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"
)

// Options configures a Provider. Empty Request fields are defaulted from Env.
type Options struct {
	Request Request
	Env     Env
	Logger  *zap.Logger
}

// WithProfile selects the profile to resolve.
func WithProfile(name string) func(*Options) {
	return func(o *Options) { o.Request.Profile = name }
}

// WithCredentialsFile sets the shared credentials file location.
func WithCredentialsFile(path string) func(*Options) {
	return func(o *Options) { o.Request.CredentialsFile = path }
}

// WithConfigFile sets the shared config file location.
func WithConfigFile(path string) func(*Options) {
	return func(o *Options) { o.Request.ConfigFile = path }
}

// WithLogger sets the logger used for parse warnings.
func WithLogger(logger *zap.Logger) func(*Options) {
	return func(o *Options) { o.Logger = logger }
}

// Provider resolves credentials from the shared credentials and config
// files. Files are re-read on every call.
type Provider struct {
	req    Request
	logger *zap.Logger
}

var _ aws.CredentialsProvider = (*Provider)(nil)

// New returns a provider with defaults loaded once from the environment.
func New(optFns ...func(*Options)) (*Provider, error) {
	opts := Options{Env: OSEnv()}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	req, err := LoadDefaults(opts.Request, opts.Env)
	if err != nil {
		return nil, err
	}
	return &Provider{req: req, logger: opts.Logger}, nil
}

// Request returns the resolved profile name and file locations.
func (p *Provider) Request() Request { return p.req }

// Profile returns the profile name the provider resolves.
func (p *Provider) Profile() string { return p.req.Profile }

// Resolve parses both files and extracts the provider's profile.
func (p *Provider) Resolve(ctx context.Context) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}

	store, err := LoadStore(p.req, p.logger)
	if err != nil {
		return Credential{}, err
	}

	props, ok := store.RemoveProfile(p.req.Profile)
	if !ok {
		return Credential{}, &ProfileError{Profile: p.req.Profile, Err: ErrProfileNotFound}
	}
	cred, err := Extract(p.req.Profile, props)
	if err != nil {
		return Credential{}, err
	}
	p.logger.Debug("resolved profile credentials",
		zap.String("profile", p.req.Profile),
		zap.Bool("session_token", cred.SessionToken != ""))
	return cred, nil
}

// Retrieve implements aws.CredentialsProvider.
func (p *Provider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	cred, err := p.Resolve(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("%s: %w", ProviderName, err)
	}
	return cred.AWS(), nil
}

// RetrieveAsync runs Retrieve and returns its result as a completed Future.
func (p *Provider) RetrieveAsync(ctx context.Context) *Future {
	return CompletedFuture(p.Retrieve(ctx))
}
