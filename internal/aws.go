package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"go.uber.org/zap"

	"github.com/chukul/credctl/internal/profile"
	"github.com/chukul/credctl/internal/xmlutil"
)

// DefaultRegion is used when neither a flag nor the environment names one.
const DefaultRegion = "us-east-1"

// STSAPI is the subset of the STS client used here.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, in *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
	AssumeRole(ctx context.Context, in *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// ClientOptions selects what an STS client signs with and which shared
// files and profile it reads settings such as region from.
type ClientOptions struct {
	Credentials aws.CredentialsProvider
	Request     profile.Request
	Region      string // overrides the profile's region when set

	// Logger receives decoded STS error bodies at debug level.
	Logger *zap.Logger
}

// NewSTSClient builds an STS client. The SDK reads the same files and
// profile the credentials were resolved from, never its own defaults.
func NewSTSClient(ctx context.Context, o ClientOptions) (*sts.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(o.Credentials),
		config.WithSharedCredentialsFiles(nonEmpty(o.Request.CredentialsFile)),
		config.WithSharedConfigFiles(nonEmpty(o.Request.ConfigFile)),
	}
	if o.Request.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(o.Request.Profile))
	}
	if o.Region != "" {
		opts = append(opts, config.WithRegion(o.Region))
	}
	if o.Logger != nil && o.Logger.Core().Enabled(zap.DebugLevel) {
		opts = append(opts, config.WithAPIOptions([]func(*middleware.Stack) error{
			logErrorBodies(o.Logger),
		}))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	return sts.NewFromConfig(cfg), nil
}

func nonEmpty(paths ...string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

const errorLogMiddlewareID = "credctl.LogErrorBody"

// logErrorBodies registers errorBodyLogger next to the transport.
func logErrorBodies(logger *zap.Logger) func(*middleware.Stack) error {
	return func(stack *middleware.Stack) error {
		return stack.Deserialize.Add(errorBodyLogger(logger), middleware.After)
	}
}

// errorBodyLogger decodes failed XML responses and logs them. The body is
// restored for the SDK's own deserializer.
func errorBodyLogger(logger *zap.Logger) middleware.DeserializeMiddleware {
	return middleware.DeserializeMiddlewareFunc(errorLogMiddlewareID, func(
		ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler,
	) (middleware.DeserializeOutput, middleware.Metadata, error) {
		out, md, err := next.HandleDeserialize(ctx, in)
		if err != nil {
			return out, md, err
		}
		resp, ok := out.RawResponse.(*smithyhttp.Response)
		if !ok || resp.Response == nil || resp.StatusCode < 300 || resp.Body == nil {
			return out, md, nil
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(body))
		if readErr != nil {
			return out, md, nil
		}

		xerr, parseErr := xmlutil.ParseErrorResponse(bytes.NewReader(body))
		if parseErr != nil {
			logger.Debug("undecodable sts error body",
				zap.Int("status", resp.StatusCode), zap.Error(parseErr))
			return out, md, nil
		}
		logger.Debug("sts error response",
			zap.Int("status", resp.StatusCode),
			zap.String("type", xerr.Type),
			zap.String("code", xerr.Code),
			zap.String("message", xerr.Message),
			zap.String("request_id", xerr.RequestID),
			zap.String("fault", xerr.APIError().ErrorFault().String()))
		return out, md, nil
	})
}

// CallerIdentity asks STS who the credentials belong to.
func CallerIdentity(ctx context.Context, client STSAPI) (*Identity, error) {
	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, err
	}
	return &Identity{
		Account: aws.ToString(out.Account),
		Arn:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}

// AssumeRoleInput describes a role assumption.
type AssumeRoleInput struct {
	RoleArn     string
	SessionName string
	Duration    int32 // seconds, 0 for the STS default
	MfaSerial   string
	TokenCode   string
}

// AssumeRole calls sts:AssumeRole and returns the temporary credentials.
func AssumeRole(ctx context.Context, client STSAPI, in AssumeRoleInput) (*Session, error) {
	req := &sts.AssumeRoleInput{
		RoleArn:         aws.String(in.RoleArn),
		RoleSessionName: aws.String(in.SessionName),
	}
	if in.Duration > 0 {
		req.DurationSeconds = aws.Int32(in.Duration)
	}
	if in.MfaSerial != "" {
		req.SerialNumber = aws.String(in.MfaSerial)
		req.TokenCode = aws.String(in.TokenCode)
	}

	out, err := client.AssumeRole(ctx, req)
	if err != nil {
		return nil, err
	}
	if out.Credentials == nil {
		return nil, fmt.Errorf("assume role %s: response carried no credentials", in.RoleArn)
	}

	return &Session{
		AccessKey:    aws.ToString(out.Credentials.AccessKeyId),
		SecretKey:    aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken: aws.ToString(out.Credentials.SessionToken),
		Expiration:   aws.ToTime(out.Credentials.Expiration),
		RoleArn:      in.RoleArn,
		SessionName:  in.SessionName,
	}, nil
}
