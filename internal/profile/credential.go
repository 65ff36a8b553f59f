package profile

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const (
	KeyAccessKeyID     = "aws_access_key_id"
	KeySecretAccessKey = "aws_secret_access_key"
	KeySessionToken    = "aws_session_token"
	// KeySecurityToken is the older name for the session token.
	KeySecurityToken = "aws_security_token"
)

// ProviderName is reported as aws.Credentials.Source.
const ProviderName = "ProfileProvider"

// Credential is the result of a successful resolution.
type Credential struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expires         *time.Time
}

// AWS converts c to the SDK representation.
func (c Credential) AWS() aws.Credentials {
	creds := aws.Credentials{
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
		Source:          ProviderName,
	}
	if c.Expires != nil {
		creds.CanExpire = true
		creds.Expires = *c.Expires
	}
	return creds
}

// Extract builds a Credential from the properties of profile. Properties
// other than the key pair and session token are ignored.
func Extract(profile string, props map[string]string) (Credential, error) {
	accessKey, hasAccess := nonEmpty(props, KeyAccessKeyID)
	secretKey, hasSecret := nonEmpty(props, KeySecretAccessKey)

	switch {
	case hasAccess && hasSecret:
	case hasAccess:
		return Credential{}, &ProfileError{Profile: profile, Err: ErrMissingSecretKey}
	case hasSecret:
		return Credential{}, &ProfileError{Profile: profile, Err: ErrMissingAccessKey}
	default:
		return Credential{}, &ProfileError{Profile: profile, Err: ErrMissingKeys}
	}

	token, ok := nonEmpty(props, KeySessionToken)
	if !ok {
		token, _ = nonEmpty(props, KeySecurityToken)
	}
	return Credential{
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		SessionToken:    token,
	}, nil
}

func nonEmpty(props map[string]string, key string) (string, bool) {
	v, ok := props[key]
	return v, ok && v != ""
}
