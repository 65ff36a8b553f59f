package internal

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Session is a set of temporary credentials returned by STS.
type Session struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Expiration   time.Time

	Profile       string // name the session is written under, if any
	SourceProfile string // profile whose credentials signed the STS call
	RoleArn       string
	SessionName   string
	Region        string
}

// Provider returns a static credentials provider for s.
func (s *Session) Provider() aws.CredentialsProvider {
	return credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, s.SessionToken)
}

// Identity is the result of sts:GetCallerIdentity.
type Identity struct {
	Account string
	Arn     string
	UserID  string
}
