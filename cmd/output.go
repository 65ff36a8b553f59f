package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chukul/credctl/internal/profile"
)

const (
	outputEnv  = "env"
	outputJSON = "json"
	outputYAML = "yaml"
)

// exportedCredentials matches the credential_process output format so json
// output can be consumed by the SDKs directly.
type exportedCredentials struct {
	Version         int        `json:"Version" yaml:"version"`
	AccessKeyID     string     `json:"AccessKeyId" yaml:"aws_access_key_id"`
	SecretAccessKey string     `json:"SecretAccessKey" yaml:"aws_secret_access_key"`
	SessionToken    string     `json:"SessionToken,omitempty" yaml:"aws_session_token,omitempty"`
	Expiration      *time.Time `json:"Expiration,omitempty" yaml:"expiration,omitempty"`
}

func writeCredentials(w io.Writer, format string, c profile.Credential) error {
	switch format {
	case outputEnv, "":
		fmt.Fprintf(w, "export AWS_ACCESS_KEY_ID=%s\n", shellQuote(c.AccessKeyID))
		fmt.Fprintf(w, "export AWS_SECRET_ACCESS_KEY=%s\n", shellQuote(c.SecretAccessKey))
		if c.SessionToken != "" {
			fmt.Fprintf(w, "export AWS_SESSION_TOKEN=%s\n", shellQuote(c.SessionToken))
		} else {
			fmt.Fprintln(w, "unset AWS_SESSION_TOKEN")
		}
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(export(c))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(export(c)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want env, json or yaml)", format)
	}
}

func export(c profile.Credential) exportedCredentials {
	out := exportedCredentials{
		Version:         1,
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
	}
	if c.Expires != nil {
		exp := c.Expires.UTC()
		out.Expiration = &exp
	}
	return out
}

// shellQuote wraps s in single quotes so eval sees it as one word.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// mask keeps the first four characters of a key.
func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****************"
}
