package profile

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrFileRead is wrapped by every error caused by opening or reading a
	// credentials or config file.
	ErrFileRead = errors.New("unable to read profile file")

	// ErrHomeDirectoryUnavailable is returned when no file location can be
	// defaulted because the home directory is unknown.
	ErrHomeDirectoryUnavailable = errors.New("home directory unavailable, set HOME or the file location variables")

	ErrProfileNotFound  = errors.New("profile not found")
	ErrMissingAccessKey = errors.New("missing access key")
	ErrMissingSecretKey = errors.New("missing secret key")
	ErrMissingKeys      = errors.New("missing access and secret key")
)

// ProfileError ties a resolution failure to the requested profile.
type ProfileError struct {
	Profile string
	Err     error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%v for profile %q", e.Err, e.Profile)
}

func (e *ProfileError) Unwrap() error { return e.Err }

// FilesUnreadableError is returned when both configured files failed.
type FilesUnreadableError struct {
	CredentialsFile string
	ConfigFile      string
	Err             *multierror.Error
}

func (e *FilesUnreadableError) Error() string {
	var credErr, confErr error
	if e.Err != nil && len(e.Err.Errors) == 2 {
		credErr, confErr = e.Err.Errors[0], e.Err.Errors[1]
	}
	return fmt.Sprintf("neither credentials nor config file could be read, %s: %v, %s: %v",
		e.CredentialsFile, credErr, e.ConfigFile, confErr)
}

func (e *FilesUnreadableError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err.ErrorOrNil()
}
