package profile

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	EnvProfile         = "AWS_PROFILE"
	EnvCredentialsFile = "AWS_SHARED_CREDENTIALS_FILE"
	EnvConfigFile      = "AWS_CONFIG_FILE"
	// EnvSharedConfigFile is accepted as an alias of EnvConfigFile.
	EnvSharedConfigFile = "AWS_SHARED_CONFIG_FILE"

	DefaultProfile = "default"
)

// Request names the profile and the files one resolution reads. An empty
// path means the file is not consulted.
type Request struct {
	Profile         string
	CredentialsFile string
	ConfigFile      string
}

// Env is the ambient state defaults are derived from.
type Env struct {
	Getenv  func(string) string
	HomeDir func() (string, error)
}

// OSEnv reads the process environment.
func OSEnv() Env {
	return Env{Getenv: os.Getenv, HomeDir: homedir.Dir}
}

func (e Env) lookup(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

// LoadDefaults fills the empty fields of req from env. The home directory is
// only consulted for a path with no variable set; if it cannot be found the
// path stays empty, and ErrHomeDirectoryUnavailable is returned only when
// neither path is known.
func LoadDefaults(req Request, env Env) (Request, error) {
	if req.Profile == "" {
		req.Profile = env.lookup(EnvProfile)
	}
	if req.Profile == "" {
		req.Profile = DefaultProfile
	}

	if req.CredentialsFile == "" {
		req.CredentialsFile = env.lookup(EnvCredentialsFile)
	}
	if req.ConfigFile == "" {
		req.ConfigFile = env.lookup(EnvConfigFile)
	}
	if req.ConfigFile == "" {
		req.ConfigFile = env.lookup(EnvSharedConfigFile)
	}
	if req.CredentialsFile != "" && req.ConfigFile != "" {
		return req, nil
	}

	home, err := env.homeDir()
	if err != nil {
		if req.CredentialsFile == "" && req.ConfigFile == "" {
			return req, ErrHomeDirectoryUnavailable
		}
		return req, nil
	}
	if req.CredentialsFile == "" {
		req.CredentialsFile = filepath.Join(home, ".aws", "credentials")
	}
	if req.ConfigFile == "" {
		req.ConfigFile = filepath.Join(home, ".aws", "config")
	}
	return req, nil
}

func (e Env) homeDir() (string, error) {
	if e.HomeDir == nil {
		return "", ErrHomeDirectoryUnavailable
	}
	home, err := e.HomeDir()
	if err != nil || home == "" {
		return "", ErrHomeDirectoryUnavailable
	}
	return home, nil
}
