package profile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

const maxLineSize = 1024 * 1024

// Store maps profile names to their properties. A Store is built for a
// single resolution and then discarded.
type Store struct {
	profiles map[string]map[string]string
	logger   *zap.Logger
}

// NewStore returns an empty store. A nil logger discards log output.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		profiles: make(map[string]map[string]string),
		logger:   logger,
	}
}

// LoadStore parses the credentials file and then the config file named by
// req into a new store. Credentials file entries win over config file ones.
func LoadStore(req Request, logger *zap.Logger) (*Store, error) {
	s := NewStore(logger)

	var credErr, confErr error
	if req.CredentialsFile != "" {
		credErr = s.ParseCredentials(req.CredentialsFile)
	}
	if req.ConfigFile != "" {
		confErr = s.ParseConfig(req.ConfigFile)
	}

	switch {
	case credErr != nil && confErr != nil:
		return nil, &FilesUnreadableError{
			CredentialsFile: req.CredentialsFile,
			ConfigFile:      req.ConfigFile,
			Err:             multierror.Append(credErr, confErr),
		}
	case credErr != nil:
		if req.ConfigFile == "" {
			return nil, credErr
		}
		s.logger.Info("ignoring unreadable credentials file",
			zap.String("path", req.CredentialsFile), zap.Error(credErr))
	case confErr != nil:
		if req.CredentialsFile == "" {
			return nil, confErr
		}
		s.logger.Info("ignoring unreadable config file",
			zap.String("path", req.ConfigFile), zap.Error(confErr))
	}
	return s, nil
}

// ParseCredentials reads a shared credentials file.
func (s *Store) ParseCredentials(path string) error {
	return s.parseFile(path, CredentialsGrammar)
}

// ParseConfig reads a shared config file.
func (s *Store) ParseConfig(path string) error {
	return s.parseFile(path, ConfigGrammar)
}

func (s *Store) parseFile(path string, g Grammar) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	defer f.Close()

	if err := s.ParseReader(f, path, g); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
	}
	return nil
}

// ParseReader feeds every line of r through a parser using g. name is only
// used in log output.
func (s *Store) ParseReader(r io.Reader, name string, g Grammar) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	p := NewParser(g)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()

		var prop *Property
		var warn Warning
		p, prop, warn = p.Step(raw)
		if prop != nil {
			s.Set(prop.Profile, prop.Key, prop.Value)
		}
		if warn != NoWarning {
			s.logger.Warn(warn.String(),
				zap.String("line", raw),
				zap.String("path", name),
				zap.Int("line_number", lineNo),
				zap.Stringer("grammar", g))
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if _, prop := p.Finish(); prop != nil {
		s.Set(prop.Profile, prop.Key, prop.Value)
	}
	return nil
}

// Set records key=value for profile unless the key is already present.
func (s *Store) Set(profile, key, value string) {
	props, ok := s.profiles[profile]
	if !ok {
		props = make(map[string]string)
		s.profiles[profile] = props
	}
	if _, exists := props[key]; !exists {
		props[key] = value
	}
}

// Property returns the value of key in profile.
func (s *Store) Property(profile, key string) (string, bool) {
	v, ok := s.profiles[profile][key]
	return v, ok
}

// RemoveProfile detaches and returns the properties of name.
func (s *Store) RemoveProfile(name string) (map[string]string, bool) {
	props, ok := s.profiles[name]
	if ok {
		delete(s.profiles, name)
	}
	return props, ok
}

// Profiles returns the profile names in sorted order.
func (s *Store) Profiles() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
