package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chukul/credctl/internal/profile"
)

const managedMarker = "; Managed by credctl"

// WriteSession stores s as the [s.Profile] section of the credentials file at
// path. An existing section with that name, and the managed comment above it,
// is replaced. Other sections are kept as they are.
func WriteSession(path string, s *Session) error {
	if !profile.IsIdentifier(s.Profile) || s.Profile == "" {
		return fmt.Errorf("invalid profile name %q", s.Profile)
	}

	lines, err := readLines(path)
	if err != nil {
		return err
	}
	lines = trimTrailingBlank(dropSection(lines, s.Profile))
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	sessionType := "Role Session"
	if s.RoleArn == "" {
		sessionType = "Session"
	}
	lines = append(lines,
		fmt.Sprintf("%s (%s) - Expires: %s", managedMarker, sessionType, FormatTime(s.Expiration)),
		fmt.Sprintf("[%s]", s.Profile),
		fmt.Sprintf("%s = %s", profile.KeyAccessKeyID, s.AccessKey),
		fmt.Sprintf("%s = %s", profile.KeySecretAccessKey, s.SecretKey),
	)
	if s.SessionToken != "" {
		lines = append(lines, fmt.Sprintf("%s = %s", profile.KeySessionToken, s.SessionToken))
	}
	lines = append(lines, "")

	return writeLines(path, lines)
}

// RemoveSection deletes the [name] section of the credentials file at path.
// It reports whether a section was found.
func RemoveSection(path, name string) (bool, error) {
	lines, err := readLines(path)
	if err != nil {
		return false, err
	}
	kept := dropSection(lines, name)
	if len(kept) == len(lines) {
		return false, nil
	}
	kept = trimTrailingBlank(kept)
	if len(kept) > 0 {
		kept = append(kept, "")
	}
	return true, writeLines(path, kept)
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n"), nil
}

func writeLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// dropSection removes the section called name up to the next header, along
// with managed comments that directly precede it.
func dropSection(lines []string, name string) []string {
	out := make([]string, 0, len(lines))
	skip := false
	for i, line := range lines {
		if strings.HasPrefix(line, "[") {
			found, ok := profile.CredentialsGrammar.ProfileName(line)
			skip = ok && found == name
		}

		if strings.HasPrefix(strings.TrimSpace(line), managedMarker) {
			if next, ok := nextHeader(lines[i+1:]); ok && next == name {
				continue
			}
			// belongs to the following section
			skip = false
		}
		if !skip {
			out = append(out, line)
		}
	}
	return out
}

// nextHeader returns the profile named by the first header in lines, looking
// past blank lines and comments only.
func nextHeader(lines []string) (string, bool) {
	for _, line := range lines {
		switch profile.Classify(line).Kind {
		case profile.LineBlank:
			continue
		case profile.LineHeader:
			return profile.CredentialsGrammar.ProfileName(line)
		}
		return "", false
	}
	return "", false
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
