package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/chukul/credctl/internal/ui"
)

// readMFACode prompts for a token code. It uses the interactive input when
// stdin is a terminal and a plain line read otherwise.
func readMFACode(serial string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		return ui.ReadMFACode(serial)
	}

	var code string
	if _, err := fmt.Fscanln(os.Stdin, &code); err != nil {
		return "", fmt.Errorf("failed to read MFA code: %w", err)
	}
	return strings.TrimSpace(code), nil
}
