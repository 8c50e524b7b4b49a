package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// PasswordPrompt asks for one secret value and returns it without the trailing newline.
type PasswordPrompt func(label string) (string, error)

// TerminalPrompt reads passwords from stdin with echo disabled. Input that is not a
// terminal, such as a pipe, is read as is.
func TerminalPrompt(stdin *os.File, stdout io.Writer) PasswordPrompt {
	reader := bufio.NewReader(stdin)
	return func(label string) (string, error) {
		fmt.Fprint(stdout, label)
		if restore, err := disableEcho(stdin); err == nil {
			defer restore()
		}

		line, err := reader.ReadString('\n')
		fmt.Fprintln(stdout)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
