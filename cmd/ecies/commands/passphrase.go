package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"ecies256k1/internal/app"
	"ecies256k1/internal/util/memzero"
)

// passphrase returns the configured passphrase or prompts for one on the terminal.
func passphrase(prompt string, confirm bool) (string, error) {
	if p := appCtx.Config.Passphrase; p != "" {
		return p, nil
	}
	first, err := readPassword(prompt)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(first)

	if confirm {
		second, err := readPassword("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		defer memzero.Zero(second)
		if !bytes.Equal(first, second) {
			return "", fmt.Errorf("passphrases do not match")
		}
	}
	if len(first) == 0 {
		return "", fmt.Errorf("passphrase cannot be empty")
	}
	return string(first), nil
}

// readPassword reads without echo from stdin when it is a terminal, or from
// /dev/tty when stdin carries the payload.
func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, fmt.Errorf(
				"cannot prompt for passphrase: stdin is piped and no terminal is available; use -p or %s_PASSPHRASE",
				app.EnvPrefix,
			)
		}
		defer tty.Close()
		fd = int(tty.Fd())
	}
	return term.ReadPassword(fd)
}

// readInput returns the contents of path, or of stdin when path is "" or "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes b to path, or to stdout when path is "" or "-".
func writeOutput(stdout io.Writer, path string, b []byte, mode os.FileMode) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, mode)
}
