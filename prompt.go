package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptForKey reads a passphrase from the terminal with echo disabled.
// Errors never echo the key content.
func promptForKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	fmt.Fprint(os.Stderr, "Enter key: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read key")
	}
	return string(b), nil
}
