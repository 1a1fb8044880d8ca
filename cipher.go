package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vigenere-backend/crypto"
)

var table = crypto.NewTable(crypto.NewAlphabet())

// readKey is swapped out in tests.
var readKey = promptForKey

func newCipherCmd(op string) *cobra.Command {
	var (
		key     string
		prompt  bool
		display bool
	)

	fn := crypto.Encode
	short := "Encode plaintext with a passphrase"
	if op == "decode" {
		fn = crypto.Decode
		short = "Decode ciphertext with a passphrase"
	}

	cmd := &cobra.Command{
		Use:   op + " [text ...]",
		Short: short,
		Long: short + `.

Arguments are joined with single spaces. With no arguments the text is read
from stdin unchanged. The result is written without a trailing newline so that
output can be piped back in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if prompt {
				// A prompted key never falls back to the default.
				if key, err = readKey(); err != nil {
					return err
				}
			} else if key == "" {
				key = cfg.Cipher.DefaultKey
			}

			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out, err := fn(text, key, table)
			if err != nil {
				return fmt.Errorf("%s failed: %w", op, err)
			}
			if display {
				out = crypto.ForDisplay(out)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Passphrase (defaults to cipher.default_key)")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "Read the passphrase from the terminal without echo")
	if op == "decode" {
		cmd.Flags().BoolVar(&display, "display", false, "Render spaces and line breaks as &nbsp; and <br>")
	}
	return cmd
}

func readText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}

var alphabetCmd = &cobra.Command{
	Use:   "alphabet",
	Short: "Print the cipher alphabet, one symbol per line with its index",
	Run: func(cmd *cobra.Command, args []string) {
		a := table.Alphabet()
		w := cmd.OutOrStdout()
		for i := 0; i < a.Len(); i++ {
			fmt.Fprintf(w, "%3d %q\n", i, a.SymbolAt(i))
		}
	},
}

func init() {
	rootCmd.AddCommand(newCipherCmd("encode"), newCipherCmd("decode"), alphabetCmd)
}
