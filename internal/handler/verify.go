package handler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"golang.org/x/term"
)

var (
	ErrNoMatch    = errors.New("password does not match hash")
	ErrNoPassword = errors.New("no password given on standard input")
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <argon2id-hash>",
		Short: "Check a password against an argon2id hash",
		Long: `Check a password against a hash printed by --hash.

The password is read from the terminal without echo, or as the first line
of standard input when it is not a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ok, err := crypto.VerifyPassword(password, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return ErrNoMatch
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "match")
			return err
		},
	}
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", errors.Wrap(err, "reading password")
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "reading password")
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" && errors.Is(err, io.EOF) {
		return "", ErrNoPassword
	}
	return line, nil
}

// PrintError writes err and any attached hints in a user-facing form.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
