package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	hashCost          = 10
)

var ErrPasswordTooShort = errors.New("la contraseña debe tener al menos 6 caracteres")

// NewGenHashCommand creates the genhash command, which prints a value for
// ADMIN_PASSWORD_HASH. The password is read from stdin unless given as an
// argument, so it need not end up in shell history.
func NewGenHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genhash [password]",
		Short: "Genera el hash bcrypt de la contraseña del administrador",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "Ingresa la contraseña que quieres usar: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}

			hash, err := HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ADMIN_PASSWORD_HASH=%s\n", hash)
			return nil
		},
	}
}

// HashPassword enforces the minimum length and hashes with cost 10.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
