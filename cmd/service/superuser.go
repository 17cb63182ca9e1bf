package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// superuserPasswordEnv lets scripts supply the password without a flag.
const superuserPasswordEnv = "APP_SUPERUSER_PASSWORD"

func newCreateSuperuserCmd(opts *globalOptions) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create a superuser, or promote an existing account",
		Long: `Creates an active superuser account. If the username is taken the
account is promoted to superuser and its password is reset.

The password is taken from --password, then ` + superuserPasswordEnv + `,
then the first line of standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(superuserPasswordEnv)
			}
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				password = line
			}

			ctx := cmd.Context()

			env, err := bootstrap(ctx, opts, true)
			if err != nil {
				return err
			}
			defer env.close()

			user, err := env.services().Accounts.CreateSuperuser(ctx, username, email, password)
			if err != nil {
				return fmt.Errorf("creating superuser: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "superuser %q ready (id %d)\n", user.Username, user.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&email, "email", "", "account email address")
	cmd.Flags().StringVar(&password, "password", "", "account password (prefer "+superuserPasswordEnv+")")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
