package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

var (
	loginEmail string
	loginRole  string
)

// readPassword is swappable for tests; the default reads from the terminal
// without echo.
var readPassword = func() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		role := api.Role(strings.ToLower(loginRole))
		if !role.Valid() {
			return fmt.Errorf("role must be admin, staff or student")
		}
		if loginEmail == "" {
			return fmt.Errorf("--email is required")
		}

		password, err := readPassword()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		resp, err := client.Auth().Login(ctx, api.LoginRequest{
			Email:    loginEmail,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return err
		}
		if err := store.Login(resp.User, resp.Token); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}

		logger.Info("login", zap.String("email", loginEmail), zap.String("role", string(role)))
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", resp.User.FullName, resp.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, ok := store.Principal()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s id=%d\n", user.FullName, user.Email, user.Role, user.ID)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginRole, "role", "student", "account role: admin, staff or student")
}
