// login.go implements the "votecaster login" command.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/log"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with a Votecaster access token",
	Long: `Verify an access token against the backend and persist the
resulting session. The token can be passed with --token or entered
at the hidden prompt.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.Close()

	token := strings.TrimSpace(loginToken)
	if token == "" {
		fmt.Print("Access token: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return fmt.Errorf("no token provided")
	}

	profile, err := rt.Session.Login(cmd.Context(), token, func(ctx context.Context, tok string) (*api.Profile, error) {
		return rt.Client.WithToken(tok).Me(ctx)
	})
	if err != nil {
		return err
	}

	if logErr := rt.Logger.Append(log.LogEvent{
		Event:    log.EventLogin,
		FID:      profile.FID,
		Username: profile.Username,
	}); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write log: %v\n", logErr)
	}

	fmt.Printf("Signed in as @%s (fid %d)\n", profile.Username, profile.FID)
	return nil
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Access token (prompted when omitted)")
}
