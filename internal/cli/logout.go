// logout.go implements the "votecaster logout" command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vocdoni/votecaster-tui/internal/log"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.Close()

	if !rt.Session.IsAuthenticated() {
		fmt.Println("Not signed in.")
		return nil
	}

	username := rt.Session.Profile().Username
	if err := rt.Session.Logout(cmd.Context()); err != nil {
		return err
	}

	if logErr := rt.Logger.Append(log.LogEvent{
		Event:    log.EventLogout,
		Username: username,
	}); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write log: %v\n", logErr)
	}

	fmt.Println("Signed out.")
	return nil
}
