// poll.go implements the "votecaster poll" command for inspecting polls.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pollCmd = &cobra.Command{
	Use:   "poll [pid]",
	Short: "Show a poll, or the latest polls when no pid is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPoll,
}

func runPoll(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.Close()

	if len(args) == 0 {
		list, err := rt.Client.ListPolls(cmd.Context(), rt.Cfg.Browser.PageSize, 0)
		if err != nil {
			return err
		}
		for _, p := range list.Polls {
			fmt.Printf("%s  %6d votes  %s\n", p.PollID, p.CastedVotes, p.Question)
		}
		return nil
	}

	return printPoll(cmd.Context(), rt, args[0])
}

// printPoll fetches one poll and writes its details to stdout. Shared with
// the community command's poll route.
func printPoll(ctx context.Context, rt *runtime, pid string) error {
	p, err := rt.Client.Poll(ctx, pid)
	if err != nil {
		return err
	}

	fmt.Println(p.Question)
	for i, choice := range p.Choices {
		line := fmt.Sprintf("  %d. %s", i+1, choice)
		if i < len(p.Tally) {
			line += fmt.Sprintf("  (%s votes)", p.Tally[i])
		}
		fmt.Println(line)
	}
	fmt.Printf("Votes cast: %d  Turnout: %.1f%%\n", p.CastedVotes, p.Turnout)
	if p.Username != "" {
		fmt.Printf("Created by @%s\n", p.Username)
	}
	fmt.Printf("Ends %s", p.EndTime.Format("Jan 02, 2006 15:04"))
	if p.Finalized {
		fmt.Print("  (finalized)")
	}
	fmt.Println()
	fmt.Printf("https://farcaster.vote/%s\n", p.PollID)
	return nil
}
