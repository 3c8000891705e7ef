// create.go implements the "votecaster create" command for scripted poll
// creation.
package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vocdoni/votecaster-tui/internal/form"
	"github.com/vocdoni/votecaster-tui/internal/log"
)

var (
	createQuestion string
	createChoices  []string
	createDuration int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a poll non-interactively",
	Long: `Create a poll from flags, applying the same validation as the
interactive form. Requires a signed-in session.`,
	Example: `  votecaster create -q "Best L2?" -c Base -c Optimism -c Arbitrum -d 48`,
	RunE:    runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.Close()

	client, err := rt.authedClient()
	if err != nil {
		return err
	}

	// An explicitly set duration always reaches validation, so out-of-range
	// values fail instead of silently becoming "absent".
	duration := ""
	if cmd.Flags().Changed("duration") {
		duration = strconv.Itoa(createDuration)
	}

	draft, err := pollDraftFromFlags(createQuestion, createChoices, duration)
	if err != nil {
		return err
	}

	if errs := draft.Validate(); len(errs) > 0 {
		paths := make([]string, 0, len(errs))
		for path := range errs {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", path, errs[path])
		}
		return fmt.Errorf("invalid poll")
	}

	req := draft.Request(rt.Session.Profile())
	if verbose {
		fmt.Printf("POST %s/create question=%q options=%d\n", rt.Cfg.API.BaseURL, req.Question, len(req.Options))
	}

	pid, err := client.CreatePoll(cmd.Context(), req)
	if err != nil {
		_ = rt.Logger.Append(log.LogEvent{
			Event: log.EventPollCreateFailed,
			Error: err.Error(),
		})
		return err
	}

	_ = rt.Logger.Append(log.LogEvent{
		Event:    log.EventPollCreated,
		PollID:   pid,
		FID:      rt.Session.Profile().FID,
		Username: rt.Session.Profile().Username,
	})

	fmt.Println(pid)
	fmt.Printf("https://farcaster.vote/%s\n", pid)
	return nil
}

// pollDraftFromFlags builds a poll draft from flag values. Choices fill the
// seeded rows first, then append up to the draft's bound.
func pollDraftFromFlags(question string, choices []string, duration string) (*form.PollDraft, error) {
	draft := form.NewPollDraft()
	draft.Question = question
	draft.Duration = duration
	for i, choice := range choices {
		fields := draft.Choices.Fields()
		if i < len(fields) {
			draft.Choices.Update(fields[i].ID, choice)
			continue
		}
		if !draft.Choices.Append(choice) {
			return nil, fmt.Errorf("too many choices: at most %d", draft.Choices.Len())
		}
	}
	return draft, nil
}

func init() {
	createCmd.Flags().StringVarP(&createQuestion, "question", "q", "", "Poll question (required)")
	createCmd.Flags().StringArrayVarP(&createChoices, "choice", "c", nil, "Poll choice (repeat, 2 to 4 times)")
	createCmd.Flags().IntVarP(&createDuration, "duration", "d", 0, "Poll duration in hours (backend default when omitted)")
	createCmd.MarkFlagRequired("question")
}
