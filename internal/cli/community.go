// community.go implements the "votecaster community" command.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vocdoni/votecaster-tui/internal/api"
)

var communityCmd = &cobra.Command{
	Use:   "community [id [poll <pid>]]",
	Short: "Show a community, one of its polls, or list communities",
	Args:  validCommunityArgs,
	RunE:  runCommunity,
}

// validCommunityArgs accepts no args, a community id, or "<id> poll <pid>".
func validCommunityArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0, 1:
		return nil
	case 3:
		if args[1] != "poll" {
			return fmt.Errorf("expected: community <id> poll <pid>")
		}
		return nil
	}
	return fmt.Errorf("expected: community [id [poll <pid>]]")
}

func runCommunity(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.Close()

	if len(args) == 3 {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid community id %q", args[0])
		}
		c, err := rt.Client.Community(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Community: %s (id %d)\n\n", c.Name, c.ID)
		return printPoll(cmd.Context(), rt, args[2])
	}

	if len(args) == 0 {
		list, err := rt.Client.ListCommunities(cmd.Context(), rt.Cfg.Browser.PageSize, 0)
		if err != nil {
			return err
		}
		for _, c := range list.Communities {
			state := ""
			if c.Disabled {
				state = "  (disabled)"
			}
			fmt.Printf("%6d  %s%s\n", c.ID, c.Name, state)
		}
		return nil
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid community id %q", args[0])
	}

	c, err := rt.Client.Community(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (id %d)\n", c.Name, c.ID)
	if c.Disabled {
		fmt.Println("Disabled")
	}
	switch c.CensusType {
	case api.CensusTypeChannel:
		if c.CensusChannel != nil {
			fmt.Printf("Census: channel /%s (%d followers)\n", c.CensusChannel.ID, c.CensusChannel.Followers)
		} else {
			fmt.Println("Census: channel based")
		}
	case api.CensusTypeERC20, api.CensusTypeNFT:
		fmt.Printf("Census: %s\n", c.CensusType)
		for _, addr := range c.CensusAddresses {
			fmt.Printf("  %s on %s\n", addr.Address, addr.Blockchain)
		}
	}
	for _, ch := range c.Channels {
		fmt.Printf("Announces in /%s\n", ch)
	}
	if c.GroupChatURL != "" {
		fmt.Printf("Group chat: %s\n", c.GroupChatURL)
	}
	return nil
}
