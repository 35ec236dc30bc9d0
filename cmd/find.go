package cmd

import (
	"github.com/jjtimmons/moclo/internal/moclo"
	"github.com/spf13/cobra"
)

// findCmd is for finding fusion sites by their name.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find fusion sites",
	SuggestionsMinimumDistance: 2,
	Long: `Find fusion sites by name.
If there is no exact match, similar entries are returned`,
	Aliases: []string{"ls", "list"},
}

// siteFindCmd is for reading fusion sites (close to the one requested) from the table.
var siteFindCmd = &cobra.Command{
	Use:                        "site [name]",
	Short:                      "Find fusion sites in the fusion site table",
	RunE:                       moclo.SiteFindCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  moclo find site A",
	Long: `Find fusion sites in the fusion site table that are similar to [name].
Writes each site to the stdout with its name and sequence.

'moclo find site' without any arguments logs all the sites available.`,
	Aliases: []string{"sites", "overhang", "overhangs"},
	Args:    cobra.MaximumNArgs(1),
}

func init() {
	findCmd.AddCommand(siteFindCmd)

	RootCmd.AddCommand(findCmd)
}
