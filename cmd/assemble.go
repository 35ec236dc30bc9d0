package cmd

import (
	"github.com/jjtimmons/moclo/internal/moclo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleCmd is for resolving an abstract design into plasmids from a library
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Pick library plasmids that assemble an abstract design",
	SuggestionsMinimumDistance: 3,
	Long: `Resolve an abstract design (an ordered list of parts) into MoClo plasmids.

For each part, plasmids in the library carrying it are found and their fusion
sites are read from their annotated overhangs. Plasmids are then picked left to
right: the first has to enter on the backbone's first fusion site, each next one
on the exit site of the one before it, and the last has to exit on the
backbone's second fusion site.`,
	Example: "  moclo assemble -d design.yaml -l library.yaml -b DVA_AE.yaml -o gfp.json",
	Aliases: []string{"translate", "build"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return moclo.AssembleCmd(cmd, logger)
	},
}

// set flags
func init() {
	// Flags for specifying the paths to the input documents and the output file
	assembleCmd.Flags().StringP("design", "d", "", "abstract design document <YAML/JSON>")
	assembleCmd.Flags().StringP("library", "l", "", "library of plasmids <YAML/JSON>")
	assembleCmd.Flags().StringP("backbone", "b", "", "destination backbone document <YAML/JSON>")
	assembleCmd.Flags().StringP("out", "o", "", "output file name <JSON>")

	// Flags that override the settings file
	assembleCmd.Flags().String("strategy", "greedy", "plasmid picking strategy: greedy or backtrack")
	assembleCmd.Flags().String("ordering", "positional", "fusion site ordering: positional or sorted")
	assembleCmd.Flags().Bool("reject-ambiguous", false, "fail if more than one plasmid fits a position")
	viper.BindPFlag("strategy", assembleCmd.Flags().Lookup("strategy"))
	viper.BindPFlag("ordering", assembleCmd.Flags().Lookup("ordering"))
	viper.BindPFlag("reject-ambiguous", assembleCmd.Flags().Lookup("reject-ambiguous"))
	viper.BindPFlag("out", assembleCmd.Flags().Lookup("out"))

	RootCmd.AddCommand(assembleCmd)
}
