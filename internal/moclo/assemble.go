package moclo

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/jjtimmons/moclo/config"
	"github.com/jjtimmons/moclo/internal/sbol"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flags are the parsed cobra flags of the assemble command
type Flags struct {
	// path to the abstract design document
	design string

	// path to the library of plasmids
	library string

	// path to the destination backbone document
	backbone string

	// the name of the file to write the output to
	out string
}

// NewFlags makes a new flags object manually. for testing
func NewFlags(design, library, backbone, out string) *Flags {
	return &Flags{design: design, library: library, backbone: backbone, out: out}
}

// parseCmdFlags gathers the document paths from a cobra cmd object. Without
// an --out flag the settings' output file is used, then one next to the design.
func parseCmdFlags(cmd *cobra.Command, conf *config.Config) (*Flags, error) {
	fs := &Flags{}

	var err error
	for flag, dest := range map[string]*string{
		"design":   &fs.design,
		"library":  &fs.library,
		"backbone": &fs.backbone,
		"out":      &fs.out,
	} {
		if *dest, err = cmd.Flags().GetString(flag); err != nil {
			return nil, fmt.Errorf("failed to parse %s flag: %w", flag, err)
		}
	}

	if fs.design == "" || fs.library == "" || fs.backbone == "" {
		return nil, fmt.Errorf("a design, library and backbone are all required. see 'moclo assemble --help'")
	}

	if fs.out == "" {
		fs.out = conf.Out
	}
	if fs.out == "" {
		fs.out = guessOutput(fs.design)
	}

	return fs, nil
}

// guessOutput gets an output path from the design's path
func guessOutput(in string) string {
	ext := filepath.Ext(in)
	return in[0:len(in)-len(ext)] + ".moclo.json"
}

// AssembleCmd resolves the plasmids for the design passed to 'moclo assemble'.
func AssembleCmd(cmd *cobra.Command, log *zap.Logger) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	flags, err := parseCmdFlags(cmd, conf)
	if err != nil {
		return err
	}

	_, err = Assemble(flags, conf, log, cmd.OutOrStdout())
	return err
}

// Assemble reads the documents in flags, resolves the design, writes the JSON
// output and logs the chain to w.
func Assemble(flags *Flags, conf *config.Config, log *zap.Logger, w io.Writer) (*Result, error) {
	start := time.Now()

	opts, err := optionsFromConfig(conf, log)
	if err != nil {
		return nil, err
	}

	table, err := ReadFusionSites(conf.FusionSites)
	if err != nil {
		return nil, err
	}

	docs := make([]*sbol.Document, 3)
	for i, path := range []string{flags.design, flags.library, flags.backbone} {
		if docs[i], err = sbol.Read(path); err != nil {
			return nil, err
		}
	}

	res, err := Translate(docs[0], docs[1], docs[2], table, opts)
	if err != nil {
		return nil, err
	}

	if _, err = writeJSON(flags.out, res, opts.Strategy, time.Since(start).Seconds()); err != nil {
		return nil, err
	}

	return res, writeTable(w, res)
}

// optionsFromConfig validates the settings of a resolution
func optionsFromConfig(conf *config.Config, log *zap.Logger) (Options, error) {
	ordering, err := ParseOrdering(conf.Ordering)
	if err != nil {
		return Options{}, err
	}

	strategy, err := ParseStrategy(conf.Strategy)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Logger:          log,
		Ordering:        ordering,
		Strategy:        strategy,
		RejectAmbiguous: conf.RejectAmbiguous,
		FusionSiteRole:  conf.Roles.FusionSite,
		PlasmidRole:     conf.Roles.Plasmid,
	}, nil
}

// SiteFindCmd logs fusion sites with names similar to the one requested, or
// all of them if no name is passed.
func SiteFindCmd(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	table, err := ReadFusionSites(conf.FusionSites)
	if err != nil {
		return err
	}

	entries := table.Entries()
	if len(args) > 0 {
		entries = table.Find(args[0])
	}
	if len(entries) == 0 {
		return fmt.Errorf("failed to find any fusion sites for %s", args[0])
	}

	return writeSites(cmd.OutOrStdout(), entries)
}
