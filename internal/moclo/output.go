package moclo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

// Output is a struct containing the resolved chain of a design.
type Output struct {
	// Design's displayId
	Design string `json:"design"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Strategy used to pick plasmids
	Strategy Strategy `json:"strategy"`

	// Backbone the plasmids are assembled into
	Backbone *Plasmid `json:"backbone"`

	// Plasmids in assembly order
	Plasmids AssemblyChain `json:"plasmids"`
}

// writeJSON serializes a result to the filename requested.
func writeJSON(filename string, res *Result, strategy Strategy, seconds float64) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Design:    res.Design.DisplayID,
		Time:      stamp,
		Execution: seconds,
		Strategy:  strategy,
		Backbone:  res.Backbone,
		Plasmids:  res.Chain,
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %w", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %w", err)
	}
	return output, nil
}

// writeTable logs the chain to w, one plasmid per line with its fusion sites.
func writeTable(w io.Writer, res *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", "position", "plasmid", "entry", "exit")
	for i, p := range res.Chain {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, p.Name, p.FusionSites[0], p.FusionSites[1])
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", "backbone", res.Backbone.Name, res.Backbone.FusionSites[0], res.Backbone.FusionSites[1])

	return tw.Flush()
}

// writeSites logs fusion site names and sequences to w.
func writeSites(w io.Writer, entries []SiteEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Seq)
	}
	return tw.Flush()
}
