package moclo

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FusionSite is the name of a standard overhang, eg "A" or "B2".
type FusionSite string

// cidarSites are the overhangs of the CIDAR MoClo kit.
var cidarSites = map[string]string{
	"A": "GGAG",
	"B": "TACT",
	"C": "AATG",
	"D": "AGGT",
	"E": "GCTT",
	"F": "CGCT",
	"G": "TGCC",
	"H": "ACTA",
}

var nonBp = regexp.MustCompile("[^ATGC]")

// FusionSiteTable maps fusion site names to their canonical sequences.
type FusionSiteTable struct {
	// sites is a map between a site's name and its sequence
	sites map[string]string

	// bySeq is a map from an uppercased sequence back to its site
	bySeq map[string]FusionSite
}

// SiteEntry is a single row of the table.
type SiteEntry struct {
	Name FusionSite
	Seq  string
}

// NewFusionSiteTable validates and indexes a map from site name to sequence.
func NewFusionSiteTable(sites map[string]string) (*FusionSiteTable, error) {
	if len(sites) == 0 {
		return nil, fmt.Errorf("fusion site table is empty")
	}

	t := &FusionSiteTable{
		sites: make(map[string]string, len(sites)),
		bySeq: make(map[string]FusionSite, len(sites)),
	}
	for name, seq := range sites {
		name = strings.TrimSpace(name)
		seq = strings.ToUpper(strings.TrimSpace(seq))

		if name == "" {
			return nil, fmt.Errorf("fusion site with sequence %s has no name", seq)
		}
		if seq == "" || nonBp.MatchString(seq) {
			return nil, fmt.Errorf("fusion site %s has invalid sequence %q", name, seq)
		}
		if other, dup := t.bySeq[seq]; dup {
			return nil, fmt.Errorf("fusion sites %s and %s share the sequence %s", other, name, seq)
		}

		t.sites[name] = seq
		t.bySeq[seq] = FusionSite(name)
	}

	return t, nil
}

// DefaultFusionSites returns the CIDAR MoClo overhangs.
func DefaultFusionSites() *FusionSiteTable {
	t, err := NewFusionSiteTable(cidarSites)
	if err != nil {
		panic(err)
	}
	return t
}

// ReadFusionSites parses a YAML file of "name: SEQUENCE" pairs. An empty
// path returns the default table.
func ReadFusionSites(path string) (*FusionSiteTable, error) {
	if path == "" {
		return DefaultFusionSites(), nil
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fusion site table: %w", err)
	}

	sites := make(map[string]string)
	if err := yaml.Unmarshal(dat, &sites); err != nil {
		return nil, fmt.Errorf("failed to parse fusion site table %s: %w", path, err)
	}

	return NewFusionSiteTable(sites)
}

// Lookup returns the site whose sequence equals seq, ignoring case.
func (t *FusionSiteTable) Lookup(seq string) (FusionSite, bool) {
	site, ok := t.bySeq[strings.ToUpper(seq)]
	return site, ok
}

// Seq returns the sequence of the named site.
func (t *FusionSiteTable) Seq(name FusionSite) (string, bool) {
	seq, ok := t.sites[string(name)]
	return seq, ok
}

// Entries returns every site, sorted by name ignoring case. Names that only
// differ by case are in byte order.
func (t *FusionSiteTable) Entries() []SiteEntry {
	entries := make([]SiteEntry, 0, len(t.sites))
	for name, seq := range t.sites {
		entries = append(entries, SiteEntry{Name: FusionSite(name), Seq: seq})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := string(entries[i].Name), string(entries[j].Name)
		if la, lb := strings.ToLower(a), strings.ToLower(b); la != lb {
			return la < lb
		}
		return a < b
	})
	return entries
}

// Find returns the site with the name passed. Without an exact match it
// returns sites whose names contain the name or are within a small
// levenshtein distance of it.
func (t *FusionSiteTable) Find(name string) []SiteEntry {
	if seq, exact := t.sites[name]; exact {
		return []SiteEntry{{Name: FusionSite(name), Seq: seq}}
	}

	ldCutoff := len(name) / 3
	if ldCutoff < 1 {
		ldCutoff = 1
	}

	similar := []SiteEntry{}
	for _, e := range t.Entries() {
		n := string(e.Name)
		if strings.Contains(strings.ToUpper(n), strings.ToUpper(name)) || ld(name, n, true) <= ldCutoff {
			similar = append(similar, e)
		}
	}
	return similar
}

// ld compares two strings and returns the levenshtein distance between them.
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
