package report

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// Save writes every record collected in c to one merged file at path, in
// the format opts requests. An empty path is a no-op — an empty --output
// prefix means no output. One merged file rather than one file per
// worker: the CLI's single --output path names one file, not a prefix for
// N worker files.
func Save(path string, c *Collector, opts Options) error {
	if path == "" {
		return nil
	}

	var b strings.Builder
	for _, r := range c.All() {
		b.WriteString(r.Format(opts))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}

// SaveFrequentNodes writes the frequent-vertex (".nodes") file:
// one degenerate single-vertex pattern per frequent vertex label, sorted
// by label value for determinism, each with its posting list on the x:
// line.
func SaveFrequentNodes(path string, freq patterngraph.Frequency) error {
	if path == "" {
		return nil
	}

	labels := make([]int, 0, len(freq.VertexLabels))
	for label := range freq.VertexLabels {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	var b strings.Builder
	for seq, label := range labels {
		postings := freq.VertexLabels[label]
		fmt.Fprintf(&b, "t # %d * %d\n", seq, len(postings))
		fmt.Fprintf(&b, "v 0 %d\n", label)

		ids := make([]string, len(postings))
		for i, id := range postings {
			ids[i] = strconv.Itoa(id)
		}
		fmt.Fprintf(&b, "x: %s\n", strings.Join(ids, " "))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
