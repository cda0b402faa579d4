package patterngraph

// Database is the read-only collection of pruned graphs shared by every
// mining worker, plus the label sets and the derived minimum support
// count. It is built once by NewDatabase and never mutated afterward:
// input graphs and label sets are read-only and shared by reference.
type Database struct {
	Graphs    []*Graph
	Frequency Frequency

	// NSupport is floor(len(Graphs) * supportThreshold). A pattern is
	// frequent iff its support is >= NSupport.
	NSupport int

	// MaxVertices and MaxEdges are the worst-case sizes over the pruned
	// database, used to size per-worker scratch once at startup.
	MaxVertices int
	MaxEdges    int
}

// NewDatabase runs the frequency pass and pruning over raw, then returns
// the resulting Database. supportThreshold must be in (0, 1].
func NewDatabase(raw []RawGraph, supportThreshold float64) (*Database, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDatabase
	}
	if supportThreshold <= 0 || supportThreshold > 1 {
		return nil, ErrInvalidSupport
	}

	nsupport := int(float64(len(raw)) * supportThreshold)
	freq := ComputeFrequency(raw, nsupport)

	db := &Database{Frequency: freq, NSupport: nsupport, Graphs: make([]*Graph, len(raw))}
	for i, g := range raw {
		pruned := Prune(g, freq)
		db.Graphs[i] = pruned
		if len(pruned.Vertices) > db.MaxVertices {
			db.MaxVertices = len(pruned.Vertices)
		}
		if pruned.NEdges+1 > db.MaxEdges {
			db.MaxEdges = pruned.NEdges + 1
		}
	}

	return db, nil
}
