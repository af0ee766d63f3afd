package model

// FileCount is the transient result of counting one file.
type FileCount struct {
	Path      Path
	Extension Extension
	Lines     int
	Err       error // read/open failure; Lines is 0 when set
}

// Aggregate is the fold of every FileCount produced by one traversal.
type Aggregate struct {
	Total        int            `json:"total" yaml:"total" toml:"total"`
	PerExtension map[string]int `json:"per_extension" yaml:"per_extension" toml:"per_extension"`
	Files        int            `json:"files" yaml:"files" toml:"files"`
	Skipped      int            `json:"skipped" yaml:"skipped" toml:"skipped"` // files that failed and contributed zero
}

// NewAggregate returns an empty Aggregate with an initialized mapping.
func NewAggregate() Aggregate {
	return Aggregate{PerExtension: map[string]int{}}
}

// Add folds a single file result into the aggregate.
func (a *Aggregate) Add(fc FileCount) {
	if a.PerExtension == nil {
		a.PerExtension = map[string]int{}
	}

	a.Files++
	if fc.Err != nil {
		a.Skipped++
	}

	a.Total += fc.Lines
	a.PerExtension[string(fc.Extension)] += fc.Lines
}
