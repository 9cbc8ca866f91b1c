package pricegrid

import (
	"strconv"
	"time"
)

// Status is the outcome of one catalog entry.
type Status string

// Status values.
const (
	StatusExtracted Status = "extracted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// EntryResult records what happened to one catalog entry.
type EntryResult struct {
	Entry CatalogEntry `json:"entry"`

	// Name is the unique name the grid was recorded under.
	// Empty unless Status is StatusExtracted.
	Name   string `json:"name"`
	Status Status `json:"status"`

	// Rows is the number of grid rows extracted.
	Rows int `json:"rows"`

	// Dropped is the number of tokens dropped for straddling the region boundary.
	Dropped int `json:"dropped"`

	// Fingerprint identifies the grid content; identical grids share it.
	Fingerprint string `json:"fingerprint"`

	// Err describes why the entry was skipped or failed.
	Err string `json:"err,omitempty"`
}

// String returns a human-readable status, e.g. "extracted (12 rows)".
func (r *EntryResult) String() string {
	switch r.Status {
	case StatusExtracted:
		if r.Rows == 1 {
			return "extracted (1 row)"
		}
		return "extracted (" + strconv.Itoa(r.Rows) + " rows)"
	case StatusSkipped:
		return "skipped: no header"
	case StatusFailed:
		if r.Err == "" {
			return "failed"
		}
		return "failed: " + r.Err
	default:
		return string(r.Status)
	}
}

// Summary counts entries by status.
type Summary struct {
	Extracted int `json:"extracted"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Total returns the number of entries counted.
func (s Summary) Total() int {
	return s.Extracted + s.Skipped + s.Failed
}

// Summarize counts the given entry results by status.
func Summarize(entries []*EntryResult) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Status {
		case StatusExtracted:
			s.Extracted++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Report is the outcome of running a catalog: one result per entry, in
// catalog order, plus the grids that were extracted.
type Report struct {
	Catalog    string         `json:"catalog"`
	Source     string         `json:"source"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Entries    []*EntryResult `json:"entries"`
	Grids      []*NamedGrid   `json:"grids"`

	Supplements Supplements `json:"supplements"`

	// PageErrors lists the extras and rules pages that could not be read.
	PageErrors []PageError `json:"pageErrors,omitempty"`
}

// Summary counts the report's entries by status.
func (r *Report) Summary() Summary {
	return Summarize(r.Entries)
}
