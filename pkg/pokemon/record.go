// Package pokemon defines the typed catalog record and its wire schema.
package pokemon

import (
	"errors"
)

// StatSpeed is the stat name every record is expected to carry.
const StatSpeed = "speed"

// ErrSchemaViolation indicates a document or record is missing a required field.
var ErrSchemaViolation = errors.New("schema violation")

// Stat is one base stat of a record.
type Stat struct {
	Name string
	Base int
}

// Record is one catalog entry.
type Record struct {
	Name string

	// Types is ordered by slot; the first entry is the primary type.
	Types []string

	Abilities []string
	Stats     []Stat
	Moves     []string

	// BaseExperience is 0 when the catalog has no value.
	BaseExperience int
}

// PrimaryType returns the first type, or false if the record has none.
func (r *Record) PrimaryType() (string, bool) {
	if len(r.Types) == 0 {
		return "", false
	}
	return r.Types[0], true
}

// Stat returns the base value of the named stat.
func (r *Record) Stat(name string) (int, bool) {
	for _, s := range r.Stats {
		if s.Name == name {
			return s.Base, true
		}
	}
	return 0, false
}

// TotalStats returns the sum of all base stat values.
func (r *Record) TotalStats() int {
	total := 0
	for _, s := range r.Stats {
		total += s.Base
	}
	return total
}

// Reference is a summary entry of a listing page.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Listing is a page of summary references.
type Listing struct {
	Count   int         `json:"count"`
	Results []Reference `json:"results"`
}
