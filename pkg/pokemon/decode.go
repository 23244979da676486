package pokemon

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// document mirrors the subset of the /pokemon/{id} response we consume.
// Slices are pointers so an absent array can be told apart from an empty one.
type document struct {
	Name           string  `json:"name"`
	BaseExperience *int    `json:"base_experience"`
	Abilities      *[]struct {
		Ability namedResource `json:"ability"`
	} `json:"abilities"`
	Types *[]struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats *[]struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Moves *[]struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
}

// Decode parses a record document. Missing name, types or stats yield an
// error wrapping ErrSchemaViolation; absent abilities and moves decode empty.
func Decode(data []byte) (*Record, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode record: %v", ErrSchemaViolation, err)
	}

	if doc.Name == "" {
		return nil, fmt.Errorf("%w: record has no name", ErrSchemaViolation)
	}
	if doc.Types == nil {
		return nil, fmt.Errorf("%w: record %q has no types field", ErrSchemaViolation, doc.Name)
	}
	if doc.Stats == nil {
		return nil, fmt.Errorf("%w: record %q has no stats field", ErrSchemaViolation, doc.Name)
	}

	rec := &Record{Name: doc.Name}
	if doc.BaseExperience != nil {
		rec.BaseExperience = *doc.BaseExperience
	}

	types := *doc.Types
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })
	rec.Types = make([]string, 0, len(types))
	for _, t := range types {
		rec.Types = append(rec.Types, t.Type.Name)
	}

	rec.Stats = make([]Stat, 0, len(*doc.Stats))
	for _, s := range *doc.Stats {
		if s.Stat.Name == "" {
			return nil, fmt.Errorf("%w: record %q has an unnamed stat", ErrSchemaViolation, doc.Name)
		}
		rec.Stats = append(rec.Stats, Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}

	if doc.Abilities != nil {
		rec.Abilities = make([]string, 0, len(*doc.Abilities))
		for _, a := range *doc.Abilities {
			rec.Abilities = append(rec.Abilities, a.Ability.Name)
		}
	}

	if doc.Moves != nil {
		rec.Moves = make([]string, 0, len(*doc.Moves))
		for _, m := range *doc.Moves {
			rec.Moves = append(rec.Moves, m.Move.Name)
		}
	}

	return rec, nil
}

// DecodeListing parses a /pokemon?limit=N listing page.
func DecodeListing(data []byte) (*Listing, error) {
	var l Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %v", ErrSchemaViolation, err)
	}
	if l.Results == nil {
		return nil, fmt.Errorf("%w: listing has no results field", ErrSchemaViolation)
	}
	return &l, nil
}
