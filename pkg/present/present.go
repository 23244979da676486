// Package present renders records and aggregate reports for people and
// machines.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
)

// Title title-cases a catalog name ("special-attack" -> "Special-Attack").
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// WriteRecordText writes the labeled human-readable view of a record.
func WriteRecordText(w io.Writer, rec *pokemon.Record) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", Title(rec.Name))
	fmt.Fprintf(&b, "Abilities: %s\n", strings.Join(rec.Abilities, ", "))
	fmt.Fprintf(&b, "Types: %s\n", strings.Join(rec.Types, ", "))
	b.WriteString("Base Stats:\n")
	for _, s := range rec.Stats {
		fmt.Fprintf(&b, "  %s: %d\n", Title(s.Name), s.Base)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// recordDocument is the machine-readable record view. Field names are stable.
type recordDocument struct {
	Name      string         `json:"name"`
	Types     []string       `json:"types"`
	Abilities []string       `json:"abilities"`
	Stats     map[string]int `json:"stats"`
}

// RecordJSON encodes the machine-readable view of a record. Stats keys are
// sorted by the encoder.
func RecordJSON(rec *pokemon.Record) ([]byte, error) {
	doc := recordDocument{
		Name:      rec.Name,
		Types:     nonNil(rec.Types),
		Abilities: nonNil(rec.Abilities),
		Stats:     make(map[string]int, len(rec.Stats)),
	}
	for _, s := range rec.Stats {
		doc.Stats[s.Name] = s.Base
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return data, nil
}

// WriteRecordJSON writes RecordJSON followed by a newline.
func WriteRecordJSON(w io.Writer, rec *pokemon.Record) error {
	data, err := RecordJSON(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
