package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/AmitShokeen001/pokestats/pkg/stats"
)

// WriteTypeCounts writes one "Type: count" line per type.
func WriteTypeCounts(w io.Writer, counts []stats.TypeCount) error {
	var b strings.Builder
	b.WriteString("Pokémon count by type (descending):\n")
	for _, c := range counts {
		fmt.Fprintf(&b, "%s: %d\n", Title(c.Type), c.Count)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteAverages writes average base experience per type and the fastest type.
func WriteAverages(w io.Writer, avg stats.Averages) error {
	var b strings.Builder
	b.WriteString("Average base experience per type:\n")
	for _, t := range avg.ByType {
		fmt.Fprintf(&b, "%s: %.2f\n", Title(t.Type), t.Experience)
	}
	fmt.Fprintf(&b, "\nType with highest average base speed: %s (%.2f)\n",
		Title(avg.TopSpeedType), avg.TopSpeedValue)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteDistinct writes the distinct ability and move counts.
func WriteDistinct(w io.Writer, abilities, moves int) error {
	_, err := fmt.Fprintf(w, "Distinct Abilities: %d\nDistinct Moves: %d\n", abilities, moves)
	return err
}

// WritePrimaryMoves writes distinct and most common moves per primary type.
func WritePrimaryMoves(w io.Writer, groups []stats.PrimaryMoves) error {
	var b strings.Builder
	b.WriteString("Distinct moves and most common move by primary type:\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "%s:\n", Title(g.Type))
		fmt.Fprintf(&b, "  Distinct Moves: %d\n", g.DistinctMoves)
		if g.MostCommonMove == "" {
			b.WriteString("  Most Common Move: none\n")
			continue
		}
		fmt.Fprintf(&b, "  Most Common Move: %s (%d times)\n", g.MostCommonMove, g.Occurrences)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTop3 writes the top-3 analysis per primary type and the most diverse type.
func WriteTop3(w io.Writer, report stats.Top3Report) error {
	var b strings.Builder
	for i, g := range report.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s Type:\n", Title(g.Type))
		fmt.Fprintf(&b, "  Top 3 Pokémon: %s\n", strings.Join(g.Top, ", "))
		fmt.Fprintf(&b, "  Average Moves: %.2f\n", g.AverageMoves)
		fmt.Fprintf(&b, "  Move Diversity: %d\n", g.MoveDiversity)
	}

	mostDiverse := "none"
	if report.MostDiverse != "" {
		mostDiverse = Title(report.MostDiverse)
	}
	fmt.Fprintf(&b, "\nType with most diverse move set among top 3 Pokémon: %s\n", mostDiverse)
	_, err := io.WriteString(w, b.String())
	return err
}
