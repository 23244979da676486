package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
)

// ErrEmptyBatch is returned when a computation needs at least one typed record.
var ErrEmptyBatch = errors.New("batch has no typed records")

// TypeCount is the number of records that have a given type.
type TypeCount struct {
	Type  string
	Count int
}

// CountByType counts every type membership of every record, sorted by
// descending count.
func CountByType(batch []pokemon.Record) []TypeCount {
	groups := newOrderedGroups[struct{}]()
	for _, rec := range batch {
		for _, t := range rec.Types {
			groups.add(t, struct{}{})
		}
	}

	counts := make([]TypeCount, 0, len(groups.keys))
	groups.each(func(t string, members []struct{}) {
		counts = append(counts, TypeCount{Type: t, Count: len(members)})
	})
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// TypeAverage holds per-type means over every record that has the type.
type TypeAverage struct {
	Type       string
	Experience float64
	Speed      float64
}

// Averages is the result of AverageExperienceAndTopSpeedType.
type Averages struct {
	ByType        []TypeAverage
	TopSpeedType  string
	TopSpeedValue float64
}

// AverageExperienceAndTopSpeedType averages base experience and speed per
// type and selects the type with the highest average speed. Every typed
// record must carry a speed stat.
func AverageExperienceAndTopSpeedType(batch []pokemon.Record) (Averages, error) {
	experience := newOrderedGroups[int]()
	speed := newOrderedGroups[int]()

	for _, rec := range batch {
		if len(rec.Types) == 0 {
			continue
		}
		s, ok := rec.Stat(pokemon.StatSpeed)
		if !ok {
			return Averages{}, fmt.Errorf("%w: record %q has no %s stat",
				pokemon.ErrSchemaViolation, rec.Name, pokemon.StatSpeed)
		}
		for _, t := range rec.Types {
			experience.add(t, rec.BaseExperience)
			speed.add(t, s)
		}
	}

	if len(experience.keys) == 0 {
		return Averages{}, ErrEmptyBatch
	}

	var out Averages
	first := true
	experience.each(func(t string, exp []int) {
		avg := TypeAverage{
			Type:       t,
			Experience: mean(exp),
			Speed:      mean(speed.values[t]),
		}
		out.ByType = append(out.ByType, avg)

		if first || avg.Speed > out.TopSpeedValue {
			out.TopSpeedType = t
			out.TopSpeedValue = avg.Speed
			first = false
		}
	})
	return out, nil
}

// DistinctAbilitiesAndMoves returns the number of distinct ability names and
// distinct move names across the batch.
func DistinctAbilitiesAndMoves(batch []pokemon.Record) (abilities, moves int) {
	allAbilities := lo.FlatMap(batch, func(rec pokemon.Record, _ int) []string { return rec.Abilities })
	allMoves := lo.FlatMap(batch, func(rec pokemon.Record, _ int) []string { return rec.Moves })
	return len(lo.Uniq(allAbilities)), len(lo.Uniq(allMoves))
}

// PrimaryMoves summarizes the moves of all records sharing a primary type.
type PrimaryMoves struct {
	Type           string
	DistinctMoves  int
	MostCommonMove string
	Occurrences    int
}

// GroupByPrimaryTypeAndMoves pools the moves of every record under its
// primary type and reports the distinct count and most common move per type.
// Records without types are skipped.
func GroupByPrimaryTypeAndMoves(batch []pokemon.Record) []PrimaryMoves {
	groups := newOrderedGroups[string]()
	for _, rec := range batch {
		primary, ok := rec.PrimaryType()
		if !ok {
			continue
		}
		groups.add(primary, rec.Moves...)
	}

	out := make([]PrimaryMoves, 0, len(groups.keys))
	groups.each(func(t string, moves []string) {
		move, n := mostCommon(moves)
		out = append(out, PrimaryMoves{
			Type:           t,
			DistinctMoves:  len(lo.Uniq(moves)),
			MostCommonMove: move,
			Occurrences:    n,
		})
	})
	return out
}

// mostCommon returns the most frequent value; among equally frequent values
// the one seen first wins. Empty input yields ("", 0).
func mostCommon(values []string) (string, int) {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best, bestCount := "", 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount
}

// TopGroup is the top-3 analysis of one primary type.
type TopGroup struct {
	Type string

	// Top holds up to three record names ordered by descending stat total.
	Top []string

	// AverageMoves is the summed move count of Top divided by 3, even when
	// Top has fewer than three names.
	AverageMoves float64

	// MoveDiversity is the number of distinct moves across Top.
	MoveDiversity int
}

// Top3Report is the result of Top3ByStatsWithMoveDiversity.
type Top3Report struct {
	Groups []TopGroup

	// MostDiverse is empty when no group has any move.
	MostDiverse string
}

const topN = 3

// Top3ByStatsWithMoveDiversity picks the three strongest records of each
// primary type by summed base stats and measures the move variety among them.
func Top3ByStatsWithMoveDiversity(batch []pokemon.Record) Top3Report {
	groups := newOrderedGroups[pokemon.Record]()
	for _, rec := range batch {
		primary, ok := rec.PrimaryType()
		if !ok {
			continue
		}
		groups.add(primary, rec)
	}

	report := Top3Report{Groups: make([]TopGroup, 0, len(groups.keys))}
	maxDiversity := 0
	groups.each(func(t string, members []pokemon.Record) {
		ranked := make([]pokemon.Record, len(members))
		copy(ranked, members)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TotalStats() > ranked[j].TotalStats()
		})
		if len(ranked) > topN {
			ranked = ranked[:topN]
		}

		moveTotal := lo.SumBy(ranked, func(rec pokemon.Record) int { return len(rec.Moves) })
		diversity := len(lo.Uniq(lo.FlatMap(ranked, func(rec pokemon.Record, _ int) []string { return rec.Moves })))

		report.Groups = append(report.Groups, TopGroup{
			Type:          t,
			Top:           lo.Map(ranked, func(rec pokemon.Record, _ int) string { return rec.Name }),
			AverageMoves:  float64(moveTotal) / topN,
			MoveDiversity: diversity,
		})

		if diversity > maxDiversity {
			maxDiversity = diversity
			report.MostDiverse = t
		}
	})
	return report
}
