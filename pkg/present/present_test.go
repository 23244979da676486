package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
	"github.com/AmitShokeen001/pokestats/pkg/stats"
)

func pikachu() *pokemon.Record {
	return &pokemon.Record{
		Name:      "pikachu",
		Types:     []string{"electric"},
		Abilities: []string{"static", "lightning-rod"},
		Stats: []pokemon.Stat{
			{Name: "hp", Base: 35},
			{Name: "attack", Base: 55},
			{Name: "speed", Base: 90},
		},
	}
}

func TestWriteRecordText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecordText(&buf, pikachu()); err != nil {
		t.Fatalf("WriteRecordText() error = %v", err)
	}

	want := "Name: Pikachu\n" +
		"Abilities: static, lightning-rod\n" +
		"Types: electric\n" +
		"Base Stats:\n" +
		"  Hp: 35\n" +
		"  Attack: 55\n" +
		"  Speed: 90\n"
	if buf.String() != want {
		t.Errorf("WriteRecordText() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRecordJSON(t *testing.T) {
	data, err := RecordJSON(pikachu())
	if err != nil {
		t.Fatalf("RecordJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, field := range []string{"name", "types", "abilities", "stats"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("field %q missing from %s", field, data)
		}
	}

	statsDoc, _ := doc["stats"].(map[string]any)
	if statsDoc["speed"] != float64(90) {
		t.Errorf("stats.speed = %v, want 90", statsDoc["speed"])
	}
}

func TestRecordJSON_EmptyListsAreArrays(t *testing.T) {
	data, err := RecordJSON(&pokemon.Record{Name: "missingno"})
	if err != nil {
		t.Fatalf("RecordJSON() error = %v", err)
	}
	if !strings.Contains(string(data), `"types": []`) || !strings.Contains(string(data), `"abilities": []`) {
		t.Errorf("RecordJSON() = %s, want empty arrays", data)
	}
}

func TestWriteTypeCounts(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteTypeCounts(&buf, []stats.TypeCount{{Type: "fire", Count: 2}, {Type: "flying", Count: 1}})

	if !strings.Contains(buf.String(), "Fire: 2\nFlying: 1\n") {
		t.Errorf("WriteTypeCounts() = %q", buf.String())
	}
}

func TestWriteAverages(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteAverages(&buf, stats.Averages{
		ByType:        []stats.TypeAverage{{Type: "fire", Experience: 75, Speed: 15}},
		TopSpeedType:  "fire",
		TopSpeedValue: 15,
	})

	out := buf.String()
	if !strings.Contains(out, "Fire: 75.00\n") {
		t.Errorf("missing average line: %q", out)
	}
	if !strings.Contains(out, "Type with highest average base speed: Fire (15.00)") {
		t.Errorf("missing top speed line: %q", out)
	}
}

func TestWriteDistinct(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteDistinct(&buf, 3, 4)
	if buf.String() != "Distinct Abilities: 3\nDistinct Moves: 4\n" {
		t.Errorf("WriteDistinct() = %q", buf.String())
	}
}

func TestWritePrimaryMoves(t *testing.T) {
	var buf bytes.Buffer
	_ = WritePrimaryMoves(&buf, []stats.PrimaryMoves{
		{Type: "water", DistinctMoves: 3, MostCommonMove: "surf", Occurrences: 2},
		{Type: "ice"},
	})

	out := buf.String()
	if !strings.Contains(out, "Water:\n  Distinct Moves: 3\n  Most Common Move: surf (2 times)\n") {
		t.Errorf("unexpected water block: %q", out)
	}
	if !strings.Contains(out, "Ice:\n  Distinct Moves: 0\n  Most Common Move: none\n") {
		t.Errorf("unexpected ice block: %q", out)
	}
}

func TestWriteTop3(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteTop3(&buf, stats.Top3Report{
		Groups: []stats.TopGroup{
			{Type: "grass", Top: []string{"venusaur", "ivysaur"}, AverageMoves: 50, MoveDiversity: 70},
		},
		MostDiverse: "grass",
	})

	out := buf.String()
	for _, want := range []string{
		"Grass Type:\n",
		"  Top 3 Pokémon: venusaur, ivysaur\n",
		"  Average Moves: 50.00\n",
		"  Move Diversity: 70\n",
		"most diverse move set among top 3 Pokémon: Grass\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTop3_NoDiverseType(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteTop3(&buf, stats.Top3Report{})
	if !strings.HasSuffix(buf.String(), "top 3 Pokémon: none\n") {
		t.Errorf("WriteTop3() = %q", buf.String())
	}
}
