package batch

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/AmitShokeen001/pokestats/internal/testutil"
	"github.com/AmitShokeen001/pokestats/pkg/catalog"
	"github.com/AmitShokeen001/pokestats/pkg/client"
	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
)

func newCatalogFetcher(t *testing.T, mock *testutil.MockCatalog) *catalog.Fetcher {
	t.Helper()

	cfg := client.DefaultConfig("pokestats-test/1.0")
	cfg.BaseURL = mock.BaseURL()
	cfg.RequestDelay = 0

	c, err := client.New(cfg)
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}
	return catalog.NewFetcher(c)
}

func seed(mock *testutil.MockCatalog, names ...string) {
	for _, name := range names {
		mock.AddRecord(testutil.MockRecord{
			Name:  name,
			Types: []string{"normal"},
			Stats: map[string]int{"speed": 10},
		})
	}
}

func TestFetchBatch(t *testing.T) {
	mock := testutil.NewMockCatalog()
	defer mock.Close()
	seed(mock, "bulbasaur", "ivysaur", "venusaur", "charmander")

	f := NewFetcher(newCatalogFetcher(t, mock), DefaultConfig())
	records, err := f.FetchBatch(context.Background(), 3)
	if err != nil {
		t.Fatalf("FetchBatch() error = %v", err)
	}

	want := []string{"bulbasaur", "ivysaur", "venusaur"}
	if len(records) != len(want) {
		t.Fatalf("len(records) = %d, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("records[%d] = %q, want %q", i, records[i].Name, name)
		}
	}

	// One listing request plus one per record, in order.
	paths := mock.GetPaths()
	if len(paths) != 4 || paths[0] != "/api/v2/pokemon?limit=3" {
		t.Errorf("paths = %v", paths)
	}
}

func TestFetchBatch_SkipsFailures(t *testing.T) {
	mock := testutil.NewMockCatalog()
	defer mock.Close()
	seed(mock, "a", "b", "c", "d")
	mock.SetStatus("b", http.StatusInternalServerError)
	mock.AddRaw("c", []byte(`{"name":"c"}`))

	f := NewFetcher(newCatalogFetcher(t, mock), DefaultConfig())
	records, err := f.FetchBatch(context.Background(), 10)
	if err != nil {
		t.Fatalf("FetchBatch() error = %v", err)
	}

	if len(records) != 2 || records[0].Name != "a" || records[1].Name != "d" {
		t.Errorf("records = %+v, want a and d", records)
	}
}

func TestFetchBatch_ListingFailure(t *testing.T) {
	mock := testutil.NewMockCatalog()
	defer mock.Close()
	mock.SetStatus("", http.StatusBadGateway)

	f := NewFetcher(newCatalogFetcher(t, mock), DefaultConfig())
	_, err := f.FetchBatch(context.Background(), 151)
	if !errors.Is(err, client.ErrNetworkFailure) {
		t.Errorf("FetchBatch() error = %v, want ErrNetworkFailure", err)
	}
}

// stubFetcher serves records without HTTP.
type stubFetcher struct {
	listing *pokemon.Listing
	byName  map[string]int
	onFetch func()
}

func (s *stubFetcher) FetchListing(context.Context, int) (*pokemon.Listing, error) {
	return s.listing, nil
}

func (s *stubFetcher) FetchByURL(ctx context.Context, rawURL string) (*pokemon.Record, error) {
	return nil, errors.New("unexpected url fetch")
}

func (s *stubFetcher) FetchByIdentifier(_ context.Context, name string) (*pokemon.Record, error) {
	s.byName[name]++
	if s.onFetch != nil {
		s.onFetch()
	}
	return &pokemon.Record{Name: name}, nil
}

func TestFetchBatch_FallsBackToName(t *testing.T) {
	stub := &stubFetcher{
		listing: &pokemon.Listing{Results: []pokemon.Reference{{Name: "mew"}, {Name: "mewtwo"}}},
		byName:  map[string]int{},
	}

	records, err := NewFetcher(stub, DefaultConfig()).FetchBatch(context.Background(), 151)
	if err != nil {
		t.Fatalf("FetchBatch() error = %v", err)
	}
	if len(records) != 2 || stub.byName["mewtwo"] != 1 {
		t.Errorf("records = %+v, calls = %v", records, stub.byName)
	}
}

func TestFetchBatch_TruncatesToLimit(t *testing.T) {
	stub := &stubFetcher{
		listing: &pokemon.Listing{Results: []pokemon.Reference{{Name: "a"}, {Name: "b"}, {Name: "c"}}},
		byName:  map[string]int{},
	}

	records, err := NewFetcher(stub, DefaultConfig()).FetchBatch(context.Background(), 2)
	if err != nil {
		t.Fatalf("FetchBatch() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestFetchBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &stubFetcher{
		listing: &pokemon.Listing{Results: []pokemon.Reference{{Name: "a"}, {Name: "b"}, {Name: "c"}}},
		byName:  map[string]int{},
		onFetch: cancel,
	}

	_, err := NewFetcher(stub, DefaultConfig()).FetchBatch(ctx, 151)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FetchBatch() error = %v, want context.Canceled", err)
	}
	if stub.byName["b"] != 0 {
		t.Error("fetch continued after cancellation")
	}
}
