// Package batch builds the in-memory batch of records the statistics run on.
//
// A batch is built from a listing page followed by one request per listed
// reference, issued strictly one after another (the client paces them). A
// reference that fails to fetch or decode is logged and skipped, so the batch
// may be shorter than requested; only a listing failure fails the build.
//
// Example usage:
//
//	fetcher := batch.NewFetcher(catalog.NewFetcher(c), batch.DefaultConfig())
//	loader := batch.NewLoader(fetcher, 151)
//	records, err := loader.Load(ctx) // fetched once, then reused
package batch
