package cache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultTTL is the fallback TTL when the response carries no freshness headers.
const DefaultTTL = 24 * time.Hour

// ResponseToEntry converts an HTTP response to an Entry.
// The response body is restored after reading.
// fallback is used when neither Cache-Control max-age nor Expires is usable;
// a fallback <= 0 means DefaultTTL.
func ResponseToEntry(resp *http.Response, fallback time.Duration) (*Entry, error) {
	if resp == nil {
		return nil, fmt.Errorf("response cannot be nil")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if fallback <= 0 {
		fallback = DefaultTTL
	}

	now := time.Now()
	return &Entry{
		Data:       body,
		ETag:       resp.Header.Get("ETag"),
		StatusCode: resp.StatusCode,
		Expires:    parseExpires(resp.Header, now, fallback),
		CachedAt:   now,
	}, nil
}

// parseExpires derives the expiry time from freshness headers.
func parseExpires(headers http.Header, now time.Time, fallback time.Duration) time.Time {
	if maxAge, ok := parseMaxAge(headers.Get("Cache-Control")); ok {
		return now.Add(maxAge)
	}

	if expiresStr := headers.Get("Expires"); expiresStr != "" {
		if expires, err := http.ParseTime(expiresStr); err == nil {
			if expires.Before(now) {
				return now
			}
			return expires
		}
	}

	return now.Add(fallback)
}

// parseMaxAge extracts max-age from a Cache-Control header value.
func parseMaxAge(value string) (time.Duration, bool) {
	for _, directive := range strings.Split(value, ",") {
		name, arg, found := strings.Cut(strings.TrimSpace(directive), "=")
		if !found || !strings.EqualFold(name, "max-age") {
			continue
		}
		seconds, err := strconv.Atoi(strings.Trim(arg, `"`))
		if err != nil || seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds) * time.Second, true
	}
	return 0, false
}

// EntryToResponse rebuilds an HTTP response from a cache entry.
func EntryToResponse(entry *Entry, req *http.Request) *http.Response {
	header := http.Header{}
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("X-Cache", "HIT")
	if entry.ETag != "" {
		header.Set("ETag", entry.ETag)
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", entry.StatusCode, http.StatusText(entry.StatusCode)),
		StatusCode:    entry.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(entry.Data)),
		ContentLength: int64(len(entry.Data)),
		Request:       req,
	}
}
