package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis connects to a local Redis and skips when none is running.
// tests/integration covers the same paths against a container.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestNewManager_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewManager should panic with nil redis client")
		}
	}()
	NewManager(nil)
}

func TestManager_SetAndGet(t *testing.T) {
	manager := NewManager(setupTestRedis(t))
	ctx := context.Background()

	key := Key{Endpoint: "/api/v2/pokemon/pikachu"}
	entry := &Entry{
		Data:       []byte(`{"name":"pikachu"}`),
		ETag:       `"abc123"`,
		StatusCode: 200,
		Expires:    time.Now().Add(5 * time.Minute),
		CachedAt:   time.Now(),
	}

	if err := manager.Set(ctx, key, entry); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := manager.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got.Data) != string(entry.Data) {
		t.Errorf("Data = %s, want %s", got.Data, entry.Data)
	}
	if got.StatusCode != entry.StatusCode {
		t.Errorf("StatusCode = %d, want %d", got.StatusCode, entry.StatusCode)
	}
}

func TestManager_Get_CacheMiss(t *testing.T) {
	manager := NewManager(setupTestRedis(t))

	_, err := manager.Get(context.Background(), Key{Endpoint: "/api/v2/pokemon/missingno"})
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestManager_Set_ExpiredNotStored(t *testing.T) {
	manager := NewManager(setupTestRedis(t))
	ctx := context.Background()
	key := Key{Endpoint: "/api/v2/pokemon/ditto"}

	entry := &Entry{Data: []byte(`{}`), StatusCode: 200, Expires: time.Now().Add(-time.Second)}
	if err := manager.Set(ctx, key, entry); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := manager.Get(ctx, key); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestManager_Set_Nil(t *testing.T) {
	manager := NewManager(setupTestRedis(t))
	if err := manager.Set(context.Background(), Key{}, nil); err == nil {
		t.Error("Set(nil) error = nil, want error")
	}
}

func TestManager_Get_InvalidEntry(t *testing.T) {
	client := setupTestRedis(t)
	manager := NewManager(client)
	ctx := context.Background()
	key := Key{Endpoint: "/api/v2/pokemon/corrupt"}

	if err := client.Set(ctx, key.String(), "not json", time.Minute).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := manager.Get(ctx, key); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("Get() error = %v, want ErrInvalidEntry", err)
	}
}

func TestManager_Purge(t *testing.T) {
	client := setupTestRedis(t)
	manager := NewManager(client)
	ctx := context.Background()

	entry := &Entry{Data: []byte(`{}`), StatusCode: 200, Expires: time.Now().Add(time.Hour)}
	for _, endpoint := range []string{"/api/v2/pokemon/pikachu", "/api/v2/pokemon/eevee"} {
		if err := manager.Set(ctx, Key{Endpoint: endpoint}, entry); err != nil {
			t.Fatalf("Set(%s) error = %v", endpoint, err)
		}
	}
	if err := client.Set(ctx, "unrelated", "keep", 0).Err(); err != nil {
		t.Fatalf("Set(unrelated) error = %v", err)
	}

	removed, err := manager.Purge(ctx)
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("Purge() removed %d, want 2", removed)
	}

	if _, err := manager.Get(ctx, Key{Endpoint: "/api/v2/pokemon/pikachu"}); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get() after Purge error = %v, want ErrCacheMiss", err)
	}
	if v, _ := client.Get(ctx, "unrelated").Result(); v != "keep" {
		t.Errorf("unrelated key = %q, want keep", v)
	}
}
