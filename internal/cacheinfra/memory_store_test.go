package cacheinfra

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	if _, err := store.Get(ctx, "doctor:page:-:10"); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("expected miss on empty store, got %v", err)
	}

	if err := store.Set(ctx, "doctor:page:-:10", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := store.Get(ctx, "doctor:page:-:10")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("unexpected payload: %q", got)
	}

	if err := store.Delete(ctx, "doctor:page:-:10"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "doctor:page:-:10"); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("expected miss after delete, got %v", err)
	}
}

func TestMemoryStoreExpiresPerKey(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "short", []byte("a"), 40*time.Millisecond)
	store.Set(ctx, "long", []byte("b"), time.Minute)

	time.Sleep(100 * time.Millisecond)

	if _, err := store.Get(ctx, "short"); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("expected short entry to expire, got %v", err)
	}
	if _, err := store.Get(ctx, "long"); err != nil {
		t.Errorf("long entry expired early: %v", err)
	}
}

func TestMemoryStoreDeleteByPrefix(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "doctor:page:-:10", []byte("a"), time.Minute)
	store.Set(ctx, "doctor:search:abc", []byte("b"), time.Minute)
	store.Set(ctx, "patient:page:-:10", []byte("c"), time.Minute)

	if err := store.DeleteByPrefix(ctx, "doctor:"); err != nil {
		t.Fatalf("delete by prefix failed: %v", err)
	}

	if _, err := store.Get(ctx, "doctor:page:-:10"); !errors.Is(err, cache.ErrMiss) {
		t.Error("doctor page survived prefix deletion")
	}
	if _, err := store.Get(ctx, "doctor:search:abc"); !errors.Is(err, cache.ErrMiss) {
		t.Error("doctor search survived prefix deletion")
	}
	if _, err := store.Get(ctx, "patient:page:-:10"); err != nil {
		t.Errorf("patient key deleted by doctor prefix: %v", err)
	}
}

func TestMemoryStoreBackgroundSweep(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "sweep-me", []byte("a"), 30*time.Millisecond)
	time.Sleep(150 * time.Millisecond)

	if _, ok := store.entries.Load("sweep-me"); ok {
		t.Error("sweeper left an expired entry behind")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("doctor:page:%d:10", i%10)
			store.Set(ctx, key, []byte("x"), time.Minute)
			store.Get(ctx, key)
			store.DeleteByPrefix(ctx, "patient:")
		}(i)
	}
	wg.Wait()
}
