package store

import (
	"context"
	"testing"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || v != "v1" {
		t.Fatalf("got %q ok=%v err=%v", v, ok, err)
	}

	// 覆盖写
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	v, _, _ = kv.Get(ctx, "k")
	if v != "v2" {
		t.Fatalf("got %q after overwrite", v)
	}
}

func TestMemoryKVFailWrites(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	kv.Set(ctx, "k", "before")

	kv.FailWrites = true
	if err := kv.Set(ctx, "k", "after"); err == nil {
		t.Fatal("expected write error")
	}

	// 写失败时已有值不变
	v, ok, _ := kv.Get(ctx, "k")
	if !ok || v != "before" {
		t.Fatalf("prior value lost: %q ok=%v", v, ok)
	}
}
