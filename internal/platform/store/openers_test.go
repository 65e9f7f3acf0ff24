package store

import (
	"context"
	"testing"
	"time"
)

func fastFailPGURL() string {
	// user/pass/db don't matter; 127.0.0.1:1 is a closed port on all systems
	return "postgres://u:p@127.0.0.1:1/db?sslmode=disable"
}

func TestOpenPG_ParentAlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{
		PG: PGConfig{
			URL:         fastFailPGURL(),
			MaxConns:    2,
			SlowQueryMs: 500,
		},
	}

	s := &Store{}

	start := time.Now()
	txr, err := openPG(ctx, cfg, s)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected error due to canceled context, got nil (txr=%T)", txr)
	}
	if txr != nil {
		t.Fatalf("expected nil TxRunner on canceled context, got %T", txr)
	}
	// should return quickly (no DNS, immediate ECONNREFUSED)
	if elapsed > time.Second {
		t.Fatalf("expected quick failure, got %v", elapsed)
	}
}

func TestOpenPG_BadURL(t *testing.T) {
	t.Parallel()

	cfg := Config{PG: PGConfig{URL: "://bad"}}
	s := &Store{}

	txr, err := openPG(context.Background(), cfg, s)
	if err == nil {
		t.Fatalf("expected parse error, got nil (txr=%T)", txr)
	}
	if s.PG != nil {
		t.Fatalf("seam must stay nil on error, got %T", s.PG)
	}
}
