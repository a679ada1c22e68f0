package middleware

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStore(t *testing.T) (*miniredis.Miniredis, idempStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, idempStore{rdb: rdb}
}

func TestFingerprint_StableAndBodySensitive(t *testing.T) {
	a := fingerprint([]byte(`{"client_id":"c1"}`))
	if len(a) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(a))
	}
	if a != fingerprint([]byte(`{"client_id":"c1"}`)) {
		t.Fatal("same body must hash the same")
	}
	if a == fingerprint([]byte(`{"client_id":"c2"}`)) {
		t.Fatal("different bodies must not collide")
	}
}

func TestIdempKey_Layout(t *testing.T) {
	user, req := strings.Repeat("b", 32), strings.Repeat("a", 32)
	got := idempKey("POST", "/v1/workspaces/w1/loan-files", user, req)
	want := "idemp:loandesk:post:/v1/workspaces/w1/loan-files:" + user + ":" + req
	if got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

func TestValidRequestID(t *testing.T) {
	for _, s := range []string{
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",
		strings.Repeat("0", 32),
	} {
		if !validRequestID(s) {
			t.Fatalf("should accept %q", s)
		}
	}
	for _, s := range []string{
		"",
		strings.Repeat("A", 32),                // uppercase hex
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",      // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c880",    // 33 chars
		"3F9A6A1B-3D54-4FBE-8B3A-6B3E8D6B2C88", // uppercase uuid
		"3f9a6a1b-3d54-9fbe-8b3a-6b3e8d6b2c88", // version 9
		"3f9a6a1b-3d54-4fbe-cb3a-6b3e8d6b2c88", // bad variant
	} {
		if validRequestID(s) {
			t.Fatalf("should reject %q", s)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	sec := time.Now().Unix()
	ms := time.Now().UnixMilli()
	cases := []struct {
		raw  string
		want time.Time
	}{
		{strconv.FormatInt(sec, 10), time.Unix(sec, 0).UTC()},
		{strconv.FormatInt(ms, 10), time.UnixMilli(ms).UTC()},
		{"2026-03-02T16:30:00+07:00", time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)},
		{"2026-03-02T09:30:00.250Z", time.Date(2026, 3, 2, 9, 30, 0, 250e6, time.UTC)},
	}
	for _, c := range cases {
		got, err := parseRequestAt(c.raw)
		if err != nil {
			t.Fatalf("%q: %v", c.raw, err)
		}
		if !got.Equal(c.want) || got.Location() != time.UTC {
			t.Fatalf("%q: got %v, want %v UTC", c.raw, got, c.want)
		}
	}

	for _, raw := range []string{"", "  ", "not-a-time", "2026-03-02T09:30:00", "1736123456abc"} {
		if _, err := parseRequestAt(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestStore_ReserveIsExclusive(t *testing.T) {
	mr, s := newStore(t)
	ctx := context.Background()
	key := idempKey("POST", "/v1/workspaces/w1/loan-files", strings.Repeat("b", 32), strings.Repeat("a", 32))
	entry := idempEntry{InProgress: true, BodySHA256: fingerprint([]byte(`{}`)), RequestID: strings.Repeat("a", 32)}

	ok, err := s.reserve(ctx, key, entry)
	if err != nil || !ok {
		t.Fatalf("first reserve: ok=%v err=%v", ok, err)
	}
	if ttl := mr.TTL(key); ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("lock ttl = %v", ttl)
	}
	if ok, err = s.reserve(ctx, key, entry); err != nil || ok {
		t.Fatalf("second reserve must lose: ok=%v err=%v", ok, err)
	}

	got, err := s.load(ctx, key)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.InProgress || got.BodySHA256 != entry.BodySHA256 {
		t.Fatalf("loaded %+v", got)
	}

	if err := s.release(ctx, key); err != nil {
		t.Fatalf("release: %v", err)
	}
	if mr.Exists(key) {
		t.Fatal("key should be gone after release")
	}
}

func TestStore_FinishReplacesLock(t *testing.T) {
	mr, s := newStore(t)
	ctx := context.Background()
	key := idempKey("POST", "/v1/workspaces/w1/loan-files", strings.Repeat("b", 32), strings.Repeat("c", 32))

	if _, err := s.reserve(ctx, key, idempEntry{InProgress: true}); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	final := idempEntry{Code: 201, Body: []byte(`{"loan_file_id":"x","tasks_created":8}`)}
	if err := s.finish(ctx, key, final, 10*time.Minute); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if ttl := mr.TTL(key); ttl != 10*time.Minute {
		t.Fatalf("final ttl = %v, want 10m", ttl)
	}

	got, err := s.load(ctx, key)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.InProgress || got.Code != 201 || string(got.Body) != string(final.Body) {
		t.Fatalf("final entry mismatch: %+v", got)
	}
}

func TestStore_LoadRejectsGarbage(t *testing.T) {
	mr, s := newStore(t)
	if err := mr.Set("k", "not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.load(context.Background(), "k"); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := s.load(context.Background(), "missing"); err != redis.Nil {
		t.Fatalf("missing key: got %v, want redis.Nil", err)
	}
}
