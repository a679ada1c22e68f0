package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idemp:loandesk"

var (
	// 32 lowercase hex, or a lowercase RFC 4122 uuid (versions 1-5)
	reRequestID = regexp.MustCompile(`^(?:[a-f0-9]{32}|[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12})$`)
	reHex32     = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

func fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// idempKey scopes a request id to the caller and the concrete path, so the
// same id sent to two workspaces never collides.
func idempKey(method, path, userID, requestID string) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", keyPrefix, strings.ToLower(method), path, userID, requestID)
}

func validRequestID(s string) bool { return reRequestID.MatchString(s) }

// parseRequestAt accepts epoch seconds, epoch milliseconds or an RFC3339
// timestamp that carries a zone. Values above 1e12 are read as milliseconds.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing " + HeaderRequestAt)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.New(HeaderRequestAt + " must be epoch (s/ms) or RFC3339 with timezone")
	}
	return t.UTC(), nil
}

// idempStore keeps one JSON entry per key. An entry is first reserved with a
// short lock TTL and then either finished with the response or released.
type idempStore struct{ rdb *redis.Client }

func (s idempStore) reserve(ctx context.Context, key string, e idempEntry) (bool, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func (s idempStore) load(ctx context.Context, key string) (idempEntry, error) {
	var e idempEntry
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return e, fmt.Errorf("decode %s: %w", key, err)
	}
	return e, nil
}

func (s idempStore) finish(ctx context.Context, key string, e idempEntry, ttl time.Duration) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, ttl).Err()
}

func (s idempStore) release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
