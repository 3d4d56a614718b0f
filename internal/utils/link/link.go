// Package link implements self-describing confirmation links.
//
// A link is a single delimited string `{random}_{timestamp}_{ttlHours}`:
// an opaque random part, its creation time as a unix timestamp and a TTL in
// hours. Expiry is recomputed from the embedded fields, so only the random
// part has to be stored against the account for lookup.
package link

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scorp5438/articles-app/internal/errors"
)

const separator = "_"

type Link struct {
	Random    string
	CreatedAt time.Time
	TTLHours  int
}

// Generate creates a fresh link valid for ttlHours from now.
func Generate(ttlHours int) Link {
	return Link{
		Random:    uuid.New().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		TTLHours:  ttlHours,
	}
}

func (l Link) String() string {
	return fmt.Sprintf("%s%s%d%s%d", l.Random, separator, l.CreatedAt.Unix(), separator, l.TTLHours)
}

func (l Link) ExpiresAt() time.Time {
	return l.CreatedAt.Add(time.Duration(l.TTLHours) * time.Hour)
}

// ExpiredAt reports whether the link is no longer valid at the given
// instant. The boundary itself counts as expired.
func (l Link) ExpiredAt(now time.Time) bool {
	return !now.Before(l.ExpiresAt())
}

// Parse recovers the embedded fields. Malformed input is a validation
// error, never a panic.
func Parse(s string) (Link, error) {
	parts := strings.Split(s, separator)
	if len(parts) != 3 {
		return Link{}, errors.Validation("Malformed confirmation link")
	}
	random := parts[0]
	if random == "" {
		return Link{}, errors.Validation("Malformed confirmation link")
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Link{}, errors.Validation("Malformed confirmation link")
	}
	ttl, err := strconv.Atoi(parts[2])
	if err != nil || ttl <= 0 {
		return Link{}, errors.Validation("Malformed confirmation link")
	}
	return Link{Random: random, CreatedAt: time.Unix(ts, 0).UTC(), TTLHours: ttl}, nil
}
