// internal/daily/daily.go
//
// Deterministic seeds for the daily puzzle: every player who opens the same
// category and level on the same UTC day gets the same board.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"strings"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a board seed from HMAC(salt, date|category|level).
// Category names are compared case-insensitively.
func Seed(date time.Time, salt, category string, level int) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.ToLower(category)))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(level)))
	sum := h.Sum(nil)
	// first 8 bytes; clear the sign bit so the seed is non-negative
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}
