package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const (
	orderNumberPrefix = "ORD"
	base36Alphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomSuffixLen   = 5
)

// GenerateOrderNumber produces a human-readable order label of the form
// ORD-<base36 millisecond timestamp>-<5 random base36 chars>, uppercased.
// Uniqueness is probabilistic: the timestamp makes collisions require two
// orders in the same millisecond drawing the same suffix. The order_number
// column's UNIQUE constraint is the backstop.
func GenerateOrderNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper(orderNumberPrefix + "-" + timestamp + "-" + randomBase36(randomSuffixLen))
}

func randomBase36(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform RNG is broken; fall back to
		// the timestamp's low bits rather than returning an empty suffix.
		nano := time.Now().UnixNano()
		for i := range b {
			b[i] = base36Alphabet[nano%36]
			nano /= 36
		}
		return string(b)
	}
	for i := range b {
		b[i] = base36Alphabet[int(b[i])%36]
	}
	return string(b)
}
