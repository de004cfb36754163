package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderNumber returns a human-facing order number of the form
// ORD-<base36 unix millis>-<5 random base36 chars>, upper-cased.
// The random suffix keeps numbers unique for orders created within
// the same millisecond.
func NewOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper("ORD-" + ts + "-" + randomBase36(5))
}

func randomBase36(n int) string {
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	if err != nil {
		// crypto/rand is expected to never fail on supported platforms;
		// fall back to a time-derived suffix rather than panic.
		ns := strconv.FormatInt(time.Now().UnixNano(), 36)
		if len(ns) > n {
			ns = ns[len(ns)-n:]
		}
		return ns
	}
	for i := range buf {
		buf[i] = base36Alphabet[int(buf[i])%len(base36Alphabet)]
	}
	return string(buf)
}
