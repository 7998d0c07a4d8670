package services

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const idSuffixLen = 9

// NewID returns an identifier shaped {prefix}_{unix_ms}_{base36 suffix}.
func NewID(prefix string) string {
	return newIDAt(prefix, time.Now())
}

func newIDAt(prefix string, now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), base36Suffix(binary.BigEndian.Uint64(u[8:])))
}

// base36Suffix keeps the low-order digits; the leading ones carry the fixed UUID variant bits.
func base36Suffix(n uint64) string {
	suffix := strconv.FormatUint(n, 36)
	if len(suffix) > idSuffixLen {
		suffix = suffix[len(suffix)-idSuffixLen:]
	}
	return suffix
}
