package util

import (
	"strconv"
	"strings"
)

// ParseIntDefault parses s, returning def when s is empty or malformed.
func ParseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// ParseInt64Marker decodes a timestamp-like scalar marker. Absent or
// malformed markers read as zero.
func ParseInt64Marker(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
