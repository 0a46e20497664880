package contract

import (
	"testing"
	"time"
)

// FuzzParseDate fuzzes ParseDate with arbitrary inputs.
func FuzzParseDate(f *testing.F) {
	for _, seed := range []string{"2025-01-01", "3 weeks ago", "2025-01-01T00:00:00Z", "", "99999999 years ago"} {
		f.Add(seed, false)
	}
	f.Fuzz(func(_ *testing.T, s string, endOfDay bool) {
		_, _ = ParseDate(s, time.Unix(0, 0).UTC(), endOfDay)
	})
}
