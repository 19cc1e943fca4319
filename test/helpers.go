package test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decimal parses a decimal and panics on malformed input.
func Decimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Date parses a "YYYY-MM-DD" date in UTC and panics on malformed input.
func Date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

// RandomEmail returns a unique email address.
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", uuid.New().String())
}

// TmpFile returns the path to a database file in a directory that is
// removed when the test finishes.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("%s.db", uuid.New()))
}
