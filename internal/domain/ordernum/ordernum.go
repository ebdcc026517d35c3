// Package ordernum allocates the human-readable, month-scoped order
// identifiers assigned to proposals at creation ("XMA-2024-03-00007").
//
// Allocation is a stateless read over already-issued identifiers rather
// than an in-process counter, so it survives restarts and scale-out.
// Because the read and the caller's later insert are not one atomic
// step, two concurrent creations inside the same month can compute the
// same number. That race is accepted here; the proposals table carries
// a unique index on order_id as a backstop and the creating workflow
// retries allocation once when the insert hits it.
package ordernum

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// Prefix identifies proposal order IDs.
	Prefix = "XMA"

	seqDigits = 5
)

// Pattern matches well-formed order identifiers.
var Pattern = regexp.MustCompile(`^[A-Z]+-\d{4}-\d{2}-\d{5}$`)

// LatestReader is the single read the allocator needs from the store:
// the lexicographically greatest identifier matching prefix, or an
// empty string when none exists.
type LatestReader interface {
	LatestOrderID(ctx context.Context, prefix string) (string, error)
}

// MonthPrefix returns the shared prefix of every identifier issued in
// the given year and month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%s-%04d-%02d-", Prefix, year, int(month))
}

// Format renders an identifier for the given sequence number and date.
// Total: a non-positive sequence is substituted with 1, never an error
// or a malformed string.
func Format(seq int, now time.Time) string {
	if seq < 1 {
		seq = 1
	}
	return fmt.Sprintf("%s%0*d", MonthPrefix(now.Year(), now.Month()), seqDigits, seq)
}

// Next returns the next sequence number for (year, month) with exactly
// one store read and no writes. The first number of a month is 1.
// A failed read or an unparsable stored identifier also yields 1:
// proposal creation is never blocked on a transient read problem, at
// the documented cost of a possible restart of the month's sequence.
func Next(ctx context.Context, reader LatestReader, year int, month time.Month) int {
	latest, err := reader.LatestOrderID(ctx, MonthPrefix(year, month))
	if err != nil || latest == "" {
		return 1
	}

	idx := strings.LastIndexByte(latest, '-')
	if idx < 0 || idx+1 >= len(latest) {
		return 1
	}

	seq, err := strconv.Atoi(latest[idx+1:])
	if err != nil || seq < 1 {
		return 1
	}

	return seq + 1
}
