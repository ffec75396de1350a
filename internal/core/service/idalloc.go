package service

import "fmt"

// Sequential human-readable identifiers: a prefix letter and a zero-padded
// 4-digit sequence (C0001…, P0001…).
//
// Client IDs derive from the current row count, partner IDs from the store's
// auto-increment high-water mark. Neither is an atomic counter: deleting and
// re-inserting rows can reuse a number, and two transactions racing on the
// same count can compute the same value. The registration transaction plus
// the unique index on the ID column bound that window and turn a lost race
// into a conflict instead of a duplicate row.

func nextClientID(existing int64) string {
	return fmt.Sprintf("C%04d", existing+1)
}

func nextPartnerID(maxRow int64) string {
	return fmt.Sprintf("P%04d", maxRow+1)
}
