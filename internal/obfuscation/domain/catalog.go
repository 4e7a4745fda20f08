package domain

import (
	"time"
)

// ConstantInfo describes a readable constant without its value.
type ConstantInfo struct {
	Name string
	Kind Kind
}

// GroupInfo describes a registered constant group.
type GroupInfo struct {
	Name      string
	Family    Family
	Constants []ConstantInfo
}

// VerifyReport summarises a concurrent consistency check.
type VerifyReport struct {
	Readers    int
	Reads      int
	Constants  int
	Mismatches int
	Duration   time.Duration
}

// Consistent reports whether every read matched the baseline.
func (r VerifyReport) Consistent() bool {
	return r.Mismatches == 0
}
