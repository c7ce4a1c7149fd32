package species

import (
	"slices"
	"strings"

	"github.com/example/keeper/internal/core/records"
)

// Status is a conservation status from the closed IUCN-style set.
type Status string

// Conservation statuses, least to most severe.
const (
	LeastConcern         Status = "Least Concern"
	NearThreatened       Status = "Near Threatened"
	Vulnerable           Status = "Vulnerable"
	Endangered           Status = "Endangered"
	CriticallyEndangered Status = "Critically Endangered"
)

var statuses = []Status{LeastConcern, NearThreatened, Vulnerable, Endangered, CriticallyEndangered}

// Statuses returns every valid status ordered by severity.
func Statuses() []Status {
	return slices.Clone(statuses)
}

// ParseStatus validates s against the allowed set. Matching is exact.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", records.InvalidArgument("conservation status cannot be empty")
	}
	st := Status(s)
	if !st.Valid() {
		names := make([]string, len(statuses))
		for i, v := range statuses {
			names[i] = string(v)
		}
		return "", records.InvalidArgument("invalid conservation status %q, must be one of: %s", s, strings.Join(names, ", "))
	}
	return st, nil
}

// Valid reports whether s belongs to the allowed set.
func (s Status) Valid() bool {
	return slices.Contains(statuses, s)
}

// Severity is the status's position in the ranking; -1 when unknown.
func (s Status) Severity() int {
	return slices.Index(statuses, s)
}
