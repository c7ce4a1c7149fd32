package primary

import (
	"context"

	"github.com/example/keeper/internal/core/records"
	"github.com/example/keeper/internal/core/species"
)

// SpeciesService defines the primary port for wildlife tracking operations.
// A service holds one session: the tracked species and the species waiting to be added.
// Writes replace the held store only when the operation succeeds.
type SpeciesService interface {
	// ListSpecies returns the tracked species in ID order.
	ListSpecies(ctx context.Context) ([]*SpeciesEntry, error)

	// ListPending returns the species waiting to be merged, in ID order.
	ListPending(ctx context.Context) ([]*SpeciesEntry, error)

	// FilterSpecies returns the tracked species matching every set filter.
	FilterSpecies(ctx context.Context, filters SpeciesFilters) ([]*SpeciesEntry, error)

	// SearchSpecies matches keyword against name, scientific name and threats.
	SearchSpecies(ctx context.Context, keyword string) ([]*SpeciesEntry, error)

	// UpdatePopulation sets a species' population.
	UpdatePopulation(ctx context.Context, speciesID string, population int) (*SpeciesEntry, error)

	// UpdateStatus sets a species' conservation status.
	UpdateStatus(ctx context.Context, speciesID, status string) (*SpeciesEntry, error)

	// AddThreat records a new threat for a species. Known threats are ignored.
	AddThreat(ctx context.Context, speciesID, threat string) (*SpeciesEntry, error)

	// AddSanctuary records a new sanctuary for a species. Known sanctuaries are ignored.
	AddSanctuary(ctx context.Context, speciesID, sanctuary string) (*SpeciesEntry, error)

	// MergePending moves every pending species into the tracked store and clears pending.
	MergePending(ctx context.Context) (*MergeResponse, error)

	// Statistics summarizes the tracked species.
	Statistics(ctx context.Context) (*SpeciesStats, error)
}

// SpeciesEntry pairs a species with its ID at the port boundary.
type SpeciesEntry struct {
	ID string
	species.Species
}

// SpeciesFilters narrows FilterSpecies. Zero values are ignored.
type SpeciesFilters struct {
	Status        string
	Habitat       string
	Sanctuary     string
	MinPopulation *int
	MaxPopulation *int
}

// SpeciesStats contains the aggregate view of the tracked species.
type SpeciesStats struct {
	Total           int
	StatusCounts    map[species.Status]int
	TotalPopulation int
	MostThreatened  *SpeciesEntry // nil when nothing is tracked
	Brackets        records.Brackets
}

// MergeResponse reports what a merge did.
type MergeResponse struct {
	Added    []string // IDs that arrived, in order
	Replaced []string // subset of Added that overwrote an existing record
	Total    int      // size of the store after the merge
}
