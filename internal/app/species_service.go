package app

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/example/keeper/internal/core/records"
	"github.com/example/keeper/internal/core/species"
	"github.com/example/keeper/internal/ports/primary"
)

// VariantSpecies names the wildlife variant in logs, metrics and history.
const VariantSpecies = "species"

// SpeciesServiceImpl implements the SpeciesService interface.
// It holds one session's stores and is not safe for concurrent use.
type SpeciesServiceImpl struct {
	instrumentation
	current species.Store
	pending species.Store
	policy  records.MergePolicy
}

// NewSpeciesService creates a SpeciesService over the given stores.
// nil stores start empty.
func NewSpeciesService(speciesData, newSpecies species.Store, opts Options) *SpeciesServiceImpl {
	if speciesData == nil {
		speciesData = species.Store{}
	}
	if newSpecies == nil {
		newSpecies = species.Store{}
	}
	return &SpeciesServiceImpl{
		instrumentation: newInstrumentation(VariantSpecies, opts),
		current:         speciesData,
		pending:         newSpecies,
		policy:          mergePolicy(opts.MergePolicy),
	}
}

// ListSpecies returns the tracked species in ID order.
func (s *SpeciesServiceImpl) ListSpecies(ctx context.Context) (_ []*primary.SpeciesEntry, err error) {
	defer s.track(ctx, "list")(&err)
	return speciesEntries(s.current), nil
}

// ListPending returns the species waiting to be merged.
func (s *SpeciesServiceImpl) ListPending(ctx context.Context) (_ []*primary.SpeciesEntry, err error) {
	defer s.track(ctx, "pending")(&err)
	return speciesEntries(s.pending), nil
}

// FilterSpecies applies every set filter in turn.
func (s *SpeciesServiceImpl) FilterSpecies(ctx context.Context, filters primary.SpeciesFilters) (_ []*primary.SpeciesEntry, err error) {
	defer s.track(ctx, "filter")(&err)

	result := s.current
	if filters.Status != "" {
		var status species.Status
		if status, err = species.ParseStatus(filters.Status); err != nil {
			return nil, err
		}
		if result, err = species.FilterByStatus(result, status); err != nil {
			return nil, err
		}
	}
	if filters.Habitat != "" {
		if result, err = species.FilterByHabitat(result, filters.Habitat); err != nil {
			return nil, err
		}
	}
	if filters.Sanctuary != "" {
		if result, err = species.FilterBySanctuary(result, filters.Sanctuary); err != nil {
			return nil, err
		}
	}
	if filters.MinPopulation != nil || filters.MaxPopulation != nil {
		lo, hi := 0, math.MaxInt
		if filters.MinPopulation != nil {
			lo = *filters.MinPopulation
		}
		if filters.MaxPopulation != nil {
			hi = *filters.MaxPopulation
		}
		if result, err = species.FilterByPopulationRange(result, lo, hi); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("species filtered", zap.Int("matches", len(result)))
	return speciesEntries(result), nil
}

// SearchSpecies matches keyword against name, scientific name and threats.
func (s *SpeciesServiceImpl) SearchSpecies(ctx context.Context, keyword string) (_ []*primary.SpeciesEntry, err error) {
	defer s.track(ctx, "search")(&err)

	result, err := species.Search(s.current, keyword)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("species searched", zap.String("keyword", keyword), zap.Int("matches", len(result)))
	return speciesEntries(result), nil
}

// UpdatePopulation sets a species' population.
func (s *SpeciesServiceImpl) UpdatePopulation(ctx context.Context, speciesID string, population int) (_ *primary.SpeciesEntry, err error) {
	defer s.track(ctx, "update_population")(&err)

	before := s.current[speciesID]
	next, err := species.UpdatePopulation(s.current, speciesID, population)
	if err != nil {
		return nil, err
	}
	s.current = next
	s.logUpdate(ctx, speciesID, "population", strconv.Itoa(before.Population), strconv.Itoa(population))
	return speciesEntry(speciesID, next[speciesID]), nil
}

// UpdateStatus sets a species' conservation status.
func (s *SpeciesServiceImpl) UpdateStatus(ctx context.Context, speciesID, status string) (_ *primary.SpeciesEntry, err error) {
	defer s.track(ctx, "update_status")(&err)

	before := s.current[speciesID]
	next, err := species.UpdateStatus(s.current, speciesID, species.Status(status))
	if err != nil {
		return nil, err
	}
	s.current = next
	s.logUpdate(ctx, speciesID, "conservation_status", string(before.Status), status)
	return speciesEntry(speciesID, next[speciesID]), nil
}

// AddThreat records a new threat for a species.
func (s *SpeciesServiceImpl) AddThreat(ctx context.Context, speciesID, threat string) (_ *primary.SpeciesEntry, err error) {
	defer s.track(ctx, "add_threat")(&err)

	before := s.current[speciesID]
	next, err := species.AddThreat(s.current, speciesID, threat)
	if err != nil {
		return nil, err
	}
	s.current = next
	if after := next[speciesID]; len(after.Threats) != len(before.Threats) {
		s.logUpdate(ctx, speciesID, "threats", strings.Join(before.Threats, ", "), strings.Join(after.Threats, ", "))
	}
	return speciesEntry(speciesID, next[speciesID]), nil
}

// AddSanctuary records a new sanctuary for a species.
func (s *SpeciesServiceImpl) AddSanctuary(ctx context.Context, speciesID, sanctuary string) (_ *primary.SpeciesEntry, err error) {
	defer s.track(ctx, "add_sanctuary")(&err)

	before := s.current[speciesID]
	next, err := species.AddSanctuary(s.current, speciesID, sanctuary)
	if err != nil {
		return nil, err
	}
	s.current = next
	if after := next[speciesID]; len(after.Sanctuaries) != len(before.Sanctuaries) {
		s.logUpdate(ctx, speciesID, "sanctuaries", strings.Join(before.Sanctuaries, ", "), strings.Join(after.Sanctuaries, ", "))
	}
	return speciesEntry(speciesID, next[speciesID]), nil
}

// MergePending moves every pending species into the tracked store.
// Pending is cleared only when the merge succeeds.
func (s *SpeciesServiceImpl) MergePending(ctx context.Context) (_ *primary.MergeResponse, err error) {
	defer s.track(ctx, "merge")(&err)

	merged, replaced, err := species.MergeWithPolicy(s.current, s.pending, s.policy)
	if err != nil {
		return nil, err
	}
	added := records.IDs(s.pending)
	s.current = merged
	s.pending = species.Store{}
	s.logMerge(ctx, added, replaced)

	return &primary.MergeResponse{
		Added:    added,
		Replaced: replaced,
		Total:    len(merged),
	}, nil
}

// Statistics summarizes the tracked species.
func (s *SpeciesServiceImpl) Statistics(ctx context.Context) (_ *primary.SpeciesStats, err error) {
	defer s.track(ctx, "stats")(&err)

	counts, err := species.StatusCounts(s.current)
	if err != nil {
		return nil, err
	}
	total, err := species.TotalPopulation(s.current)
	if err != nil {
		return nil, err
	}
	brackets, err := species.PopulationBrackets(s.current)
	if err != nil {
		return nil, err
	}

	stats := &primary.SpeciesStats{
		Total:           len(s.current),
		StatusCounts:    counts,
		TotalPopulation: total,
		Brackets:        brackets,
	}
	if len(s.current) > 0 {
		id, sp, err := species.MostThreatened(s.current)
		if err != nil {
			return nil, err
		}
		stats.MostThreatened = speciesEntry(id, sp)
	}
	return stats, nil
}

func speciesEntries(store species.Store) []*primary.SpeciesEntry {
	ids := records.IDs(store)
	entries := make([]*primary.SpeciesEntry, len(ids))
	for i, id := range ids {
		entries[i] = speciesEntry(id, store[id])
	}
	return entries
}

// speciesEntry copies the record's lists so callers cannot reach into the store.
func speciesEntry(id string, sp species.Species) *primary.SpeciesEntry {
	sp.Sanctuaries = slices.Clone(sp.Sanctuaries)
	sp.Threats = slices.Clone(sp.Threats)
	return &primary.SpeciesEntry{ID: id, Species: sp}
}

// Ensure SpeciesServiceImpl implements the interface.
var _ primary.SpeciesService = (*SpeciesServiceImpl)(nil)
