package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/example/keeper/internal/core/species"
	"github.com/example/keeper/internal/ports/primary"
)

// SpeciesAdapter is a thin adapter that translates CLI operations to SpeciesService calls.
type SpeciesAdapter struct {
	service primary.SpeciesService
	out     io.Writer
}

// NewSpeciesAdapter creates a new SpeciesAdapter with the given service.
func NewSpeciesAdapter(service primary.SpeciesService, out io.Writer) *SpeciesAdapter {
	return &SpeciesAdapter{
		service: service,
		out:     out,
	}
}

// List prints every tracked species.
func (a *SpeciesAdapter) List(ctx context.Context) error {
	entries, err := a.service.ListSpecies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list species: %w", err)
	}
	return a.printEntries("Tracked species", entries)
}

// Pending prints the species waiting to be merged.
func (a *SpeciesAdapter) Pending(ctx context.Context) error {
	entries, err := a.service.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending species: %w", err)
	}
	return a.printEntries("Pending species", entries)
}

// Filter prints the species matching filters.
func (a *SpeciesAdapter) Filter(ctx context.Context, filters primary.SpeciesFilters) error {
	entries, err := a.service.FilterSpecies(ctx, filters)
	if err != nil {
		return err
	}
	return a.printEntries("Matching species", entries)
}

// Search prints the species matching keyword.
func (a *SpeciesAdapter) Search(ctx context.Context, keyword string) error {
	entries, err := a.service.SearchSpecies(ctx, keyword)
	if err != nil {
		return err
	}
	return a.printEntries(fmt.Sprintf("Species matching %q", keyword), entries)
}

// UpdatePopulation sets a population and prints the result.
func (a *SpeciesAdapter) UpdatePopulation(ctx context.Context, speciesID string, population int) error {
	entry, err := a.service.UpdatePopulation(ctx, speciesID, population)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// UpdateStatus sets a conservation status and prints the result.
func (a *SpeciesAdapter) UpdateStatus(ctx context.Context, speciesID, status string) error {
	entry, err := a.service.UpdateStatus(ctx, speciesID, status)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// AddThreat records a threat and prints the result.
func (a *SpeciesAdapter) AddThreat(ctx context.Context, speciesID, threat string) error {
	entry, err := a.service.AddThreat(ctx, speciesID, threat)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// AddSanctuary records a sanctuary and prints the result.
func (a *SpeciesAdapter) AddSanctuary(ctx context.Context, speciesID, sanctuary string) error {
	entry, err := a.service.AddSanctuary(ctx, speciesID, sanctuary)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// Merge moves pending species into the tracked set.
func (a *SpeciesAdapter) Merge(ctx context.Context) error {
	resp, err := a.service.MergePending(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Merged %d new species (%d tracked)\n", successMark, len(resp.Added), resp.Total)
	if len(resp.Replaced) > 0 {
		fmt.Fprintf(a.out, "%s Replaced existing records: %v\n", warningMark, resp.Replaced)
	}
	return nil
}

// Stats prints the aggregate view of the tracked species.
func (a *SpeciesAdapter) Stats(ctx context.Context) error {
	stats, err := a.service.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	printHeader(a.out, "Species statistics")
	fmt.Fprintf(a.out, "Total species:    %d\n", stats.Total)
	fmt.Fprintf(a.out, "Total population: %s\n", humanize.Comma(int64(stats.TotalPopulation)))

	fmt.Fprintln(a.out, "By status:")
	statuses := species.Statuses()
	for i := len(statuses) - 1; i >= 0; i-- {
		st := statuses[i]
		if n := stats.StatusCounts[st]; n > 0 {
			fmt.Fprintf(a.out, "  %-22s %d\n", statusColor(st).Sprint(st)+":", n)
		}
	}

	if stats.MostThreatened != nil {
		line, err := species.Format(stats.MostThreatened.ID, &stats.MostThreatened.Species)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Most threatened:\n  %s\n", line)
	}

	fmt.Fprintln(a.out, "Population brackets:")
	printBrackets(a.out, stats.Brackets)
	fmt.Fprintln(a.out)
	return nil
}

func (a *SpeciesAdapter) printEntries(title string, entries []*primary.SpeciesEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No species found")
		return nil
	}

	printHeader(a.out, title)
	for _, e := range entries {
		line, err := species.Format(e.ID, &e.Species)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, statusColor(e.Status).Sprint(line))
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *SpeciesAdapter) printUpdated(entry *primary.SpeciesEntry) error {
	line, err := species.Format(entry.ID, &entry.Species)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Updated %s\n  %s\n", successMark, entry.ID, line)
	return nil
}
