package species

import (
	"cmp"
	"slices"

	"github.com/example/keeper/internal/core/records"
)

// Population bracket names, smallest populations first.
const (
	BracketCritical   = "critical"
	BracketEndangered = "endangered"
	BracketVulnerable = "vulnerable"
	BracketStable     = "stable"
)

var (
	bracketNames  = []string{BracketCritical, BracketEndangered, BracketVulnerable, BracketStable}
	bracketBounds = []int{500, 5000, 20000}
)

// FilterByStatus keeps species whose status equals status exactly.
// Unknown statuses simply match nothing.
func FilterByStatus(speciesData Store, status Status) (Store, error) {
	if status == "" {
		return nil, records.InvalidArgument("conservation status cannot be empty")
	}
	return records.Filter(speciesData, func(sp Species) bool {
		return sp.Status == status
	})
}

// FilterByPopulationRange keeps species with minPopulation <= population <= maxPopulation.
func FilterByPopulationRange(speciesData Store, minPopulation, maxPopulation int) (Store, error) {
	if minPopulation < 0 {
		return nil, records.InvalidArgument("minimum population cannot be negative")
	}
	if minPopulation > maxPopulation {
		return nil, records.InvalidArgument("minimum population %d is greater than maximum population %d", minPopulation, maxPopulation)
	}
	return records.Filter(speciesData, func(sp Species) bool {
		return minPopulation <= sp.Population && sp.Population <= maxPopulation
	})
}

// FilterByHabitat keeps species living in habitat.
func FilterByHabitat(speciesData Store, habitat string) (Store, error) {
	if habitat == "" {
		return nil, records.InvalidArgument("habitat type cannot be empty")
	}
	return records.Filter(speciesData, func(sp Species) bool {
		return sp.Habitat == habitat
	})
}

// FilterBySanctuary keeps species protected in sanctuary. Matching is exact and case-sensitive.
func FilterBySanctuary(speciesData Store, sanctuary string) (Store, error) {
	if sanctuary == "" {
		return nil, records.InvalidArgument("sanctuary cannot be empty")
	}
	return records.Filter(speciesData, func(sp Species) bool {
		return slices.Contains(sp.Sanctuaries, sanctuary)
	})
}

// Search keeps species whose name, scientific name, or any threat contains keyword, ignoring case.
func Search(speciesData Store, keyword string) (Store, error) {
	if keyword == "" {
		return nil, records.InvalidArgument("keyword cannot be empty")
	}
	return records.Filter(speciesData, func(sp Species) bool {
		return records.ContainsFold(sp.Name, keyword) ||
			records.ContainsFold(sp.ScientificName, keyword) ||
			records.AnyContainsFold(sp.Threats, keyword)
	})
}

// UpdatePopulation returns a new store with the population of speciesID replaced.
func UpdatePopulation(speciesData Store, speciesID string, population int) (Store, error) {
	if population < 0 {
		return nil, records.InvalidArgument("population cannot be negative")
	}
	return records.Update(speciesData, kind, speciesID, func(sp Species) (Species, error) {
		sp.Population = population
		return sp, nil
	})
}

// UpdateStatus returns a new store with the conservation status of speciesID replaced.
func UpdateStatus(speciesData Store, speciesID string, status Status) (Store, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return records.Update(speciesData, kind, speciesID, func(sp Species) (Species, error) {
		sp.Status = status
		return sp, nil
	})
}

// AddThreat appends threat to speciesID's threats unless it is already listed.
// Adding a listed threat is not an error.
func AddThreat(speciesData Store, speciesID, threat string) (Store, error) {
	if threat == "" {
		return nil, records.InvalidArgument("threat cannot be empty")
	}
	return records.Update(speciesData, kind, speciesID, func(sp Species) (Species, error) {
		sp.Threats, _ = records.AppendUnique(sp.Threats, threat)
		return sp, nil
	})
}

// AddSanctuary appends sanctuary to speciesID's sanctuaries unless it is already listed.
func AddSanctuary(speciesData Store, speciesID, sanctuary string) (Store, error) {
	if sanctuary == "" {
		return nil, records.InvalidArgument("sanctuary cannot be empty")
	}
	return records.Update(speciesData, kind, speciesID, func(sp Species) (Species, error) {
		sp.Sanctuaries, _ = records.AppendUnique(sp.Sanctuaries, sanctuary)
		return sp, nil
	})
}

// Merge adds every species from newSpecies to existingSpecies, flagged NewlyAdded.
// On duplicate IDs the incoming species wins silently; use MergeWithPolicy
// to get the overlapping IDs or to reject them.
func Merge(existingSpecies, newSpecies Store) (Store, error) {
	merged, _, err := MergeWithPolicy(existingSpecies, newSpecies, records.MergeOverwrite)
	return merged, err
}

// MergeWithPolicy is Merge with an explicit duplicate-ID policy.
// It also returns the IDs that existed in both stores.
func MergeWithPolicy(existingSpecies, newSpecies Store, policy records.MergePolicy) (Store, []string, error) {
	return records.Merge(existingSpecies, newSpecies, func(sp Species) Species {
		sp.NewlyAdded = true
		return sp
	}, policy)
}

// StatusCounts counts species per conservation status.
func StatusCounts(speciesData Store) (map[Status]int, error) {
	raw, err := records.CountBy(speciesData, func(sp Species) string {
		return string(sp.Status)
	})
	if err != nil {
		return nil, err
	}
	counts := make(map[Status]int, len(raw))
	for st, n := range raw {
		counts[Status(st)] = n
	}
	return counts, nil
}

// TotalPopulation sums the population of every species.
func TotalPopulation(speciesData Store) (int, error) {
	return records.Sum(speciesData, func(sp Species) int {
		return sp.Population
	})
}

// CompareThreat orders species by threat level: higher severity first,
// then lower population. It returns > 0 when a is more threatened than b.
func CompareThreat(a, b Species) int {
	if c := cmp.Compare(a.Status.Severity(), b.Status.Severity()); c != 0 {
		return c
	}
	return cmp.Compare(b.Population, a.Population)
}

// MostThreatened returns the species ranked highest by CompareThreat.
func MostThreatened(speciesData Store) (string, Species, error) {
	return records.MaxBy(speciesData, CompareThreat)
}

// PopulationBrackets groups species IDs into critical (<=500), endangered (<=5000),
// vulnerable (<=20000) and stable brackets.
func PopulationBrackets(speciesData Store) (records.Brackets, error) {
	return records.Bucket(speciesData, func(sp Species) int {
		return sp.Population
	}, bracketNames, bracketBounds)
}
