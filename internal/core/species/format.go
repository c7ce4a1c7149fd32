package species

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/example/keeper/internal/core/records"
)

// Format renders a species as a single display line.
func Format(speciesID string, sp *Species) (string, error) {
	if sp == nil {
		return "", records.InvalidArgument("species cannot be nil")
	}

	newlyAdded := ""
	if sp.NewlyAdded {
		newlyAdded = " [NEW]"
	}

	return fmt.Sprintf("%s | %s%s (%s) | %s | Population: %s | Habitat: %s | Sanctuaries: %s | Threats: %s",
		speciesID,
		sp.Name,
		newlyAdded,
		sp.ScientificName,
		sp.Status,
		humanize.Comma(int64(sp.Population)),
		sp.Habitat,
		strings.Join(sp.Sanctuaries, ", "),
		strings.Join(sp.Threats, ", "),
	), nil
}
