// Package species contains the pure business logic for wildlife conservation tracking.
// This is part of the Functional Core - no I/O, only pure functions over records.Store.
package species

import "github.com/example/keeper/internal/core/records"

// Species is one tracked species.
type Species struct {
	Name           string   `json:"name" yaml:"name"`
	ScientificName string   `json:"scientific_name" yaml:"scientific_name"`
	Status         Status   `json:"conservation_status" yaml:"conservation_status"`
	Population     int      `json:"population" yaml:"population"`
	Habitat        string   `json:"habitat_type" yaml:"habitat_type"`
	Sanctuaries    []string `json:"sanctuaries" yaml:"sanctuaries"`
	Threats        []string `json:"threats" yaml:"threats"`
	NewlyAdded     bool     `json:"newly_added,omitempty" yaml:"newly_added,omitempty"`
}

// Store maps a species ID (SP001, NS001, ...) to its species.
type Store = records.Store[Species]

const kind = "species"

// SeedData returns the tracked species and the species waiting to be added.
// Every call builds fresh values so callers never share state.
func SeedData() (speciesData, newSpecies Store) {
	speciesData = Store{
		"SP001": {
			Name:           "Bengal Tiger",
			ScientificName: "Panthera tigris tigris",
			Status:         Endangered,
			Population:     3500,
			Habitat:        "Forest",
			Sanctuaries:    []string{"Sundarbans", "Jim Corbett", "Bandhavgarh"},
			Threats:        []string{"Poaching", "Habitat Loss", "Human Conflict"},
		},
		"SP002": {
			Name:           "Asian Elephant",
			ScientificName: "Elephas maximus",
			Status:         Endangered,
			Population:     27000,
			Habitat:        "Forest",
			Sanctuaries:    []string{"Periyar", "Nagarhole", "Jim Corbett"},
			Threats:        []string{"Habitat Loss", "Human Conflict", "Poaching"},
		},
		"SP003": {
			Name:           "Indian Rhinoceros",
			ScientificName: "Rhinoceros unicornis",
			Status:         Vulnerable,
			Population:     3600,
			Habitat:        "Grassland",
			Sanctuaries:    []string{"Kaziranga", "Manas", "Orang"},
			Threats:        []string{"Poaching", "Habitat Loss", "Flooding"},
		},
		"SP004": {
			Name:           "Snow Leopard",
			ScientificName: "Panthera uncia",
			Status:         Vulnerable,
			Population:     450,
			Habitat:        "Mountain",
			Sanctuaries:    []string{"Hemis", "Pin Valley", "Great Himalayan"},
			Threats:        []string{"Climate Change", "Poaching", "Prey Depletion"},
		},
		"SP005": {
			Name:           "Indian Vulture",
			ScientificName: "Gyps indicus",
			Status:         CriticallyEndangered,
			Population:     30000,
			Habitat:        "Grassland",
			Sanctuaries:    []string{"Ranthambore", "Pench", "Bandhavgarh"},
			Threats:        []string{"Diclofenac Poisoning", "Habitat Loss", "Food Scarcity"},
		},
	}

	newSpecies = Store{
		"NS001": {
			Name:           "Ganges River Dolphin",
			ScientificName: "Platanista gangetica",
			Status:         Endangered,
			Population:     3500,
			Habitat:        "Wetland",
			Sanctuaries:    []string{"Vikramshila", "National Chambal", "Katerniaghat"},
			Threats:        []string{"Water Pollution", "Fishing Nets", "Dams"},
		},
		"NS002": {
			Name:           "Great Indian Bustard",
			ScientificName: "Ardeotis nigriceps",
			Status:         CriticallyEndangered,
			Population:     150,
			Habitat:        "Grassland",
			Sanctuaries:    []string{"Desert National Park", "Kutch Bustard", "Rollapadu"},
			Threats:        []string{"Habitat Loss", "Power Lines", "Predation"},
		},
	}

	return speciesData, newSpecies
}
