package species

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/keeper/internal/core/records"
)

func TestFilters_SeedData(t *testing.T) {
	speciesData, _ := SeedData()

	tests := []struct {
		name    string
		filter  func(Store) (Store, error)
		wantIDs []string
	}{
		{
			name:    "status Endangered",
			filter:  func(s Store) (Store, error) { return FilterByStatus(s, Endangered) },
			wantIDs: []string{"SP001", "SP002"},
		},
		{
			name:    "status not present",
			filter:  func(s Store) (Store, error) { return FilterByStatus(s, "Extinct") },
			wantIDs: []string{},
		},
		{
			name:    "population 1000..5000",
			filter:  func(s Store) (Store, error) { return FilterByPopulationRange(s, 1000, 5000) },
			wantIDs: []string{"SP001", "SP003"},
		},
		{
			name:    "population range is inclusive",
			filter:  func(s Store) (Store, error) { return FilterByPopulationRange(s, 450, 3500) },
			wantIDs: []string{"SP001", "SP004"},
		},
		{
			name:    "population range full span returns everything",
			filter:  func(s Store) (Store, error) { return FilterByPopulationRange(s, 450, 30000) },
			wantIDs: []string{"SP001", "SP002", "SP003", "SP004", "SP005"},
		},
		{
			name:    "population range with no matches",
			filter:  func(s Store) (Store, error) { return FilterByPopulationRange(s, 600, 800) },
			wantIDs: []string{},
		},
		{
			name:    "habitat Forest",
			filter:  func(s Store) (Store, error) { return FilterByHabitat(s, "Forest") },
			wantIDs: []string{"SP001", "SP002"},
		},
		{
			name:    "habitat Mountain",
			filter:  func(s Store) (Store, error) { return FilterByHabitat(s, "Mountain") },
			wantIDs: []string{"SP004"},
		},
		{
			name:    "habitat Ocean",
			filter:  func(s Store) (Store, error) { return FilterByHabitat(s, "Ocean") },
			wantIDs: []string{},
		},
		{
			name:    "sanctuary Jim Corbett",
			filter:  func(s Store) (Store, error) { return FilterBySanctuary(s, "Jim Corbett") },
			wantIDs: []string{"SP001", "SP002"},
		},
		{
			name:    "sanctuary Kaziranga",
			filter:  func(s Store) (Store, error) { return FilterBySanctuary(s, "Kaziranga") },
			wantIDs: []string{"SP003"},
		},
		{
			name:    "sanctuary match is case-sensitive",
			filter:  func(s Store) (Store, error) { return FilterBySanctuary(s, "jim corbett") },
			wantIDs: []string{},
		},
		{
			name:    "keyword matches threats",
			filter:  func(s Store) (Store, error) { return Search(s, "poach") },
			wantIDs: []string{"SP001", "SP002", "SP003", "SP004"},
		},
		{
			name:    "keyword matches scientific name",
			filter:  func(s Store) (Store, error) { return Search(s, "PANTHERA") },
			wantIDs: []string{"SP001", "SP004"},
		},
		{
			name:    "keyword matches name",
			filter:  func(s Store) (Store, error) { return Search(s, "vulture") },
			wantIDs: []string{"SP005"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter(speciesData)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantIDs, records.IDs(got)); diff != "" {
				t.Errorf("IDs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilters_EmptyStore(t *testing.T) {
	empty := Store{}
	filters := map[string]func() (Store, error){
		"status":     func() (Store, error) { return FilterByStatus(empty, Endangered) },
		"population": func() (Store, error) { return FilterByPopulationRange(empty, 0, 5000) },
		"habitat":    func() (Store, error) { return FilterByHabitat(empty, "Forest") },
		"sanctuary":  func() (Store, error) { return FilterBySanctuary(empty, "Jim Corbett") },
		"keyword":    func() (Store, error) { return Search(empty, "tiger") },
	}
	for name, fn := range filters {
		got, err := fn()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%s: got %v, want empty store", name, got)
		}
	}
}

func TestInputValidation(t *testing.T) {
	one := Store{"SP001": {Name: "Test Species", Status: Endangered, Population: 1000, Threats: []string{"Test Threat"}}}

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"status filter nil store", func() error { _, err := FilterByStatus(nil, Endangered); return err }, records.ErrInvalidArgument},
		{"status filter empty status", func() error { _, err := FilterByStatus(one, ""); return err }, records.ErrInvalidArgument},
		{"range nil store", func() error { _, err := FilterByPopulationRange(nil, 100, 1000); return err }, records.ErrInvalidArgument},
		{"range negative min", func() error { _, err := FilterByPopulationRange(one, -100, 1000); return err }, records.ErrInvalidArgument},
		{"range min above max", func() error { _, err := FilterByPopulationRange(one, 2000, 1000); return err }, records.ErrInvalidArgument},
		{"habitat nil store", func() error { _, err := FilterByHabitat(nil, "Forest"); return err }, records.ErrInvalidArgument},
		{"habitat empty", func() error { _, err := FilterByHabitat(one, ""); return err }, records.ErrInvalidArgument},
		{"sanctuary nil store", func() error { _, err := FilterBySanctuary(nil, "Jim Corbett"); return err }, records.ErrInvalidArgument},
		{"sanctuary empty", func() error { _, err := FilterBySanctuary(one, ""); return err }, records.ErrInvalidArgument},
		{"search nil store", func() error { _, err := Search(nil, "tiger"); return err }, records.ErrInvalidArgument},
		{"search empty keyword", func() error { _, err := Search(one, ""); return err }, records.ErrInvalidArgument},
		{"population nil store", func() error { _, err := UpdatePopulation(nil, "SP001", 1000); return err }, records.ErrInvalidArgument},
		{"population empty id", func() error { _, err := UpdatePopulation(one, "", 1000); return err }, records.ErrInvalidArgument},
		{"population negative", func() error { _, err := UpdatePopulation(one, "SP001", -10); return err }, records.ErrInvalidArgument},
		{"population unknown id", func() error { _, err := UpdatePopulation(one, "INVALID", 1000); return err }, records.ErrNotFound},
		{"status nil store", func() error { _, err := UpdateStatus(nil, "SP001", Endangered); return err }, records.ErrInvalidArgument},
		{"status empty", func() error { _, err := UpdateStatus(one, "SP001", ""); return err }, records.ErrInvalidArgument},
		{"status not allowed", func() error { _, err := UpdateStatus(one, "SP001", "Not A Status"); return err }, records.ErrInvalidArgument},
		{"status unknown id", func() error { _, err := UpdateStatus(one, "SP999", Vulnerable); return err }, records.ErrNotFound},
		{"threat nil store", func() error { _, err := AddThreat(nil, "SP001", "New Threat"); return err }, records.ErrInvalidArgument},
		{"threat empty id", func() error { _, err := AddThreat(one, "", "New Threat"); return err }, records.ErrInvalidArgument},
		{"threat empty", func() error { _, err := AddThreat(one, "SP001", ""); return err }, records.ErrInvalidArgument},
		{"threat unknown id", func() error { _, err := AddThreat(one, "SP404", "New Threat"); return err }, records.ErrNotFound},
		{"sanctuary add empty", func() error { _, err := AddSanctuary(one, "SP001", ""); return err }, records.ErrInvalidArgument},
		{"merge nil existing", func() error { _, err := Merge(nil, Store{"NS001": {}}); return err }, records.ErrInvalidArgument},
		{"merge nil new", func() error { _, err := Merge(one, nil); return err }, records.ErrInvalidArgument},
		{"counts nil", func() error { _, err := StatusCounts(nil); return err }, records.ErrInvalidArgument},
		{"total nil", func() error { _, err := TotalPopulation(nil); return err }, records.ErrInvalidArgument},
		{"most threatened nil", func() error { _, _, err := MostThreatened(nil); return err }, records.ErrInvalidArgument},
		{"most threatened empty", func() error { _, _, err := MostThreatened(Store{}); return err }, records.ErrInvalidArgument},
		{"brackets nil", func() error { _, err := PopulationBrackets(nil); return err }, records.ErrInvalidArgument},
		{"format nil", func() error { _, err := Format("SP001", nil); return err }, records.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdates_DoNotMutateInput(t *testing.T) {
	speciesData, _ := SeedData()
	snapshot, _ := SeedData()

	updated, err := UpdatePopulation(speciesData, "SP001", 4000)
	if err != nil {
		t.Fatalf("UpdatePopulation: %v", err)
	}
	if updated["SP001"].Population != 4000 {
		t.Errorf("updated population = %d, want 4000", updated["SP001"].Population)
	}

	updated, err = UpdateStatus(speciesData, "SP003", Endangered)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated["SP003"].Status != Endangered {
		t.Errorf("updated status = %s, want Endangered", updated["SP003"].Status)
	}

	updated, err = AddThreat(speciesData, "SP001", "Disease")
	if err != nil {
		t.Fatalf("AddThreat: %v", err)
	}
	if diff := cmp.Diff([]string{"Poaching", "Habitat Loss", "Human Conflict", "Disease"}, updated["SP001"].Threats); diff != "" {
		t.Errorf("threats mismatch (-want +got):\n%s", diff)
	}

	updated, err = AddSanctuary(speciesData, "SP004", "Kibber")
	if err != nil {
		t.Fatalf("AddSanctuary: %v", err)
	}
	if n := len(updated["SP004"].Sanctuaries); n != 4 {
		t.Errorf("sanctuaries = %d, want 4", n)
	}

	if diff := cmp.Diff(snapshot, speciesData); diff != "" {
		t.Errorf("input store changed (-before +after):\n%s", diff)
	}
}

func TestUpdatePopulation_AllowsZero(t *testing.T) {
	speciesData, _ := SeedData()
	updated, err := UpdatePopulation(speciesData, "SP001", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated["SP001"].Population != 0 {
		t.Errorf("population = %d, want 0", updated["SP001"].Population)
	}
}

func TestUpdateStatus_AcceptsEveryStatus(t *testing.T) {
	speciesData, _ := SeedData()
	for _, st := range Statuses() {
		updated, err := UpdateStatus(speciesData, "SP001", st)
		if err != nil {
			t.Errorf("UpdateStatus(%q): %v", st, err)
			continue
		}
		if updated["SP001"].Status != st {
			t.Errorf("status = %q, want %q", updated["SP001"].Status, st)
		}
	}
}

func TestAddThreat_Idempotent(t *testing.T) {
	speciesData, _ := SeedData()
	existing := speciesData["SP001"].Threats[0]

	updated, err := AddThreat(speciesData, "SP001", existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(speciesData["SP001"].Threats, updated["SP001"].Threats); diff != "" {
		t.Errorf("duplicate threat changed list (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	speciesData, newSpecies := SeedData()
	snapshot, _ := SeedData()

	merged, err := Merge(speciesData, newSpecies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged) != 7 {
		t.Errorf("len = %d, want 7", len(merged))
	}
	for id := range newSpecies {
		if !merged[id].NewlyAdded {
			t.Errorf("%s not flagged NewlyAdded", id)
		}
		if newSpecies[id].NewlyAdded {
			t.Errorf("%s flagged in the incoming store", id)
		}
	}
	for id, sp := range speciesData {
		if diff := cmp.Diff(sp, merged[id]); diff != "" {
			t.Errorf("%s changed by merge (-want +got):\n%s", id, diff)
		}
	}
	if diff := cmp.Diff(snapshot, speciesData); diff != "" {
		t.Errorf("input store changed (-before +after):\n%s", diff)
	}
}

func TestMerge_EmptyStores(t *testing.T) {
	speciesData, newSpecies := SeedData()

	merged, err := Merge(Store{}, newSpecies)
	if err != nil || len(merged) != len(newSpecies) {
		t.Errorf("merge into empty: len %d err %v, want %d nil", len(merged), err, len(newSpecies))
	}

	merged, err = Merge(speciesData, Store{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(speciesData, merged); diff != "" {
		t.Errorf("merging nothing changed the store (-want +got):\n%s", diff)
	}

	merged, err = Merge(Store{}, Store{})
	if err != nil || merged == nil || len(merged) != 0 {
		t.Errorf("merge of empty stores = %v, %v", merged, err)
	}
}

func TestMerge_DuplicateIncomingWins(t *testing.T) {
	speciesData, _ := SeedData()
	incoming := Store{"SP004": {Name: "Snow Leopard (resurvey)", Status: Vulnerable, Population: 470}}

	merged, err := Merge(speciesData, incoming)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := merged["SP004"]; got.Population != 470 || !got.NewlyAdded {
		t.Errorf("SP004 = %+v, want incoming record flagged NewlyAdded", got)
	}
	if speciesData["SP004"].Population != 450 {
		t.Error("existing store changed by merge")
	}

	_, overlap, err := MergeWithPolicy(speciesData, incoming, records.MergeOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"SP004"}, overlap); diff != "" {
		t.Errorf("overlap mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeWithPolicy_Duplicates(t *testing.T) {
	speciesData, _ := SeedData()
	incoming := Store{"SP001": {Name: "Bengal Tiger (resurvey)", Status: Endangered, Population: 3682}}

	merged, overlap, err := MergeWithPolicy(speciesData, incoming, records.MergeOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"SP001"}, overlap); diff != "" {
		t.Errorf("overlap mismatch (-want +got):\n%s", diff)
	}
	if merged["SP001"].Population != 3682 || !merged["SP001"].NewlyAdded {
		t.Errorf("SP001 = %+v, want incoming record flagged", merged["SP001"])
	}

	if _, _, err := MergeWithPolicy(speciesData, incoming, records.MergeReject); !errors.Is(err, records.ErrInvalidArgument) {
		t.Errorf("reject policy err = %v, want ErrInvalidArgument", err)
	}
}

func TestStatusCounts(t *testing.T) {
	speciesData, _ := SeedData()

	got, err := StatusCounts(speciesData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[Status]int{Endangered: 2, Vulnerable: 2, CriticallyEndangered: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}

	empty, err := StatusCounts(Store{})
	if err != nil || len(empty) != 0 {
		t.Errorf("empty store counts = %v, %v", empty, err)
	}
}

func TestTotalPopulation(t *testing.T) {
	speciesData, _ := SeedData()

	got, err := TotalPopulation(speciesData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 64550 {
		t.Errorf("total = %d, want 64550", got)
	}

	zero, err := TotalPopulation(Store{})
	if err != nil || zero != 0 {
		t.Errorf("empty total = %d, %v", zero, err)
	}
}

func TestMostThreatened(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		want  string
	}{
		{
			name: "severity outranks population",
			store: Store{
				"A": {Status: Vulnerable, Population: 100},
				"B": {Status: Vulnerable, Population: 50},
				"C": {Status: CriticallyEndangered, Population: 30000},
			},
			want: "C",
		},
		{
			name: "lower population wins within a status",
			store: Store{
				"A": {Status: Endangered, Population: 900},
				"B": {Status: Endangered, Population: 90},
				"C": {Status: NearThreatened, Population: 1},
			},
			want: "B",
		},
		{
			name:  "single record",
			store: Store{"ONLY": {Status: LeastConcern, Population: 1_000_000}},
			want:  "ONLY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, _, err := MostThreatened(tt.store)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("MostThreatened = %s, want %s", id, tt.want)
			}
		})
	}

	speciesData, _ := SeedData()
	id, sp, err := MostThreatened(speciesData)
	if err != nil {
		t.Fatalf("seed data: %v", err)
	}
	if id != "SP005" || sp.Name != "Indian Vulture" {
		t.Errorf("seed MostThreatened = %s %s, want SP005 Indian Vulture", id, sp.Name)
	}
}

func TestPopulationBrackets(t *testing.T) {
	store := Store{
		"T001": {Population: 0},
		"T002": {Population: 500},
		"T003": {Population: 501},
		"T004": {Population: 5000},
		"T005": {Population: 5001},
		"T006": {Population: 20000},
		"T007": {Population: 20001},
	}

	got, err := PopulationBrackets(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string][]string{
		BracketCritical:   {"T001", "T002"},
		BracketEndangered: {"T003", "T004"},
		BracketVulnerable: {"T005", "T006"},
		BracketStable:     {"T007"},
	}
	for name, ids := range want {
		if diff := cmp.Diff(ids, got.Get(name)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	speciesData, _ := SeedData()
	seeded, err := PopulationBrackets(speciesData)
	if err != nil {
		t.Fatalf("seed data: %v", err)
	}
	if diff := cmp.Diff([]string{"SP004"}, seeded.Get(BracketCritical)); diff != "" {
		t.Errorf("critical mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"SP002", "SP005"}, seeded.Get(BracketStable)); diff != "" {
		t.Errorf("stable mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStatus(t *testing.T) {
	if st, err := ParseStatus("Near Threatened"); err != nil || st != NearThreatened {
		t.Errorf("ParseStatus(Near Threatened) = %q, %v", st, err)
	}
	if _, err := ParseStatus("endangered"); !errors.Is(err, records.ErrInvalidArgument) {
		t.Errorf("lower-case status should be rejected, got %v", err)
	}
	if sev := Status("Extinct").Severity(); sev != -1 {
		t.Errorf("unknown severity = %d, want -1", sev)
	}
	if LeastConcern.Severity() >= CriticallyEndangered.Severity() {
		t.Error("severity ordering is inverted")
	}
}
