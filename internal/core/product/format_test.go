package product

import "testing"

func TestStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{2.9, "★★☆☆☆"},
		{4.5, "★★★★☆"},
		{5, "★★★★★"},
		{7, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := Stars(tt.rating); got != tt.want {
			t.Errorf("Stars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	inventory, newProducts := SeedData()
	merged, err := Merge(inventory, newProducts)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	tests := []struct {
		id   string
		want string
	}{
		{
			id:   "P001",
			want: "P001 | Smartphone XS | electronics | ₹59,999.99 | Stock: 25 | Rating: ★★★★☆ (4.5) | Features: 5G, 128GB Storage, Dual Camera",
		},
		{
			id:   "N002",
			want: "N002 | Protein Powder [NEW] | health | ₹1,999.99 | Stock: 45 | Rating: ★★★★☆ (4.3) | Features: Plant-Based, 20g Protein, Sugar-Free",
		},
		{
			id:   "P004",
			want: "P004 | Organic Coffee Beans | groceries | ₹899.99 | Stock: 50 | Rating: ★★★★☆ (4.8) | Features: Fair Trade, Whole Bean, Medium Roast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p := merged[tt.id]
			got, err := Format(tt.id, &p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}
