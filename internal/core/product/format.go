package product

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/example/keeper/internal/core/records"
)

const maxStars = 5

// Stars renders a 0-5 rating as filled and empty stars. Fractions round down.
func Stars(rating float64) string {
	filled := int(math.Floor(rating))
	filled = max(0, min(maxStars, filled))
	return strings.Repeat("★", filled) + strings.Repeat("☆", maxStars-filled)
}

// FormatPrice renders a price with thousands separators and two decimals.
func FormatPrice(price float64) string {
	return "₹" + humanize.FormatFloat("#,###.##", price)
}

// Format renders a product as a single display line.
func Format(productID string, p *Product) (string, error) {
	if p == nil {
		return "", records.InvalidArgument("product cannot be nil")
	}

	newArrival := ""
	if p.NewArrival {
		newArrival = " [NEW]"
	}

	return fmt.Sprintf("%s | %s%s | %s | %s | Stock: %s | Rating: %s (%.1f) | Features: %s",
		productID,
		p.Name,
		newArrival,
		p.Category,
		FormatPrice(p.Price),
		humanize.Comma(int64(p.Stock)),
		Stars(p.Rating),
		p.Rating,
		strings.Join(p.Features, ", "),
	), nil
}
