// Package filtering narrows and orders a property list according to the
// search controls exposed by the catalog endpoint.
package filtering

import (
	"sort"
	"strconv"
	"strings"

	"inmobiliaria-premium/models"
)

// Filters holds the raw filter values as they arrive from the query
// string. Numeric fields stay strings on purpose: an empty or
// non-numeric value means "no constraint" and must never reject
// every record.
type Filters struct {
	PriceMin     string
	PriceMax     string
	Types        []string
	Statuses     []string
	BedroomsMin  string
	BathroomsMin string
	Location     string
}

// Apply returns the records matching the search term and every active
// filter, ordered featured-first and then by descending price. The sort
// is stable, so ties keep their original relative order. The input slice
// is not modified.
func Apply(properties []models.Property, searchTerm string, f Filters) []models.Property {
	priceMin, hasPriceMin := parseConstraint(f.PriceMin)
	priceMax, hasPriceMax := parseConstraint(f.PriceMax)
	bedroomsMin, hasBedroomsMin := parseConstraint(f.BedroomsMin)
	bathroomsMin, hasBathroomsMin := parseConstraint(f.BathroomsMin)
	search := strings.ToLower(strings.TrimSpace(searchTerm))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	result := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if hasPriceMin && p.Price < priceMin {
			continue
		}
		if hasPriceMax && p.Price > priceMax {
			continue
		}
		if len(f.Types) > 0 && !contains(f.Types, p.Type) {
			continue
		}
		if len(f.Statuses) > 0 && !contains(f.Statuses, p.Status) {
			continue
		}
		if hasBedroomsMin && float64(p.Bedrooms) < bedroomsMin {
			continue
		}
		if hasBathroomsMin && float64(p.Bathrooms) < bathroomsMin {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Featured != result[j].Featured {
			return result[i].Featured
		}
		return result[i].Price > result[j].Price
	})

	return result
}

func matchesSearch(p models.Property, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Location), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

// parseConstraint interprets a raw filter value. Empty or non-numeric
// input imposes no constraint.
func parseConstraint(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
