package search

import (
	"sort"
	"strings"

	"github.com/jilpatel7/Tiffin-Finder/internal/provider"
)

// Search filters and orders the given approved providers. It is a pure
// function: the input slice is never mutated and identical inputs always
// produce identical output.
func Search(records []*provider.Provider, q Query) []*provider.Provider {
	term := strings.ToLower(strings.TrimSpace(q.FreeText))

	results := make([]*provider.Provider, 0, len(records))
	for _, p := range records {
		if matches(p, term, q) {
			results = append(results, p)
		}
	}

	sortResults(results, q.SortKey)
	return results
}

// A record passes only if every active predicate passes. The free-text match
// is the one OR: name, any area, or any cuisine.
func matches(p *provider.Provider, term string, q Query) bool {
	if !matchesFreeText(p, term) {
		return false
	}
	if q.Area != "" && q.Area != FilterAll && !contains(p.Areas, q.Area) {
		return false
	}
	if q.Cuisine != "" && q.Cuisine != FilterAll && !contains(p.Cuisines, q.Cuisine) {
		return false
	}
	if q.DeliveryType != "" && q.DeliveryType != FilterAll && !contains(p.DeliveryTypes, q.DeliveryType) {
		return false
	}
	if !matchesFoodType(p, q.FoodType) {
		return false
	}
	if !matchesPriceRange(p, q) {
		return false
	}
	return true
}

func matchesFreeText(p *provider.Provider, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	for _, area := range p.Areas {
		if strings.Contains(strings.ToLower(area), term) {
			return true
		}
	}
	for _, cuisine := range p.Cuisines {
		if strings.Contains(strings.ToLower(cuisine), term) {
			return true
		}
	}
	return false
}

// Selecting "veg" also surfaces providers serving both; the reverse never
// holds.
func matchesFoodType(p *provider.Provider, foodType string) bool {
	if foodType == "" || foodType == FilterAll {
		return true
	}
	return p.FoodType == foodType || p.FoodType == provider.FoodTypeBoth
}

// A provider with no tiffin items has no price range and fails any price
// constraint, however wide. Priceless listings never show under a price
// filter.
func matchesPriceRange(p *provider.Provider, q Query) bool {
	if !q.hasPriceConstraint() {
		return true
	}
	min, ok := p.MinPrice()
	if !ok {
		return false
	}
	max, _ := p.MaxPrice()
	return min >= q.PriceMin && max <= q.PriceMax
}

func sortResults(results []*provider.Provider, sortKey string) {
	switch sortKey {
	case SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortByPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return minPriceOrHuge(results[i]) < minPriceOrHuge(results[j])
		})
	case SortByPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return maxPriceOrZero(results[i]) > maxPriceOrZero(results[j])
		})
	case SortByReviews:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ReviewCount > results[j].ReviewCount
		})
	default:
		// Unrecognized keys keep the input order.
	}
}

// Records without items sort after priced ones in either direction.
func minPriceOrHuge(p *provider.Provider) float64 {
	if min, ok := p.MinPrice(); ok {
		return min
	}
	return 1 << 30
}

func maxPriceOrZero(p *provider.Provider) float64 {
	if max, ok := p.MaxPrice(); ok {
		return max
	}
	return 0
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
