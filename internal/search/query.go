package search

// Sort keys
const (
	SortByRating    = "rating"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByReviews   = "reviews"
)

// FilterAll leaves a facet unconstrained.
const FilterAll = "all"

// Default price slider bounds (rupees per meal).
const (
	DefaultPriceMin = 50
	DefaultPriceMax = 300
)

// Query is an immutable description of one search. A zero PriceMax means the
// query places no price constraint at all.
type Query struct {
	FreeText     string
	Area         string
	Cuisine      string
	FoodType     string
	DeliveryType string
	PriceMin     float64
	PriceMax     float64
	SortKey      string
}

func DefaultQuery() Query {
	return Query{
		Area:         FilterAll,
		Cuisine:      FilterAll,
		FoodType:     FilterAll,
		DeliveryType: FilterAll,
		PriceMin:     DefaultPriceMin,
		PriceMax:     DefaultPriceMax,
		SortKey:      SortByRating,
	}
}

func (q Query) hasPriceConstraint() bool {
	return q.PriceMax > 0
}
