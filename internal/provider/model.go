package provider

import "time"

// Food types
const (
	FoodTypeVeg    = "veg"
	FoodTypeNonVeg = "non-veg"
	FoodTypeBoth   = "both"
)

// Listing statuses
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusSuspended = "suspended"
)

// PlaceholderImageURL is shown for providers with an empty gallery.
const PlaceholderImageURL = "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg"

type Provider struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Whatsapp          string    `json:"whatsapp,omitempty"`
	Address           string    `json:"address,omitempty"`
	Description       string    `json:"description"`
	FoodType          string    `json:"food_type"`
	ExperienceYears   int       `json:"experience_years,omitempty"`
	Specialties       []string  `json:"specialties,omitempty"`
	TimingLunch       string    `json:"timing_lunch,omitempty"`
	TimingDinner      string    `json:"timing_dinner,omitempty"`
	AllowSingleTiffin bool      `json:"allow_single_tiffin"`
	Rating            float64   `json:"rating"`
	ReviewCount       int       `json:"review_count"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`

	Areas         []string       `json:"areas"`
	Cuisines      []string       `json:"cuisines"`
	DeliveryTypes []string       `json:"delivery_types"`
	TiffinItems   []TiffinItem   `json:"tiffin_items"`
	PricingPlans  []PricingPlan  `json:"pricing_plans"`
	Testimonials  []Testimonial  `json:"testimonials"`
	Gallery       []GalleryImage `json:"gallery"`
	DeliverySlots []string       `json:"delivery_slots"`
}

type TiffinItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Contents    []string `json:"contents"`
	IsAvailable bool     `json:"is_available"`
	SortOrder   int      `json:"sort_order"`
}

type PricingPlan struct {
	ID                 int      `json:"id"`
	PlanType           string   `json:"plan_type"`
	MealsPerDay        int      `json:"meals_per_day"`
	Price              float64  `json:"price"`
	OriginalPrice      *float64 `json:"original_price,omitempty"`
	DiscountPercentage *int     `json:"discount_percentage,omitempty"`
	Description        string   `json:"description,omitempty"`
	IsActive           bool     `json:"is_active"`
	SortOrder          int      `json:"sort_order"`
}

type Testimonial struct {
	ID           int       `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

type GalleryImage struct {
	ID        int    `json:"id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// MinPrice returns the cheapest tiffin item price. ok is false when the
// provider has no items, in which case the listing has no defined price range.
func (p *Provider) MinPrice() (float64, bool) {
	if len(p.TiffinItems) == 0 {
		return 0, false
	}
	min := p.TiffinItems[0].Price
	for _, item := range p.TiffinItems[1:] {
		if item.Price < min {
			min = item.Price
		}
	}
	return min, true
}

// MaxPrice returns the most expensive tiffin item price.
func (p *Provider) MaxPrice() (float64, bool) {
	if len(p.TiffinItems) == 0 {
		return 0, false
	}
	max := p.TiffinItems[0].Price
	for _, item := range p.TiffinItems[1:] {
		if item.Price > max {
			max = item.Price
		}
	}
	return max, true
}

// PrimaryImage picks the gallery entry marked primary, falling back to the
// first entry, then to a placeholder.
func (p *Provider) PrimaryImage() string {
	for _, img := range p.Gallery {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(p.Gallery) > 0 {
		return p.Gallery[0].ImageURL
	}
	return PlaceholderImageURL
}

// Registration is the write shape consumed by the repository. It is the
// assembled output of the registration wizard, never a raw form draft.
type Registration struct {
	Name              string
	Email             string
	Phone             string
	Whatsapp          string
	Address           string
	Description       string
	FoodType          string
	ExperienceYears   int
	Specialties       []string
	TimingLunch       string
	TimingDinner      string
	AllowSingleTiffin bool

	Areas         []string
	Cuisines      []string
	DeliveryTypes []string
	TiffinItems   []RegistrationTiffinItem
	PricingPlans  []RegistrationPricingPlan
}

type RegistrationTiffinItem struct {
	Name        string
	Price       float64
	Description string
	Contents    []string
}

type RegistrationPricingPlan struct {
	PlanType           string
	MealsPerDay        int
	Price              float64
	OriginalPrice      *float64
	DiscountPercentage *int
	Description        string
}
