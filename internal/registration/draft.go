package registration

// Draft mirrors the registration form: numeric fields stay strings until
// submission assembly, and rows may be half-filled while the wizard is open.
type Draft struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Whatsapp          string `json:"whatsapp"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	FoodType          string `json:"food_type"`
	ExperienceYears   string `json:"experience_years"`
	Specialties       string `json:"specialties"`
	TimingLunch       string `json:"timing_lunch"`
	TimingDinner      string `json:"timing_dinner"`
	AllowSingleTiffin bool   `json:"allow_single_tiffin"`

	SelectedAreas []string           `json:"selected_areas"`
	Cuisines      []string           `json:"cuisines"`
	DeliveryTypes []string           `json:"delivery_types"`
	TiffinItems   []TiffinItemDraft  `json:"tiffin_items"`
	PricingPlans  []PricingPlanDraft `json:"pricing_plans"`
}

type TiffinItemDraft struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Contents    []string `json:"contents"`
}

type PricingPlanDraft struct {
	PlanType           string `json:"plan_type"`
	MealsPerDay        int    `json:"meals_per_day"`
	Price              string `json:"price"`
	OriginalPrice      string `json:"original_price"`
	DiscountPercentage string `json:"discount_percentage"`
}
