package provider

// Static option lists used to seed the registration form when the store has
// no listings yet. Once providers exist, distinct values from their records
// take over for the search facets.

var CuisineTypes = []string{
	"North Indian",
	"South Indian",
	"Punjabi",
	"Bengali",
	"Gujarati",
	"Maharashtrian",
	"Tamil",
	"Kerala",
	"Coastal",
	"Chinese",
	"Continental",
}

var DefaultAreas = []string{
	"Koramangala",
	"Indiranagar",
	"HSR Layout",
	"Whitefield",
	"Marathahalli",
	"BTM Layout",
	"Jayanagar",
	"Banashankari",
	"Electronic City",
	"Sarjapur",
}

var DeliveryTypeOptions = []string{
	"Delivery at Doorstep",
	"Pickup Only",
	"Both Delivery & Pickup",
}
