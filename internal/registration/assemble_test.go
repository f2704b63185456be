package registration

import (
	"testing"
)

func TestBuildRegistration_PlanMapping(t *testing.T) {
	d := completeDraft()
	d.PricingPlans = []PricingPlanDraft{
		{PlanType: "weekly", MealsPerDay: 2, Price: "1600"},
	}

	reg, err := BuildRegistration(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reg.PricingPlans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(reg.PricingPlans))
	}

	plan := reg.PricingPlans[0]
	if plan.Price != 1600 {
		t.Errorf("expected price 1600, got %v", plan.Price)
	}
	if plan.Description != "7 days lunch & dinner (2 meals/day)" {
		t.Errorf("unexpected description: %q", plan.Description)
	}
}

func TestPlanDescription(t *testing.T) {
	cases := []struct {
		planType    string
		mealsPerDay int
		want        string
	}{
		{"weekly", 1, "7 days lunch (1 meal/day)"},
		{"weekly", 2, "7 days lunch & dinner (2 meals/day)"},
		{"monthly", 1, "30 days lunch (1 meal/day)"},
		{"monthly", 2, "30 days lunch & dinner (2 meals/day)"},
	}

	for _, tc := range cases {
		if got := PlanDescription(tc.planType, tc.mealsPerDay); got != tc.want {
			t.Errorf("PlanDescription(%s, %d) = %q, want %q",
				tc.planType, tc.mealsPerDay, got, tc.want)
		}
	}
}

func TestBuildRegistration_SpecialtiesSplit(t *testing.T) {
	d := completeDraft()
	d.Specialties = " Dal Makhani , , Rajma Chawal,Kheer "

	reg, err := BuildRegistration(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Dal Makhani", "Rajma Chawal", "Kheer"}
	if len(reg.Specialties) != len(want) {
		t.Fatalf("expected %v, got %v", want, reg.Specialties)
	}
	for i := range want {
		if reg.Specialties[i] != want[i] {
			t.Errorf("expected %v, got %v", want, reg.Specialties)
		}
	}
}

func TestBuildRegistration_DropsIncompleteRows(t *testing.T) {
	d := completeDraft()
	d.TiffinItems = []TiffinItemDraft{
		{Name: "Thali", Price: "150", Contents: []string{"Rice", "  ", "Dal", ""}},
		{Name: "No Price"},
		{Price: "90"},
	}
	d.PricingPlans = []PricingPlanDraft{
		{PlanType: "weekly", MealsPerDay: 1, Price: "800"},
		{PlanType: "monthly", MealsPerDay: 2},
	}

	reg, err := BuildRegistration(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reg.TiffinItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(reg.TiffinItems))
	}
	if len(reg.TiffinItems[0].Contents) != 2 {
		t.Errorf("expected blank contents dropped, got %v", reg.TiffinItems[0].Contents)
	}
	if len(reg.PricingPlans) != 1 {
		t.Errorf("expected 1 plan, got %d", len(reg.PricingPlans))
	}
}

func TestBuildRegistration_ExperienceYearsParsed(t *testing.T) {
	d := completeDraft()
	d.ExperienceYears = "8"

	reg, err := BuildRegistration(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.ExperienceYears != 8 {
		t.Errorf("expected 8, got %d", reg.ExperienceYears)
	}

	d.ExperienceYears = "eight"
	if _, err := BuildRegistration(d); err == nil {
		t.Error("expected error for non-numeric experience years")
	}
}

func TestBuildRegistration_DiscountComputed(t *testing.T) {
	d := completeDraft()
	d.PricingPlans = []PricingPlanDraft{
		{PlanType: "monthly", MealsPerDay: 2, Price: "2700", OriginalPrice: "3000"},
	}

	reg, err := BuildRegistration(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := reg.PricingPlans[0]
	if plan.OriginalPrice == nil || *plan.OriginalPrice != 3000 {
		t.Fatalf("expected original price 3000, got %v", plan.OriginalPrice)
	}
	if plan.DiscountPercentage == nil || *plan.DiscountPercentage != 10 {
		t.Errorf("expected computed discount 10, got %v", plan.DiscountPercentage)
	}
}

func TestBuildRegistration_DiscountInvariantEnforced(t *testing.T) {
	d := completeDraft()

	// Price above original is rejected.
	d.PricingPlans = []PricingPlanDraft{
		{PlanType: "weekly", MealsPerDay: 1, Price: "900", OriginalPrice: "800"},
	}
	if _, err := BuildRegistration(d); err == nil {
		t.Error("expected error for price above original price")
	}

	// A stated discount far from the computed one is rejected.
	d.PricingPlans = []PricingPlanDraft{
		{PlanType: "weekly", MealsPerDay: 1, Price: "2700", OriginalPrice: "3000", DiscountPercentage: "50"},
	}
	if _, err := BuildRegistration(d); err == nil {
		t.Error("expected error for inconsistent discount percentage")
	}
}

func TestBuildRegistration_InvalidPrice(t *testing.T) {
	d := completeDraft()
	d.TiffinItems = []TiffinItemDraft{{Name: "Thali", Price: "abc"}}

	if _, err := BuildRegistration(d); err == nil {
		t.Error("expected error for non-numeric price")
	}
}
