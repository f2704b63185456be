package registration

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jilpatel7/Tiffin-Finder/internal/provider"
)

// BuildRegistration maps a validated draft into the repository's write shape:
// numeric strings become numbers, incomplete rows are dropped, and each
// pricing plan gets its display description synthesized.
func BuildRegistration(d *Draft) (*provider.Registration, error) {
	reg := &provider.Registration{
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		Whatsapp:          d.Whatsapp,
		Address:           d.Address,
		Description:       d.Description,
		FoodType:          d.FoodType,
		Specialties:       splitSpecialties(d.Specialties),
		TimingLunch:       d.TimingLunch,
		TimingDinner:      d.TimingDinner,
		AllowSingleTiffin: d.AllowSingleTiffin,
		Areas:             d.SelectedAreas,
		Cuisines:          d.Cuisines,
		DeliveryTypes:     d.DeliveryTypes,
	}

	if d.ExperienceYears != "" {
		years, err := strconv.Atoi(d.ExperienceYears)
		if err != nil {
			return nil, fmt.Errorf("invalid experience years %q", d.ExperienceYears)
		}
		reg.ExperienceYears = years
	}

	for _, item := range d.TiffinItems {
		// Only rows with both name and price survive.
		if item.Name == "" || item.Price == "" {
			continue
		}

		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tiffin item price %q", item.Price)
		}

		contents := make([]string, 0, len(item.Contents))
		for _, content := range item.Contents {
			if strings.TrimSpace(content) != "" {
				contents = append(contents, content)
			}
		}

		reg.TiffinItems = append(reg.TiffinItems, provider.RegistrationTiffinItem{
			Name:        item.Name,
			Price:       price,
			Description: item.Description,
			Contents:    contents,
		})
	}

	for _, plan := range d.PricingPlans {
		if plan.Price == "" {
			continue
		}

		built, err := buildPricingPlan(plan)
		if err != nil {
			return nil, err
		}
		reg.PricingPlans = append(reg.PricingPlans, *built)
	}

	return reg, nil
}

func buildPricingPlan(plan PricingPlanDraft) (*provider.RegistrationPricingPlan, error) {
	price, err := strconv.ParseFloat(plan.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid plan price %q", plan.Price)
	}

	built := &provider.RegistrationPricingPlan{
		PlanType:    plan.PlanType,
		MealsPerDay: plan.MealsPerDay,
		Price:       price,
		Description: PlanDescription(plan.PlanType, plan.MealsPerDay),
	}

	if plan.OriginalPrice != "" {
		original, err := strconv.ParseFloat(plan.OriginalPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid original price %q", plan.OriginalPrice)
		}
		if price > original {
			return nil, fmt.Errorf("plan price %.0f exceeds original price %.0f", price, original)
		}
		built.OriginalPrice = &original

		discount := int(math.Round((original - price) / original * 100))
		if plan.DiscountPercentage != "" {
			given, err := strconv.Atoi(plan.DiscountPercentage)
			if err != nil {
				return nil, fmt.Errorf("invalid discount percentage %q", plan.DiscountPercentage)
			}
			if given < discount-1 || given > discount+1 {
				return nil, fmt.Errorf(
					"discount percentage %d does not match prices (expected %d)",
					given, discount,
				)
			}
			discount = given
		}
		built.DiscountPercentage = &discount
	}

	return built, nil
}

// PlanDescription renders the fixed display template, e.g.
// "7 days lunch (1 meal/day)" or "30 days lunch & dinner (2 meals/day)".
func PlanDescription(planType string, mealsPerDay int) string {
	days := "7"
	if planType == "monthly" {
		days = "30"
	}

	meals := "lunch"
	if mealsPerDay > 1 {
		meals = "lunch & dinner"
	}

	plural := ""
	if mealsPerDay > 1 {
		plural = "s"
	}

	return fmt.Sprintf("%s days %s (%d meal%s/day)", days, meals, mealsPerDay, plural)
}

func splitSpecialties(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	specialties := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			specialties = append(specialties, trimmed)
		}
	}
	return specialties
}
