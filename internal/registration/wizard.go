package registration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jilpatel7/Tiffin-Finder/internal/provider"
)

// Step is one screen of the provider registration wizard. Steps are strictly
// linear; the only way past a gated step is Advance with its required fields
// filled in.
type Step int

const (
	StepWelcome Step = iota
	StepPersonal
	StepLocation
	StepBusiness
	StepMenu
	StepPlans
	StepTiming
	StepComplete
)

var stepNames = map[Step]string{
	StepWelcome:  "welcome",
	StepPersonal: "personal",
	StepLocation: "location",
	StepBusiness: "business",
	StepMenu:     "menu",
	StepPlans:    "plans",
	StepTiming:   "timing",
	StepComplete: "complete",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func ParseStep(name string) (Step, error) {
	for step, n := range stepNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return step, nil
		}
	}
	return 0, fmt.Errorf("unknown step %q", name)
}

// ValidationError names the fields still missing at a wizard gate. It is a
// user-facing, recoverable condition, never a system fault.
type ValidationError struct {
	Step          Step
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"step %s incomplete: missing %s",
		e.Step,
		strings.Join(e.MissingFields, ", "),
	)
}

var ErrSubmitRequired = errors.New("wizard is on its final step, use Submit")

type Wizard struct {
	step Step
}

func NewWizard() *Wizard {
	return &Wizard{step: StepWelcome}
}

func (w *Wizard) Step() Step {
	return w.step
}

// Advance validates the current step's gate and moves forward exactly one
// step. On a validation failure the wizard stays put.
func (w *Wizard) Advance(d *Draft) (Step, error) {
	if w.step >= StepTiming {
		return w.step, ErrSubmitRequired
	}
	if verr := ValidateStep(w.step, d); verr != nil {
		return w.step, verr
	}
	w.step++
	return w.step, nil
}

// Retreat always succeeds above Welcome. Going backward never re-validates.
func (w *Wizard) Retreat() Step {
	if w.step > StepWelcome {
		w.step--
	}
	return w.step
}

// Submit re-runs every gate as a final guard, then assembles the write shape.
// A persistence failure afterwards leaves the wizard on Timing so the draft
// survives for a retry; only a successful assembly reaches Complete.
func (w *Wizard) Submit(d *Draft) (*provider.Registration, error) {
	if verr := FinalGuard(d); verr != nil {
		return nil, verr
	}

	reg, err := BuildRegistration(d)
	if err != nil {
		return nil, err
	}

	w.step = StepComplete
	return reg, nil
}

// ValidateStep checks the gate guarding the transition out of the given step.
func ValidateStep(step Step, d *Draft) *ValidationError {
	var missing []string

	switch step {
	case StepPersonal:
		if d.Name == "" {
			missing = append(missing, "name")
		}
		if d.Email == "" {
			missing = append(missing, "email")
		}
		if d.Phone == "" {
			missing = append(missing, "phone")
		}

	case StepLocation:
		if len(d.SelectedAreas) == 0 {
			missing = append(missing, "selected_areas")
		}

	case StepBusiness:
		if d.FoodType == "" {
			missing = append(missing, "food_type")
		}
		if len(d.Cuisines) == 0 {
			missing = append(missing, "cuisines")
		}

	case StepMenu:
		if !hasCompleteTiffinItem(d) {
			missing = append(missing, "tiffin_items")
		}

	case StepPlans:
		if !hasCompletePricingPlan(d) {
			missing = append(missing, "pricing_plans")
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Step: step, MissingFields: missing}
	}
	return nil
}

// FinalGuard re-validates every gated step, independent of how the caller
// walked the wizard.
func FinalGuard(d *Draft) *ValidationError {
	for step := StepPersonal; step <= StepPlans; step++ {
		if verr := ValidateStep(step, d); verr != nil {
			return verr
		}
	}
	return nil
}

func hasCompleteTiffinItem(d *Draft) bool {
	for _, item := range d.TiffinItems {
		if item.Name != "" && item.Price != "" {
			return true
		}
	}
	return false
}

func hasCompletePricingPlan(d *Draft) bool {
	for _, plan := range d.PricingPlans {
		if plan.Price != "" {
			return true
		}
	}
	return false
}
