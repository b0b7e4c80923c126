package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks inputs rejected before any selection runs.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// InfeasibleError reports that no catalog entry satisfies a category's hard
// filter. It aborts the whole sizing run; a partially-equipped design is
// never returned.
type InfeasibleError struct {
	Category    string
	Requirement float64
	Unit        string
	Constraint  string
}

func (e *InfeasibleError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s selection infeasible: no catalog entry for %.3f %s under constraint %q",
			e.Category, e.Requirement, e.Unit, e.Constraint)
	}
	return fmt.Sprintf("%s selection infeasible: no catalog entry for %.3f %s",
		e.Category, e.Requirement, e.Unit)
}

// IsInfeasible reports whether err is a configuration-infeasible condition.
func IsInfeasible(err error) bool {
	var ie *InfeasibleError
	return errors.As(err, &ie)
}
