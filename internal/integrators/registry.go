package integrators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/phasebounce/internal/physics"
)

var ErrUnknownIntegrator = errors.New("integrators: unknown integrator")

const Default = "semi_implicit"

var registry = map[string]func() physics.Stepper{
	"semi_implicit": func() physics.Stepper { return NewSemiImplicitEuler() },
	"symplectic":    func() physics.Stepper { return NewSemiImplicitEuler() },
	"euler":         func() physics.Stepper { return NewEuler() },
	"explicit":      func() physics.Stepper { return NewEuler() },
	"verlet":        func() physics.Stepper { return NewVerlet() },
}

// New returns the stepper registered under name. The empty name selects
// [Default].
func New(name string) (physics.Stepper, error) {
	if name == "" {
		name = Default
	}
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownIntegrator, name, Names())
	}
	return ctor(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
