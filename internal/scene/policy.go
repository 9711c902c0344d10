package scene

import (
	"fmt"

	"github.com/san-kum/phasebounce/internal/config"
)

// Policy selects what Render draws.
type Policy int

const (
	// SolidParticles draws the arena and every particle footprint.
	SolidParticles Policy = iota
	// PositionPhaseSpace plots each particle at its initial position,
	// colored by its current position.
	PositionPhaseSpace
	// VelocityPhaseSpace plots each particle at its initial position,
	// colored by its current velocity.
	VelocityPhaseSpace
)

func (p Policy) String() string {
	switch p {
	case SolidParticles:
		return config.PolicySolid
	case PositionPhaseSpace:
		return config.PolicyPosition
	case VelocityPhaseSpace:
		return config.PolicyVelocity
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func ParsePolicy(name string) (Policy, error) {
	switch name {
	case config.PolicySolid, "":
		return SolidParticles, nil
	case config.PolicyPosition:
		return PositionPhaseSpace, nil
	case config.PolicyVelocity:
		return VelocityPhaseSpace, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", config.ErrInvalidConfig, name)
}
