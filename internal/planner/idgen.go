package planner

import (
	"github.com/google/uuid"
)

// IDGenerator mints plan identifiers. The engine takes it as a dependency so
// tests can substitute a fixed generator and assert whole plans.
type IDGenerator interface {
	PlanID() string
}

// UUIDGenerator is the production IDGenerator.
type UUIDGenerator struct{}

// PlanID returns a "plan_" prefixed random identifier.
func (UUIDGenerator) PlanID() string {
	return "plan_" + uuid.NewString()
}
