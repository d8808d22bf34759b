package actor

import "github.com/automoto/spritesandbox/assets/animations"

// motion is the input to state derivation for one tick.
type motion struct {
	grounded bool
	crouch   bool
	fast     bool
	vx       float64
}

type stateRule struct {
	state animations.Name
	when  func(m motion) bool
}

// stateTable is checked top to bottom; the first matching rule wins.
var stateTable = []stateRule{
	{animations.Jump, func(m motion) bool { return !m.grounded }},
	{animations.Crouch, func(m motion) bool { return m.crouch }},
	{animations.Run, func(m motion) bool { return m.vx != 0 && m.fast }},
	{animations.Walk, func(m motion) bool { return m.vx != 0 }},
	{animations.Idle, func(motion) bool { return true }},
}

// deriveState picks the motion state, falling back to idle when the catalog
// has no animation for it.
func deriveState(m motion, catalog animations.Catalog) animations.Name {
	for _, rule := range stateTable {
		if !rule.when(m) {
			continue
		}
		if _, ok := catalog[rule.state]; !ok {
			return animations.Idle
		}
		return rule.state
	}
	return animations.Idle
}
