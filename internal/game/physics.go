package game

// NullPhysicsSystem satisfies the subsystem contract while doing nothing.
// Movement integration lives in the logic system; a real physics system
// would slot in here without touching the loop.
type NullPhysicsSystem struct{}

// NewNullPhysicsSystem creates the placeholder physics system.
func NewNullPhysicsSystem() *NullPhysicsSystem {
	return &NullPhysicsSystem{}
}

func (*NullPhysicsSystem) Initialize() error { return nil }

func (*NullPhysicsSystem) Update(float64) {}

func (*NullPhysicsSystem) Destroy() {}
