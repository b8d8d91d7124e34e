package engine

// System is a per-frame simulation step
type System interface {
	// Init resets session state, called on construction and world reset
	Init()

	// Name returns the registry name used in logs
	Name() string

	// Priority orders systems within a frame, lower runs first
	Priority() int

	// Update runs once per frame under the world update lock
	Update()
}
