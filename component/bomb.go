package component

// BombComponent tags a user-placed breakable for rendering
type BombComponent struct{}
