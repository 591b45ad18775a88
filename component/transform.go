package component

// TransformComponent positions an entity in world units
// Origin is the scene center, +Y points up, higher Z draws on top
type TransformComponent struct {
	X, Y, Z float64
}

// Size is a width/height pair in world units
type Size struct {
	W, H float64
}
