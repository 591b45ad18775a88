package component

// NameComponent labels an entity for the inspector
type NameComponent struct {
	Name string
}
