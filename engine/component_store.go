package engine

import "github.com/lixenwraith/poly/component"

// ComponentStore provides cached pointers to typed component stores
// Initialized once per system to eliminate runtime map lookups
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Sprite    *Store[component.SpriteComponent]
	Name      *Store[component.NameComponent]
	Cloud     *Store[component.CloudComponent]
	Camera    *Store[component.CameraComponent]

	UINode *Store[component.UINodeComponent]
	UIText *Store[component.UITextComponent]
	Parent *Store[component.ParentComponent]
}

// GetComponentStore populates ComponentStore from world
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Transform: GetStore[component.TransformComponent](w),
		Sprite:    GetStore[component.SpriteComponent](w),
		Name:      GetStore[component.NameComponent](w),
		Cloud:     GetStore[component.CloudComponent](w),
		Camera:    GetStore[component.CameraComponent](w),

		UINode: GetStore[component.UINodeComponent](w),
		UIText: GetStore[component.UITextComponent](w),
		Parent: GetStore[component.ParentComponent](w),
	}
}
