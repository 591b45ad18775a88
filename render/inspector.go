package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/status"
)

// InspectorLines describes the world for the inspector overlay
// One line per entity (capped), followed by the status registry
func InspectorLines(w *engine.World, reg *status.Registry) []string {
	cs := engine.GetComponentStore(w)
	entities := w.Entities()

	lines := make([]string, 0, len(entities)+2)
	lines = append(lines, fmt.Sprintf("World Inspector - %d entities", len(entities)))

	for i, e := range entities {
		if i == parameter.InspectorMaxEntities {
			lines = append(lines, fmt.Sprintf("  ... %d more", len(entities)-i))
			break
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "  #%d", e)
		if name, ok := cs.Name.Get(e); ok {
			fmt.Fprintf(&sb, " %q", name.Name)
		}
		fmt.Fprintf(&sb, " [%s]", strings.Join(trimComponentNames(w.ComponentNames(e)), " "))
		if tr, ok := cs.Transform.Get(e); ok {
			fmt.Fprintf(&sb, " (%.1f, %.1f, %.0f)", tr.X, tr.Y, tr.Z)
		}
		lines = append(lines, sb.String())
	}

	if reg != nil {
		lines = append(lines, reg.Lines()...)
	}
	return lines
}

// trimComponentNames drops the Component suffix, "TransformComponent" reads as "Transform"
func trimComponentNames(names []string) []string {
	for i, n := range names {
		names[i] = strings.TrimSuffix(n, "Component")
	}
	return names
}
