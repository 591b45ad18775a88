package engine

import "testing"

type testResource struct {
	Value int
}

func TestResourceStoreRoundTrip(t *testing.T) {
	rs := NewResourceStore()

	if _, ok := GetResource[*testResource](rs); ok {
		t.Fatal("Expected missing resource")
	}

	res := &testResource{Value: 3}
	AddResource(rs, res)

	got, ok := GetResource[*testResource](rs)
	if !ok || got != res {
		t.Fatalf("Expected the stored pointer, got %v (ok=%v)", got, ok)
	}

	got.Value = 4
	if MustGetResource[*testResource](rs).Value != 4 {
		t.Error("Expected mutation through cached pointer to be visible")
	}
}

func TestMustGetResourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing resource")
		}
	}()
	MustGetResource[*testResource](NewResourceStore())
}

func TestCoreResourcesInstalled(t *testing.T) {
	ctx, _ := NewTestGameContext()
	res := ctx.Resources()

	if res.Time == nil || res.Viewport == nil || res.State == nil ||
		res.Events == nil || res.Clock == nil || res.Audio == nil || res.Status == nil {
		t.Fatalf("Expected all core resources, got %+v", res)
	}
	if res.Viewport.Width != 1280 || res.Viewport.Height != 720 {
		t.Errorf("Expected 1280x720 viewport, got %dx%d", res.Viewport.Width, res.Viewport.Height)
	}
}
