package component

import "testing"

func TestCameraAutoMinScale(t *testing.T) {
	cam := CameraComponent{MinWidth: 160, MinHeight: 90}

	tests := []struct {
		name      string
		viewW     float64
		viewH     float64
		wantScale float64
	}{
		{"exact 16:9 window", 1280, 720, 8},
		{"wide window limited by height", 1600, 720, 8},
		{"tall window limited by width", 1280, 1000, 8},
		{"terminal half-block grid", 160, 90, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cam.Scale(tt.viewW, tt.viewH)
			if got != tt.wantScale {
				t.Errorf("Scale(%v, %v) = %v, want %v", tt.viewW, tt.viewH, got, tt.wantScale)
			}
			if tt.viewW/got < cam.MinWidth || tt.viewH/got < cam.MinHeight {
				t.Errorf("Visible area %vx%v smaller than minimum", tt.viewW/got, tt.viewH/got)
			}
		})
	}
}

func TestCameraZeroMinimumFallsBack(t *testing.T) {
	if s := (CameraComponent{}).Scale(640, 480); s != 1 {
		t.Errorf("Expected unit scale for unset camera, got %v", s)
	}
}

func TestNewCloudDefaultSpeed(t *testing.T) {
	if NewCloud().Speed != 10 {
		t.Errorf("Expected default speed 10, got %v", NewCloud().Speed)
	}
}
