package geometry

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name      string
		mapWidth  float64
		mapHeight float64
		viewport  float64
		expected  float64
	}{
		{
			name:      "landscape map below denominator floor",
			mapWidth:  700,
			mapHeight: 500,
			viewport:  400,
			expected:  0.5,
		},
		{
			name:      "square map at denominator floor",
			mapWidth:  800,
			mapHeight: 800,
			viewport:  400,
			expected:  0.5,
		},
		{
			name:      "large map divides by its longest edge",
			mapWidth:  1600,
			mapHeight: 1000,
			viewport:  400,
			expected:  0.25,
		},
		{
			name:      "portrait map divides by height",
			mapWidth:  500,
			mapHeight: 1000,
			viewport:  400,
			expected:  0.4,
		},
		{
			name:      "tiny map clamped to denominator floor",
			mapWidth:  300,
			mapHeight: 300,
			viewport:  400,
			expected:  0.5,
		},
		{
			name:      "maximum map size",
			mapWidth:  3000,
			mapHeight: 3000,
			viewport:  400,
			expected:  400.0 / 3000.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(tt.mapWidth, tt.mapHeight, tt.viewport)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Scale(%v, %v, %v) = %v, want %v", tt.mapWidth, tt.mapHeight, tt.viewport, got, tt.expected)
			}
		})
	}
}

func TestScale_AlwaysPositive(t *testing.T) {
	for _, dim := range []float64{1, 300, 799, 800, 801, 3000, 10000} {
		got := Scale(dim, dim, 400)
		if got <= 0 {
			t.Errorf("Scale(%v, %v, 400) = %v, want positive", dim, dim, got)
		}
	}
}

func TestScale_MonotonicallyDecreasing(t *testing.T) {
	// Growing the longest edge past the denominator floor must never
	// increase the scale.
	prev := Scale(800, 500, 400)
	for w := 810.0; w <= 3000; w += 10 {
		got := Scale(w, 500, 400)
		if got > prev {
			t.Fatalf("Scale increased from %v to %v at width %v", prev, got, w)
		}
		prev = got
	}
}

func TestScale_SmallMapsShareScale(t *testing.T) {
	// Every map whose longest edge is under the floor renders at the
	// same scale; small maps never blow up to fill the viewport.
	base := Scale(300, 300, 400)
	for _, dims := range [][2]float64{{400, 300}, {500, 500}, {700, 500}, {799, 799}} {
		got := Scale(dims[0], dims[1], 400)
		if got != base {
			t.Errorf("Scale(%v, %v, 400) = %v, want %v", dims[0], dims[1], got, base)
		}
	}
}

func TestFit(t *testing.T) {
	scale, w, h := Fit(700, 500, 400)
	if scale != 0.5 {
		t.Errorf("expected scale 0.5, got %v", scale)
	}
	if w != 350 {
		t.Errorf("expected display width 350, got %v", w)
	}
	if h != 250 {
		t.Errorf("expected display height 250, got %v", h)
	}

	// The fitted dimensions never exceed the viewport
	for _, dims := range [][2]float64{{300, 300}, {800, 800}, {3000, 1500}, {1000, 3000}} {
		_, w, h := Fit(dims[0], dims[1], 400)
		if w > 400+1e-9 || h > 400+1e-9 {
			t.Errorf("Fit(%v, %v, 400) = %vx%v, exceeds viewport", dims[0], dims[1], w, h)
		}
	}
}
