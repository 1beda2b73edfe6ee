package domain

import (
	"testing"
)

func TestShapePresets_Catalog(t *testing.T) {
	presets := ShapePresets()
	if len(presets) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(presets))
	}

	// Order is part of the contract: the picker renders them as returned
	expected := []MapShape{MapShapeRectangle, MapShapeSquare, MapShapeVertical, MapShapeStadium}
	for i, id := range expected {
		if presets[i].ID != id {
			t.Errorf("preset %d: expected %q, got %q", i, id, presets[i].ID)
		}
	}

	for _, p := range presets {
		if p.DefaultWidth < MinMapSize || p.DefaultHeight < MinMapSize {
			t.Errorf("preset %q defaults below minimum map size", p.ID)
		}
		if p.Label == "" {
			t.Errorf("preset %q has no label", p.ID)
		}
		if p.BorderRadius == "" {
			t.Errorf("preset %q has no border radius", p.ID)
		}
	}
}

func TestShapePresets_CopyIsolation(t *testing.T) {
	first := ShapePresets()
	first[0].DefaultWidth = 1

	second := ShapePresets()
	if second[0].DefaultWidth == 1 {
		t.Error("mutating the returned slice leaked into the catalog")
	}
}

func TestPresetByID(t *testing.T) {
	p, ok := PresetByID(MapShapeStadium)
	if !ok {
		t.Fatal("expected stadium preset to exist")
	}
	if p.DefaultWidth != 800 || p.DefaultHeight != 500 {
		t.Errorf("expected stadium 800x500, got %dx%d", p.DefaultWidth, p.DefaultHeight)
	}
	if p.BorderRadius != "250px" {
		t.Errorf("expected stadium border radius 250px, got %q", p.BorderRadius)
	}

	if _, ok := PresetByID(MapShapeCircle); ok {
		t.Error("circle is a zone geometry tag, not a map preset")
	}
	if _, ok := PresetByID("unknown"); ok {
		t.Error("expected lookup miss for unknown shape")
	}
}

func TestMap_ApplyPreset(t *testing.T) {
	m := &Map{
		EventID: "event-1",
		Name:    "Arena Floor",
		Width:   1200,
		Height:  900,
		Config: MapConfig{
			Shape:        MapShapeStadium,
			BorderRadius: "250px",
		},
	}

	rect, _ := PresetByID(MapShapeRectangle)
	m.ApplyPreset(rect)

	if m.Width != 700 || m.Height != 500 {
		t.Errorf("expected 700x500 after rectangle preset, got %dx%d", m.Width, m.Height)
	}
	if m.Config.BorderRadius != "0px" {
		t.Errorf("expected border radius reset to 0px, got %q", m.Config.BorderRadius)
	}
	if m.Config.Shape != MapShapeRectangle {
		t.Errorf("expected shape rectangle, got %q", m.Config.Shape)
	}
	if m.Name != "Arena Floor" {
		t.Errorf("preset must preserve the name, got %q", m.Name)
	}
}

func TestMap_ApplyPreset_Idempotent(t *testing.T) {
	m := validMap()
	square, _ := PresetByID(MapShapeSquare)

	m.ApplyPreset(square)
	w, h, r := m.Width, m.Height, m.Config.BorderRadius

	m.ApplyPreset(square)
	if m.Width != w || m.Height != h || m.Config.BorderRadius != r {
		t.Errorf("second application changed the map: %dx%d %q", m.Width, m.Height, m.Config.BorderRadius)
	}
}
