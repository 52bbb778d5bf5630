package tilestead

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
map:
  width: 10
  anchor: top-left
picking:
  camera_policy: first_match
tints:
  hovered: [0.5, 0.5, 0.5, 1]
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Map.Width != 10 || cfg.Map.Height != 32 {
		t.Errorf("map = %dx%d, want 10x32", cfg.Map.Width, cfg.Map.Height)
	}
	if !cfg.Camera.ClampToMap || cfg.Camera.BoundsPadding != 256 {
		t.Errorf("camera clamp = %v pad %v, want default true 256", cfg.Camera.ClampToMap, cfg.Camera.BoundsPadding)
	}
	if cfg.Map.TileSize != 32 {
		t.Errorf("tile size = %v, want default 32", cfg.Map.TileSize)
	}
	if cfg.Picking.DefaultSize != [2]float64{192, 192} {
		t.Errorf("default size = %v, want [192 192]", cfg.Picking.DefaultSize)
	}
	if p, _ := parseCameraPolicy(cfg.Picking.CameraPolicy); p != CameraFirstMatch {
		t.Errorf("camera policy = %v, want first match", p)
	}
	tints := cfg.TintSet()
	if tints.Hovered != (Color{0.5, 0.5, 0.5, 1}) {
		t.Errorf("hovered tint = %v", tints.Hovered)
	}
	if tints.Pressed != DefaultTints().Pressed {
		t.Errorf("pressed tint = %v, want default", tints.Pressed)
	}
	if got := cfg.TilemapSpec().Layout.Anchor; got != AnchorTopLeft {
		t.Errorf("anchor = %v, want top-left", got)
	}
}

func TestParseConfigReportsEveryError(t *testing.T) {
	_, err := ParseConfig([]byte(`
map:
  width: -1
  tile_size: 0
  grid_type: hexagon
picking:
  camera_policy: nearest
camera:
  bounds_padding: -1
ticks_per_second: 0
buildings:
  - name: Hut
  - name: Hut
  - {}
`))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{
		"map size", "tile size", "hexagon", "nearest",
		"ticks per second", "bounds padding", `duplicate building kind "Hut"`, "without a name",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestParseConfigBadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("map: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilestead.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Test\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Title != "Test" || cfg.Window.Width != 1280 {
		t.Errorf("window = %+v", cfg.Window)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigBuildingKinds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buildings = append(cfg.Buildings, BuildingEntry{
		Name: "Watchtower",
		Size: &[2]float64{64, 128},
	})
	kinds := cfg.BuildingKinds()
	if len(kinds) != 2 {
		t.Fatalf("kinds = %d, want 2", len(kinds))
	}
	if kinds[0].Name != "Basic Chapel" || kinds[0].Size != nil {
		t.Errorf("kind 0 = %+v", kinds[0])
	}
	if kinds[1].Size == nil || *kinds[1].Size != (Vec2{64, 128}) {
		t.Errorf("kind 1 size = %v, want (64,128)", kinds[1].Size)
	}
	if kinds[1].Color != ColorWhite {
		t.Errorf("kind 1 color = %v, want white", kinds[1].Color)
	}
}

func TestConfigDiamondTilemapSpec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Map.GridType = "diamond"
	cfg.Map.Z = 2
	spec := cfg.TilemapSpec()
	if spec.Layout.Type != GridDiamond {
		t.Fatalf("grid type = %v, want diamond", spec.Layout.Type)
	}
	if spec.Layout.TileSize != (Vec2{64, 32}) || spec.Layout.GridSize != (Vec2{64, 32}) {
		t.Errorf("tile %v grid %v, want 64x32", spec.Layout.TileSize, spec.Layout.GridSize)
	}
	if spec.Transform.Z != 2 {
		t.Errorf("map Z = %v, want 2", spec.Transform.Z)
	}
}
