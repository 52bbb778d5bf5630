package tilestead

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a scene and its host window. Zero fields in a
// loaded file keep their DefaultConfig values.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Map       MapConfig       `yaml:"map"`
	Picking   PickingConfig   `yaml:"picking"`
	Camera    CameraConfig    `yaml:"camera"`
	Tints     TintConfig      `yaml:"tints"`
	Buildings []BuildingEntry `yaml:"buildings"`
	// TicksPerSecond is the fixed simulation rate.
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// MapConfig describes the generated tilemap.
type MapConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	TileSize     float64 `yaml:"tile_size"`
	GridType     string  `yaml:"grid_type"`
	Anchor       string  `yaml:"anchor"`
	TextureCount int     `yaml:"texture_count"`
	Seed         uint64  `yaml:"seed"`
	Z            float64 `yaml:"z"`
}

// PickingConfig holds hit-testing settings.
type PickingConfig struct {
	// DefaultSize is the bounding size of buildings that declare none.
	DefaultSize [2]float64 `yaml:"default_size"`
	// CameraPolicy is "highest_order" or "first_match".
	CameraPolicy string `yaml:"camera_policy"`
}

// CameraConfig holds the camera rig settings.
type CameraConfig struct {
	PanSpeed       float64 `yaml:"pan_speed"` // screen pixels per second
	ZoomStep       float64 `yaml:"zoom_step"` // factor per wheel notch
	MinZoom        float64 `yaml:"min_zoom"`
	MaxZoom        float64 `yaml:"max_zoom"`
	ScrollDuration float32 `yaml:"scroll_duration"` // seconds
	// ClampToMap keeps the view over the first tilemap, grown by
	// BoundsPadding world units on every side.
	ClampToMap    bool    `yaml:"clamp_to_map"`
	BoundsPadding float64 `yaml:"bounds_padding"`
}

// TintConfig holds interaction tints as RGBA quadruples.
type TintConfig struct {
	Pressed [4]float64 `yaml:"pressed"`
	Hovered [4]float64 `yaml:"hovered"`
	Neutral [4]float64 `yaml:"neutral"`
}

// BuildingEntry is one placeable kind.
type BuildingEntry struct {
	Name  string      `yaml:"name"`
	Size  *[2]float64 `yaml:"size,omitempty"`
	Color *[4]float64 `yaml:"color,omitempty"`
}

// DefaultConfig returns the built-in configuration: a 32x32 square map of
// 32px tiles centered on the origin, and one building kind.
func DefaultConfig() Config {
	t := DefaultTints()
	return Config{
		Window: WindowConfig{Title: "Tilestead", Width: 1280, Height: 720},
		Map: MapConfig{
			Width: 32, Height: 32, TileSize: 32,
			GridType: "square", Anchor: "center",
			TextureCount: 4, Seed: 1,
		},
		Picking: PickingConfig{
			DefaultSize:  [2]float64{DefaultBuildingSize.X, DefaultBuildingSize.Y},
			CameraPolicy: "highest_order",
		},
		Camera: CameraConfig{
			PanSpeed: 600, ZoomStep: 1.1, MinZoom: 0.25, MaxZoom: 4,
			ScrollDuration: 0.4,
			ClampToMap: true, BoundsPadding: 256,
		},
		Tints: TintConfig{
			Pressed: colorQuad(t.Pressed),
			Hovered: colorQuad(t.Hovered),
			Neutral: colorQuad(t.Neutral),
		},
		Buildings: []BuildingEntry{
			{Name: "Basic Chapel", Color: &[4]float64{0.85, 0.8, 0.7, 1}},
		},
		TicksPerSecond: 60,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Map.Width, c.Map.Height))
	}
	if c.Map.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size %v must be positive", c.Map.TileSize))
	}
	if _, err := ParseGridType(c.Map.GridType); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseAnchor(c.Map.Anchor); err != nil {
		errs = append(errs, err)
	}
	if c.Picking.DefaultSize[0] <= 0 || c.Picking.DefaultSize[1] <= 0 {
		errs = append(errs, fmt.Errorf("default building size %v must be positive", c.Picking.DefaultSize))
	}
	if _, err := parseCameraPolicy(c.Picking.CameraPolicy); err != nil {
		errs = append(errs, err)
	}
	if c.Camera.BoundsPadding < 0 {
		errs = append(errs, fmt.Errorf("camera bounds padding %v must not be negative", c.Camera.BoundsPadding))
	}
	if c.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ticks per second %d must be positive", c.TicksPerSecond))
	}
	seen := make(map[string]bool)
	for _, b := range c.Buildings {
		if b.Name == "" {
			errs = append(errs, errors.New("building kind without a name"))
			continue
		}
		if seen[b.Name] {
			errs = append(errs, fmt.Errorf("duplicate building kind %q", b.Name))
		}
		seen[b.Name] = true
	}
	return errors.Join(errs...)
}

// TilemapSpec converts the map settings. Call only on a validated Config.
func (c Config) TilemapSpec() TilemapSpec {
	gt, _ := ParseGridType(c.Map.GridType)
	anchor, _ := ParseAnchor(c.Map.Anchor)
	tile := Vec2{c.Map.TileSize, c.Map.TileSize}
	grid := tile
	if gt == GridDiamond {
		// Isometric tiles are twice as wide as they are tall.
		tile = Vec2{c.Map.TileSize * 2, c.Map.TileSize}
		grid = tile
	}
	return TilemapSpec{
		Layout: GridLayout{
			Size:     MapSize{W: c.Map.Width, H: c.Map.Height},
			GridSize: grid,
			TileSize: tile,
			Type:     gt,
			Anchor:   anchor,
		},
		Transform:    NewTransform(0, 0, c.Map.Z),
		TextureCount: c.Map.TextureCount,
		Seed:         c.Map.Seed,
	}
}

// BuildingKinds converts the building entries in order.
func (c Config) BuildingKinds() []BuildingKind {
	kinds := make([]BuildingKind, 0, len(c.Buildings))
	for _, b := range c.Buildings {
		k := BuildingKind{Name: b.Name, Color: ColorWhite}
		if b.Size != nil {
			k.Size = &Vec2{b.Size[0], b.Size[1]}
		}
		if b.Color != nil {
			k.Color = quadColor(*b.Color)
		}
		kinds = append(kinds, k)
	}
	return kinds
}

// TintSet converts the tint settings.
func (c Config) TintSet() Tints {
	return Tints{
		Pressed: quadColor(c.Tints.Pressed),
		Hovered: quadColor(c.Tints.Hovered),
		Neutral: quadColor(c.Tints.Neutral),
	}
}

func parseCameraPolicy(name string) (CameraPolicy, error) {
	switch name {
	case "", "highest_order":
		return CameraHighestOrder, nil
	case "first_match":
		return CameraFirstMatch, nil
	}
	return CameraHighestOrder, fmt.Errorf("unknown camera policy %q", name)
}

func colorQuad(c Color) [4]float64 { return [4]float64{c.R, c.G, c.B, c.A} }

func quadColor(q [4]float64) Color { return Color{q[0], q[1], q[2], q[3]} }
