package stadium3d

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLayoutTOML = `
[layout]
name = "single-stand"
step_segments = 12
end_quads = true

[layout.seating]
steps = 6
min_height = 0.05
max_height = 0.5

[[layout.sections]]
name = "stand"
start = 30
end = 150
role = "seating-standard"

[[layout.sections]]
name = "back"
start = 150
end = 390
role = "connector"

[textures]
terrace = "stone.png"
`

const testLayoutYAML = `
layout:
  name: two-stands
  wall_lean: 0.1
  sections:
    - name: north
      start: 0
      end: 180
      role: seating-standard
    - name: south
      start: 180
      end: 360
      role: seating-special
      segments: 8
textures:
  wall: brick.png
`

func TestLoadConfigTOML(t *testing.T) {

	// The connector ends past 360.
	_, err := LoadConfigData([]byte(testLayoutTOML), FormatTOML)
	require.ErrorIs(t, err, ErrConfigurationInvalid)

	fixed := strings.Replace(testLayoutTOML, "end = 390", "end = 360", 1)

	cfg, err := LoadConfigData([]byte(fixed), FormatTOML)
	require.NoError(t, err)

	defaults := DefaultConfig()

	assert.Equal(t, "single-stand", cfg.Layout.Name)
	assert.Equal(t, 12, cfg.Layout.StepSegments)
	assert.True(t, cfg.Layout.EndQuads)
	assert.Equal(t, 6, cfg.Layout.Seating.StepCount)
	assert.Equal(t, 0.5, cfg.Layout.Seating.MaxHeight)

	// Anything the file doesn't mention keeps its default.
	assert.Equal(t, defaults.Layout.Seating.Inner, cfg.Layout.Seating.Inner)
	assert.Equal(t, defaults.Layout.WallSegments, cfg.Layout.WallSegments)
	assert.Equal(t, defaults.Layout.Ground, cfg.Layout.Ground)
	assert.Equal(t, defaults.Textures.Ground, cfg.Textures.Ground)
	assert.Equal(t, "stone.png", cfg.Textures.Terrace)

	// Listing sections replaces the defaults.
	require.Len(t, cfg.Layout.Sections, 2)
	assert.Equal(t, SectionConfig{Name: "stand", Start: 30, End: 150, Role: RoleSeatingStandard}, cfg.Layout.Sections[0])
	assert.Equal(t, RoleConnector, cfg.Layout.Sections[1].Role)

	mesh, err := Build(cfg.Layout)
	require.NoError(t, err)
	// Six steps with end quads, and caps at 30 and 150.
	assert.Len(t, mesh.PrimitivesBySurface(SurfaceTerrace), 6*4)
	assert.Len(t, mesh.PrimitivesBySurface(SurfaceWall), 2+2)

}

func TestLoadConfigYAML(t *testing.T) {

	cfg, err := LoadConfigData([]byte(testLayoutYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "two-stands", cfg.Layout.Name)
	assert.Equal(t, 0.1, cfg.Layout.WallLean)
	assert.Equal(t, "brick.png", cfg.Textures.Wall)
	assert.Equal(t, DefaultTexturePaths().Terrace, cfg.Textures.Terrace)

	require.Len(t, cfg.Layout.Sections, 2)
	assert.Equal(t, RoleSeatingSpecial, cfg.Layout.Sections[1].Role)
	assert.Equal(t, 8, cfg.Layout.Sections[1].Segments)

	table := NewJunctionTable(cfg.Layout.AngularSections())
	assert.Equal(t, []float64{180}, table.CapAngles())

}

func TestLoadConfigDefaultsSections(t *testing.T) {

	cfg, err := LoadConfigData([]byte("[layout]\nname = \"renamed\"\n"), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "renamed", cfg.Layout.Name)
	assert.Equal(t, DefaultLayout().Sections, cfg.Layout.Sections)

}

func TestLoadConfigErrors(t *testing.T) {

	_, err := LoadConfigData([]byte("layout: [this is not a mapping"), FormatYAML)
	assert.ErrorIs(t, err, ErrConfigurationInvalid)

	_, err = LoadConfigData([]byte("[[layout.sections]]\nname = \"x\"\nstart = 0\nend = 10\nrole = \"grandstand\"\n"), FormatTOML)
	assert.ErrorIs(t, err, ErrConfigurationInvalid)

	_, err = LoadConfigData([]byte("[layout.seating]\nmin_height = nan\n"), FormatTOML)
	assert.ErrorIs(t, err, ErrConfigurationInvalid)

	_, err = LoadConfigData([]byte("layout:\n  seating:\n    outer: {rx: .inf, ry: 0.95}\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrConfigurationInvalid)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrResourceUnavailable)

	_, err = LoadConfigFile("layout.json")
	assert.ErrorIs(t, err, ErrConfigurationInvalid)

}

func TestConfigRoundTrip(t *testing.T) {

	dir := t.TempDir()

	for _, name := range []string{"stadium.toml", "stadium.yaml", "stadium.yml"} {

		path := filepath.Join(dir, name)
		require.NoError(t, SaveConfigFile(DefaultConfig(), path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "seating-special", name)

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, DefaultConfig(), cfg, name)

	}

}
