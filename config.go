package stadium3d

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFormat is the encoding of a layout file.
type ConfigFormat int

const (
	FormatTOML ConfigFormat = iota
	FormatYAML
)

func (f ConfigFormat) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// ConfigFormatOf picks a ConfigFormat from a file's extension (.toml, .yaml or .yml).
func ConfigFormatOf(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, invalidf("unknown layout file extension %q", filepath.Ext(path))
}

// Config is the content of a layout file: the Layout, plus the textures to load for it.
type Config struct {
	Layout   Layout       `toml:"layout" yaml:"layout"`
	Textures TexturePaths `toml:"textures" yaml:"textures"`
}

// DefaultConfig returns the default Layout together with the default texture paths.
func DefaultConfig() Config {
	return Config{
		Layout:   DefaultLayout(),
		Textures: DefaultTexturePaths(),
	}
}

// LoadConfigFile reads a TOML or YAML layout file; see LoadConfigData.
func LoadConfigFile(path string) (Config, error) {

	format, err := ConfigFormatOf(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}

	return LoadConfigData(data, format)

}

// LoadConfigData decodes a layout file over DefaultConfig(), so a file only needs to name what it changes. A file
// that lists sections replaces the default sections entirely. The decoded Layout is validated before it's returned.
func LoadConfigData(data []byte, format ConfigFormat) (Config, error) {

	cfg := DefaultConfig()
	cfg.Layout.Sections = nil

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}

	if err != nil {
		return Config{}, fmt.Errorf("%w: decode %s layout: %w", ErrConfigurationInvalid, format, err)
	}

	if cfg.Layout.Sections == nil {
		cfg.Layout.Sections = DefaultLayout().Sections
	}

	if err := cfg.Layout.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil

}

// Encode writes the Config out in the given format.
func (cfg Config) Encode(format ConfigFormat) ([]byte, error) {

	buf := &bytes.Buffer{}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil

}

// SaveConfigFile writes the Config to the given path, in the format its extension names.
func SaveConfigFile(cfg Config, path string) error {

	format, err := ConfigFormatOf(path)
	if err != nil {
		return err
	}

	data, err := cfg.Encode(format)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)

}
