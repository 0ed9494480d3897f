package console

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var embeddedStyles []byte

// Palette holds the colors used when highlighting is on.
type Palette struct {
	PlayerX string `yaml:"player-x"`
	PlayerO string `yaml:"player-o"`
	Title   string `yaml:"title"`
}

// DefaultPalette - returns the palette shipped with the binary.
func DefaultPalette() Palette {
	palette, err := ParsePalette(embeddedStyles, Palette{})
	if err != nil {
		panic(fmt.Errorf("embedded styles are broken: %w", err))
	}

	return palette
}

// LoadPalette - reads a palette file; colors missing from it keep their default.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read styles file: %w", err)
	}

	palette, err := ParsePalette(data, DefaultPalette())
	if err != nil {
		return Palette{}, fmt.Errorf("failed to parse styles file %s: %w", path, err)
	}

	return palette, nil
}

// ParsePalette - decodes YAML on top of base.
func ParsePalette(data []byte, base Palette) (Palette, error) {
	palette := base
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return Palette{}, fmt.Errorf("failed to unmarshal palette: %w", err)
	}

	return palette, nil
}
