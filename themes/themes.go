package themes

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultTheme = "standard"

func parse(b []byte, name string) (map[string]string, error) {
	t := make(map[string]string)

	err := yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal theme %v: %w", name, err)
	}

	return t, nil
}

func readEmbedded(all fs.FS, theme string) (map[string]string, error) {
	file := fmt.Sprintf("themes/%v.yml", theme)

	b, err := fs.ReadFile(all, file)
	if err != nil {
		return nil, fmt.Errorf("failed to load file %v: %w", file, err)
	}

	return parse(b, file)
}

// Load returns the default theme's colors with the requested theme merged on
// top, so that keys a theme leaves undefined still render visibly.
//
// If theme ends in .yml or .yaml it is read from disk; otherwise it names one
// of the embedded themes/${theme}.yml files.
func Load(all fs.FS, theme string) (map[string]string, error) {
	t, err := readEmbedded(all, DefaultTheme)
	if err != nil {
		return t, fmt.Errorf("failed to load default theme %v: %w", DefaultTheme, err)
	}

	var u map[string]string

	switch {
	case theme == "" || theme == DefaultTheme:
		return t, nil
	case strings.HasSuffix(theme, ".yml") || strings.HasSuffix(theme, ".yaml"):
		b, err := os.ReadFile(theme)
		if err != nil {
			return t, fmt.Errorf("failed to read theme file %v: %w", theme, err)
		}

		u, err = parse(b, theme)
		if err != nil {
			return t, err
		}
	default:
		u, err = readEmbedded(all, theme)
		if err != nil {
			return t, fmt.Errorf("failed to load theme %v: %w", theme, err)
		}
	}

	maps.Copy(t, u)

	return t, nil
}
