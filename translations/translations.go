package translations

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultLanguage = "en_US.UTF-8"

// read parses translations/${language}.yml into a flat map.
func read(all fs.FS, language string) (map[string]string, error) {
	t := make(map[string]string)
	file := fmt.Sprintf("translations/%v.yml", language)

	b, err := fs.ReadFile(all, file)
	if err != nil {
		return t, fmt.Errorf("failed to load file %v: %w", file, err)
	}

	err = yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal file %v: %w", file, err)
	}

	return t, nil
}

// Load returns the default language's strings with the requested language
// merged on top, so that anything not yet translated still shows English.
// A language without a translation file is not an error; the defaults are
// returned and the second return value is false.
func Load(all fs.FS, language string) (map[string]string, bool, error) {
	t, err := read(all, DefaultLanguage)
	if err != nil {
		return t, false, fmt.Errorf("failed to load default translations %v: %w", DefaultLanguage, err)
	}

	if language == "" || language == DefaultLanguage {
		return t, true, nil
	}

	u, err := read(all, language)
	if err != nil {
		// LANG=de_DE.UTF-8 may have no file while de_DE does
		base, _, _ := strings.Cut(language, ".")

		u, err = read(all, base)
		if err != nil {
			return t, false, nil
		}
	}

	maps.Copy(t, u)

	return t, true, nil
}

// LoadFromEnv is Load with the language taken from $LANG.
func LoadFromEnv(all fs.FS) (map[string]string, bool, error) {
	return Load(all, os.Getenv("LANG"))
}
