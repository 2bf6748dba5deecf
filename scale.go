package fundamental

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v2"
)

//go:generate go run ./cmd/quantizer-presets

//go:embed scales.yml
var scaleTable []byte

type (
	// Scale is one entry of the scale table: a display name and the scale
	// degrees relative to the root, e.g. "1-2-b3-4-5-b6-b7".
	Scale struct {
		Name    string `yaml:"name"`
		Degrees string `yaml:"degrees"`
	}
)

// DegreeSeparator separates the degree tokens in Scale.Degrees.
const DegreeSeparator = "-"

var ErrInvalidScale = errors.New("invalid scale")

// Tokens splits the degree string of the scale into degree tokens, in order.
func (s Scale) Tokens() []string {
	return strings.Split(s.Degrees, DegreeSeparator)
}

// Scales returns the built-in scale table, in table order. The returned slice
// is a fresh copy on every call.
func Scales() ([]Scale, error) {
	return ParseScales(scaleTable)
}

// ParseScales decodes a YAML sequence of {name, degrees} mappings and
// validates the result. Unknown keys are errors.
func ParseScales(data []byte) ([]Scale, error) {
	var scales []Scale
	if err := yaml.UnmarshalStrict(data, &scales); err != nil {
		return nil, fmt.Errorf("could not unmarshal the scale table: %w", err)
	}
	if err := ValidateScales(scales); err != nil {
		return nil, err
	}
	return scales, nil
}

// ValidateScales checks that every scale has a name usable as a file name
// and a non-empty degree string. Duplicate names are allowed; the preset
// index keeps their files apart.
func ValidateScales(scales []Scale) error {
	for i, s := range scales {
		switch {
		case s.Name == "":
			return fmt.Errorf("scale #%d has no name: %w", i, ErrInvalidScale)
		case !utf8.ValidString(s.Name):
			return fmt.Errorf("scale #%d name is not valid UTF-8: %w", i, ErrInvalidScale)
		case !norm.NFC.IsNormalString(s.Name):
			// NFD and NFC names would map to different files on some filesystems
			return fmt.Errorf("scale #%d name %q is not in NFC form: %w", i, s.Name, ErrInvalidScale)
		case strings.TrimSpace(s.Degrees) == "":
			return fmt.Errorf("scale %q has no degrees: %w", s.Name, ErrInvalidScale)
		}
	}
	return nil
}
