package generator

import (
	"bytes"
	"encoding/json"
	"fmt"

	fundamental "github.com/VCVRack/Fundamental"
	"gopkg.in/yaml.v3"
)

// Format selects how presets are serialized.
type Format int

const (
	// JSON is the .vcvm format read by VCV Rack.
	JSON Format = iota
	// YAML is for inspecting the presets; Rack cannot load it.
	YAML
)

func (f Format) Ext() string {
	switch f {
	case YAML:
		return ".yml"
	default:
		return fundamental.PresetExt
	}
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Marshal serializes the preset indented by two spaces, with "\n" line
// endings and a trailing newline.
func (f Format) Marshal(p fundamental.Preset) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case JSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return nil, err
		}
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", f)
	}
	return buf.Bytes(), nil
}
