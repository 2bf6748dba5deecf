package fundamental

type (
	// Preset is a VCV Rack module preset, as stored in a .vcvm file.
	Preset struct {
		Plugin  string        `json:"plugin" yaml:"plugin"`
		Model   string        `json:"model" yaml:"model"`
		Version string        `json:"version" yaml:"version"`
		Params  []Param       `json:"params" yaml:"params"`
		Data    QuantizerData `json:"data" yaml:"data"`
	}

	// Param is a module parameter value. The quantizer presets do not set any;
	// the list is kept in the file for the host.
	Param struct {
		ID    int     `json:"id" yaml:"id"`
		Value float64 `json:"value" yaml:"value"`
	}

	// QuantizerData is the module specific part of a Quantizer preset.
	QuantizerData struct {
		EnabledNotes Mask `json:"enabledNotes" yaml:"enabledNotes,flow"`
	}
)

const (
	PluginSlug    = "Fundamental"
	QuantizerSlug = "Quantizer"
	PluginVersion = "2.0.0"

	// PresetExt is the file extension of VCV Rack module presets.
	PresetExt = ".vcvm"
)

// NewQuantizerPreset returns a Quantizer preset enabling the notes of mask.
func NewQuantizerPreset(mask Mask) Preset {
	return Preset{
		Plugin:  PluginSlug,
		Model:   QuantizerSlug,
		Version: PluginVersion,
		Params:  []Param{},
		Data:    QuantizerData{EnabledNotes: mask},
	}
}
