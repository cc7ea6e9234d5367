package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (card titles, headings)
	Accent string `yaml:"accent"`

	// Card colors
	Border string `yaml:"border"`
	Label  string `yaml:"label"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text, e.g. unresolved references
	Normal string `yaml:"normal"`

	// Status colors
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// Presets lists the built-in scheme names
func Presets() []string {
	return []string{"default", "monochrome"}
}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default scheme.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Border, preset.Border)
	fill(&c.Label, preset.Label)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Success, preset.Success)
	fill(&c.Warning, preset.Warning)
	fill(&c.Error, preset.Error)
}
