package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Card
		Border: "#5F87D7",
		Label:  "#D75FD7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}
