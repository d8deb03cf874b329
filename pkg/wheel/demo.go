package wheel

// DemoAppearance returns the look used by the interactive demo: a compact,
// tilted, extruded wheel whose disabled options keep readable labels.
func DemoAppearance() Appearance {
	return Appearance{
		WheelRadius:        90,
		RingThickness:      40,
		PerspectiveAngleX:  45,
		FontSizeScale:      1.5,
		BevelIntensity:     0.5,
		RingExtrusion:      35,
		DisabledOpacity:    0.5,
		DisabledSaturation: 0.25,
		DisableAffectsText: false,
	}
}

// DemoOptions returns the sample dialogue used by the demo.
func DemoOptions() []Option {
	return []Option{
		{Text: "Try to bribe him.", Color: "#2ecc71"},
		{Text: "Intimidate him.", Color: "#e74c3c"},
		{Text: "[Lie] Say you're lost.", Color: "#f1c40f"},
		{Text: "Ask for directions.", Color: "#3498db"},
		{Text: "Attack!", Color: "#c0392b", Disabled: true},
		{Text: "Remain silent.", Color: "#95a5a6"},
	}
}
