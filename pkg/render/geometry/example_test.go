package geometry_test

import (
	"fmt"

	"github.com/matzehuels/dialoguewheel/pkg/render/geometry"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

func ExampleBuild() {
	opts := []wheel.Option{
		{Text: "Bribe", Color: "#2ecc71"},
		{Text: "Attack", Color: "#c0392b", Disabled: true},
	}
	a := wheel.DefaultAppearance()
	a.WheelRadius = 90
	a.RingThickness = 40

	s := geometry.Build(opts, a)
	fmt.Printf("frame %.0fx%.0f, inner radius %.0f\n", s.Width, s.Height, s.InnerRadius)
	for _, l := range s.Lines {
		fmt.Printf("%s: %s\n", s.Labels[l.Index].Text, l.Side)
	}
	// Output:
	// frame 330x180, inner radius 50
	// Bribe: right
	// Attack: left
}

func ExampleScene_HitTest() {
	a := wheel.DefaultAppearance()
	a.WheelRadius = 90
	a.RingThickness = 40
	s := geometry.Build(wheel.DemoOptions(), a)

	fmt.Println(s.HitTest(90, 15))
	fmt.Println(s.HitTest(90, 90))
	// Output:
	// 0
	// -1
}
