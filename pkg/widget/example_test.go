package widget_test

import (
	"fmt"

	"github.com/matzehuels/dialoguewheel/pkg/wheel"
	"github.com/matzehuels/dialoguewheel/pkg/widget"
)

func ExampleWidget_Subscribe() {
	w := widget.New(widget.WithOptions([]wheel.Option{
		{Text: "Bribe", Color: "#2ecc71"},
		{Text: "Attack", Color: "#c0392b", Disabled: true},
	}))
	w.Subscribe(func(s widget.Selection) {
		fmt.Println("selected", s.Index, s.Option.Text)
	})

	fmt.Println(w.Click(1))
	fmt.Println(w.Click(0))
	// Output:
	// false
	// selected 0 Bribe
	// true
}

func ExampleWidget_SetDisabledOpacity() {
	w := widget.New()
	w.SetDisabledOpacity(1.5)
	fmt.Println(w.DisabledOpacity())

	err := w.SetWheelRadius(-1)
	fmt.Println(err != nil, w.WheelRadius())
	// Output:
	// 1
	// true 150
}
