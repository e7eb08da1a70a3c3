package layout_test

import (
	"fmt"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

func ExampleCompute() {
	cfg := shelf.Default()
	res, err := layout.Compute(cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println("style:", res.Style)
	fmt.Println("dividers per row:", res.PanelCount)
	fmt.Printf("spacing: %.1f cm\n", res.PanelSpacing)
	fmt.Println("boards:", res.CountRole(shelf.RoleHorizontalBase))
	// Output:
	// style: grid
	// dividers per row: 3
	// spacing: 44.0 cm
	// boards: 5
}

func ExampleCompute_fallback() {
	cfg := shelf.Default()
	cfg.Style = shelf.StyleSlant
	cfg.Width = 50
	res, _ := layout.Compute(cfg)
	fmt.Println(res.Requested, "->", res.Style, res.Fallback)
	// Output:
	// slant -> grid true
}
