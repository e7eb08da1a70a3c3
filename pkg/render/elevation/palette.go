package elevation

import "github.com/matzehuels/shelfcraft/pkg/core/shelf"

// Palette maps panel roles and Mosaic color indices to SVG colors.
type Palette struct {
	Roles   map[shelf.Role]string
	Mosaic  [4]string
	Stroke  string
	Door    string
	Drawer  string
	Label   string
	Guide   string
	Opacity float64
}

// DefaultPalette is a light birch finish.
var DefaultPalette = Palette{
	Roles: map[shelf.Role]string{
		shelf.RoleVerticalBase:   "#e8d9c0",
		shelf.RoleVerticalEdge:   "#d9c5a3",
		shelf.RoleHorizontalBase: "#dcc8a8",
		shelf.RoleHorizontalEdge: "#cdb48c",
		shelf.RoleBackPanel:      "#f4ede1",
		shelf.RoleSupportPanel:   "#efe4d1",
	},
	Mosaic:  [4]string{"#e07a5f", "#3d405b", "#81b29a", "#f2cc8f"},
	Stroke:  "#8a7356",
	Door:    "#c9b08a",
	Drawer:  "#b89c74",
	Label:   "#333333",
	Guide:   "#333333",
	Opacity: 0.85,
}

// Fill returns the color of a panel role.
func (p Palette) Fill(r shelf.Role) string {
	if c, ok := p.Roles[r]; ok {
		return c
	}
	return "#dddddd"
}

// MosaicFill returns the color of a Mosaic cell.
func (p Palette) MosaicFill(colorIndex int) string {
	return p.Mosaic[((colorIndex%len(p.Mosaic))+len(p.Mosaic))%len(p.Mosaic)]
}
