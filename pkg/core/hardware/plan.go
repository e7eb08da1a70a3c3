package hardware

import (
	"slices"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

// Plan records the layers carrying doors and drawers. The zero value is an
// empty plan. A layer is never in both lists.
type Plan struct {
	Doors   []int `json:"doors,omitempty" yaml:"doors,omitempty" toml:"doors,omitempty"`
	Drawers []int `json:"drawers,omitempty" yaml:"drawers,omitempty" toml:"drawers,omitempty"`
}

// NewPlan builds a plan from door and drawer layers. Duplicates collapse and
// a layer listed for both keeps its door.
func NewPlan(doors, drawers []int) Plan {
	var p Plan
	for _, l := range drawers {
		p.AddDrawer(l)
	}
	for _, l := range doors {
		p.AddDoor(l)
	}
	return p
}

// HasDoor reports whether layer carries doors.
func (p Plan) HasDoor(layer int) bool { return slices.Contains(p.Doors, layer) }

// HasDrawer reports whether layer carries drawers.
func (p Plan) HasDrawer(layer int) bool { return slices.Contains(p.Drawers, layer) }

// AddDoor puts doors on layer, replacing any drawers there.
func (p *Plan) AddDoor(layer int) {
	p.Drawers = remove(p.Drawers, layer)
	p.Doors = insert(p.Doors, layer)
}

// AddDrawer puts drawers on layer, replacing any doors there.
func (p *Plan) AddDrawer(layer int) {
	p.Doors = remove(p.Doors, layer)
	p.Drawers = insert(p.Drawers, layer)
}

// RemoveDoor clears doors from layer.
func (p *Plan) RemoveDoor(layer int) { p.Doors = remove(p.Doors, layer) }

// RemoveDrawer clears drawers from layer.
func (p *Plan) RemoveDrawer(layer int) { p.Drawers = remove(p.Drawers, layer) }

// ToggleDoor adds doors to layer, or removes them if already present.
func (p *Plan) ToggleDoor(layer int) {
	if p.HasDoor(layer) {
		p.RemoveDoor(layer)
		return
	}
	p.AddDoor(layer)
}

// ToggleDrawer adds drawers to layer, or removes them if already present.
func (p *Plan) ToggleDrawer(layer int) {
	if p.HasDrawer(layer) {
		p.RemoveDrawer(layer)
		return
	}
	p.AddDrawer(layer)
}

// Layers returns every layer carrying hardware, ascending.
func (p Plan) Layers() []int {
	out := append(append([]int(nil), p.Doors...), p.Drawers...)
	slices.Sort(out)
	return slices.Compact(out)
}

// Prune drops layers at or above numRows, as when rows are removed.
func (p *Plan) Prune(numRows int) {
	gone := func(l int) bool { return l < 0 || l >= numRows }
	p.Doors = slices.DeleteFunc(slices.Clone(p.Doors), gone)
	p.Drawers = slices.DeleteFunc(slices.Clone(p.Drawers), gone)
}

// Empty reports whether the plan holds no hardware.
func (p Plan) Empty() bool { return len(p.Doors) == 0 && len(p.Drawers) == 0 }

// Placements are the doors and drawers of a plan for one layout.
type Placements struct {
	Doors   []Door
	Drawers []Drawer
}

// Place resolves every layer of the plan against res, the layout computed
// for cfg.
func (p Plan) Place(cfg shelf.Config, res shelf.Result) Placements {
	var out Placements
	for _, l := range p.Doors {
		out.Doors = append(out.Doors, Doors(res.Requested, l, cfg, res.PanelCount, res.PanelSpacing)...)
	}
	for _, l := range p.Drawers {
		out.Drawers = append(out.Drawers, Drawers(res.Requested, l, cfg, res.PanelCount, res.PanelSpacing)...)
	}
	return out
}

// Openings returns the compartments of layer that can take hardware.
func Openings(cfg shelf.Config, layer int, res shelf.Result) []layout.Compartment {
	return openings(res.Requested, layer, cfg, res.PanelCount, res.PanelSpacing)
}

func insert(s []int, v int) []int {
	if slices.Contains(s, v) {
		return s
	}
	s = append(slices.Clone(s), v)
	slices.Sort(s)
	return s
}

func remove(s []int, v int) []int {
	return slices.DeleteFunc(slices.Clone(s), func(x int) bool { return x == v })
}
