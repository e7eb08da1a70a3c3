package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

func TestPlanExclusivity(t *testing.T) {
	var p Plan
	p.AddDoor(2)
	p.AddDrawer(0)
	p.AddDrawer(2)

	assert.False(t, p.HasDoor(2))
	assert.True(t, p.HasDrawer(2))
	assert.Equal(t, []int{0, 2}, p.Drawers)
	assert.Empty(t, p.Doors)

	p.ToggleDoor(0)
	assert.True(t, p.HasDoor(0))
	assert.False(t, p.HasDrawer(0))

	p.ToggleDoor(0)
	assert.False(t, p.HasDoor(0))
	assert.Equal(t, []int{2}, p.Layers())
}

func TestNewPlan(t *testing.T) {
	p := NewPlan([]int{3, 1, 1}, []int{1, 0})
	assert.Equal(t, []int{1, 3}, p.Doors)
	assert.Equal(t, []int{0}, p.Drawers)
	assert.Equal(t, []int{0, 1, 3}, p.Layers())
}

func TestPlanPrune(t *testing.T) {
	p := NewPlan([]int{0, 4}, []int{2, 5})
	p.Prune(3)
	assert.Equal(t, []int{0}, p.Doors)
	assert.Equal(t, []int{2}, p.Drawers)
	assert.False(t, p.Empty())

	p.Prune(0)
	assert.True(t, p.Empty())
}

func TestPlanPlace(t *testing.T) {
	cfg := shelf.Default()
	p := NewPlan([]int{1}, []int{0})
	cfg.HardwareLayers = p.Layers()

	res, err := layout.Compute(cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, res.CountRole(shelf.RoleBackPanel))

	placed := p.Place(cfg, res)
	assert.Len(t, placed.Doors, 2)
	assert.Len(t, placed.Drawers, 2)
	assert.Len(t, Openings(cfg, 0, res), 2)
}
