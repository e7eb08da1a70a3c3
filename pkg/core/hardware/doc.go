// Package hardware places doors and drawers in the compartments of a shelf.
//
// Placements are derived, never stored. For a given row ("layer") the
// package asks [layout.Dividers] and [layout.Compartments] for the same
// divider faces the generator used, so a door always closes exactly the
// opening between two dividers, including Slant's shifted rows, Pixel's
// open side gaps and Gradient's graded columns.
//
// # Doors and Drawers
//
// [Doors] and [Drawers] return one placement per enclosed compartment of a
// layer:
//
//	res, _ := layout.Compute(cfg)
//	doors := hardware.Doors(cfg.Style, 2, cfg, res.PanelCount, res.PanelSpacing)
//
// Mosaic shelves, out-of-range layers and invalid configs yield no
// placements; hardware absence is a normal state, not an error.
//
// # Plans
//
// A [Plan] records which layers carry doors and which carry drawers. A layer
// holds at most one kind. [Plan.Layers] feeds shelf.Config.HardwareLayers so
// that every hardware row receives a back panel.
package hardware
