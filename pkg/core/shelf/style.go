package shelf

import (
	"strings"

	"github.com/matzehuels/shelfcraft/pkg/errors"
)

// Style selects one of the six layout generators.
type Style int

const (
	StyleGrid Style = iota
	StyleSlant
	StylePixel
	StyleGradient
	StylePattern
	StyleMosaic
)

var styleNames = [...]string{
	StyleGrid:     "grid",
	StyleSlant:    "slant",
	StylePixel:    "pixel",
	StyleGradient: "gradient",
	StylePattern:  "pattern",
	StyleMosaic:   "mosaic",
}

// Styles lists every style in declaration order.
func Styles() []Style {
	return []Style{StyleGrid, StyleSlant, StylePixel, StyleGradient, StylePattern, StyleMosaic}
}

// String returns the lowercase style name.
func (s Style) String() string {
	if s.Valid() {
		return styleNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the declared styles.
func (s Style) Valid() bool {
	return s >= StyleGrid && s <= StyleMosaic
}

// ParseStyle converts a style name (case-insensitive) into a Style.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range styleNames {
		if s == n {
			return Style(i), nil
		}
	}
	return StyleGrid, errors.New(errors.ErrCodeInvalidStyle,
		"unknown style %q (must be one of: %s)", name, strings.Join(styleNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Role is the material role of a panel. Renderers pick materials by role.
type Role int

const (
	RoleVerticalBase Role = iota
	RoleVerticalEdge
	RoleHorizontalBase
	RoleHorizontalEdge
	RoleBackPanel
	RoleSupportPanel
)

var roleNames = [...]string{
	RoleVerticalBase:   "verticalBase",
	RoleVerticalEdge:   "verticalEdge",
	RoleHorizontalBase: "horizontalBase",
	RoleHorizontalEdge: "horizontalEdge",
	RoleBackPanel:      "backPanel",
	RoleSupportPanel:   "supportPanel",
}

func (r Role) String() string {
	if r >= RoleVerticalBase && r <= RoleSupportPanel {
		return roleNames[r]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(b []byte) error {
	for i, n := range roleNames {
		if n == string(b) {
			*r = Role(i)
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown panel role %q", string(b))
}

// IsVertical reports whether the role is a divider role.
func (r Role) IsVertical() bool {
	return r == RoleVerticalBase || r == RoleVerticalEdge
}

// IsHorizontal reports whether the role is a shelf-board role.
func (r Role) IsHorizontal() bool {
	return r == RoleHorizontalBase || r == RoleHorizontalEdge
}
