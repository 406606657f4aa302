// Package core holds the value types shared between the Akari engine
// packages (internal/akari/...), the HTTP transport, and the command-line
// entry points: puzzle parameters, the configure-dialog schema, and the
// preset menu.
package core

import "akari-engine/pkg/constants"

// Params is the immutable configuration of a puzzle.
type Params struct {
	Width        int
	Height       int
	BlackPercent int
	Symmetry     constants.Symmetry
	Hard         bool
}

// Preset is a named, ready-to-use set of Params shown in the default menu.
type Preset struct {
	Label  string
	Params Params
}

// ConfigKind identifies the widget kind of a configure-dialog item.
type ConfigKind int

const (
	ConfigString ConfigKind = iota
	ConfigChoices
	ConfigBoolean
)

// ConfigItem is one row of the configure dialog schema.
type ConfigItem struct {
	Name    string
	Kind    ConfigKind
	Value   string   // current value, for ConfigString and ConfigBoolean ("true"/"false")
	Choices []string // valid choices, for ConfigChoices
	Index   int      // selected index, for ConfigChoices
}

// SymmetryChoices lists the symmetry dropdown options in the order the
// configure dialog schema requires.
var SymmetryChoices = []string{
	"None",
	"2-way mirror",
	"2-way rotational",
	"4-way mirror",
	"4-way rotational",
}

// DifficultyChoices lists the difficulty dropdown options.
var DifficultyChoices = []string{"Easy", "Hard"}
