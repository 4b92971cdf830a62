// Package input translates terminal key events into simulation commands
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/spell"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorCast
	BehaviorAim
	BehaviorSelect // picks the parameter +/- adjusts
	BehaviorAdjust // nudges the selected parameter by Sign steps
	BehaviorReinitialize
	BehaviorQuit
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Spell    spell.Kind
	Yaw      float64
	Pitch    float64
	Param    sim.Param
	Sign     float64
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, case sensitive
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	step := parameter.AimStep
	t := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Behavior: BehaviorQuit},
			tcell.KeyCtrlQ:  {Behavior: BehaviorQuit},
			tcell.KeyEscape: {Behavior: BehaviorQuit},
			tcell.KeyLeft:   {Behavior: BehaviorAim, Yaw: step},
			tcell.KeyRight:  {Behavior: BehaviorAim, Yaw: -step},
			tcell.KeyUp:     {Behavior: BehaviorAim, Pitch: step},
			tcell.KeyDown:   {Behavior: BehaviorAim, Pitch: -step},
		},
		Runes: map[rune]KeyEntry{
			'e': {Behavior: BehaviorCast, Spell: spell.Burst},
			' ': {Behavior: BehaviorCast, Spell: spell.Bolt},
			'f': {Behavior: BehaviorCast, Spell: spell.Fireball},
			'l': {Behavior: BehaviorCast, Spell: spell.Lightning},
			'r': {Behavior: BehaviorCast, Spell: spell.Frost},

			'h': {Behavior: BehaviorAim, Yaw: step},
			'j': {Behavior: BehaviorAim, Pitch: -step},
			'k': {Behavior: BehaviorAim, Pitch: step},
			// 'l' is lightning; vi right is only on the arrow

			'+': {Behavior: BehaviorAdjust, Sign: 1},
			'=': {Behavior: BehaviorAdjust, Sign: 1},
			'-': {Behavior: BehaviorAdjust, Sign: -1},
			'_': {Behavior: BehaviorAdjust, Sign: -1},

			'R': {Behavior: BehaviorReinitialize},
			'q': {Behavior: BehaviorQuit},
		},
	}
	for i, p := range sim.Params() {
		t.Runes[rune('1'+i)] = KeyEntry{Behavior: BehaviorSelect, Param: p}
	}
	return t
}

// ParamStep is the +/- increment per parameter
var ParamStep = map[sim.Param]float64{
	sim.ParamEntityCount:       1,
	sim.ParamSpawnRadius:       1,
	sim.ParamParticleCount:     10,
	sim.ParamExplosionStrength: 1,
	sim.ParamOrbitSpeed:        0.05,
	sim.ParamGroundSpeed:       0.1,
	sim.ParamTimeScale:         0.1,
	sim.ParamFireflyCount:      10,
}
