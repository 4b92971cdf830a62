package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/status"
)

// Machine resolves key events against a KeyTable
// The only state it keeps is the selected parameter
type Machine struct {
	table    *KeyTable
	selected sim.Param
	shown    *status.AtomicString
}

// NewMachine creates a machine; reg may be nil, otherwise the selection is published under parameter.SelectedParamKey
func NewMachine(table *KeyTable, reg *status.Registry) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	m := &Machine{table: table}
	if reg != nil {
		m.shown = reg.Strings.Get(parameter.SelectedParamKey)
	}
	m.selectParam(sim.ParamEntityCount)
	return m
}

func (m *Machine) Selected() sim.Param {
	return m.selected
}

func (m *Machine) selectParam(p sim.Param) {
	m.selected = p
	if m.shown != nil {
		m.shown.Store(p.String())
	}
}

// Lookup returns the table entry for a key event
func (m *Machine) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := m.table.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := m.table.SpecialKeys[ev.Key()]
	return e, ok
}

// HandleKey maps a key event to a command
// ok is false for unbound keys and for keys that only change selection
func (m *Machine) HandleKey(ev *tcell.EventKey) (sim.Command, bool) {
	entry, ok := m.Lookup(ev)
	if !ok {
		return sim.Command{}, false
	}
	return m.Resolve(entry)
}

// Resolve turns a table entry into a command, updating the selection for select keys
func (m *Machine) Resolve(entry KeyEntry) (sim.Command, bool) {
	switch entry.Behavior {
	case BehaviorCast:
		return sim.Cast(entry.Spell), true
	case BehaviorAim:
		return sim.Aim(entry.Yaw, entry.Pitch), true
	case BehaviorSelect:
		m.selectParam(entry.Param)
		return sim.Command{}, false
	case BehaviorAdjust:
		return sim.Nudge(m.selected, entry.Sign*ParamStep[m.selected]), true
	case BehaviorReinitialize:
		return sim.Reinitialize(), true
	case BehaviorQuit:
		return sim.Quit(), true
	default:
		return sim.Command{}, false
	}
}

// HandleEvent maps any tcell event; non-key events produce no command
func (m *Machine) HandleEvent(ev tcell.Event) (sim.Command, bool) {
	if key, ok := ev.(*tcell.EventKey); ok {
		return m.HandleKey(key)
	}
	return sim.Command{}, false
}
