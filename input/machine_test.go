package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magic-lab/parameter"
	"github.com/lixenwraith/magic-lab/sim"
	"github.com/lixenwraith/magic-lab/spell"
	"github.com/lixenwraith/magic-lab/status"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want sim.Command
	}{
		{"burst", runeKey('e'), sim.Cast(spell.Burst)},
		{"bolt", runeKey(' '), sim.Cast(spell.Bolt)},
		{"fireball", runeKey('f'), sim.Cast(spell.Fireball)},
		{"lightning", runeKey('l'), sim.Cast(spell.Lightning)},
		{"frost", runeKey('r'), sim.Cast(spell.Frost)},
		{"reinitialize", runeKey('R'), sim.Reinitialize()},
		{"quit rune", runeKey('q'), sim.Quit()},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), sim.Quit()},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), sim.Quit()},
		{"aim left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), sim.Aim(parameter.AimStep, 0)},
		{"aim down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), sim.Aim(0, -parameter.AimStep)},
		{"increase", runeKey('+'), sim.Nudge(sim.ParamEntityCount, 1)},
		{"decrease", runeKey('-'), sim.Nudge(sim.ParamEntityCount, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(nil, nil)
			got, ok := m.HandleKey(tc.ev)
			if !ok {
				t.Fatalf("Expected a command for %s", tc.name)
			}
			if got != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestUnboundKey(t *testing.T) {
	m := NewMachine(nil, nil)
	if _, ok := m.HandleKey(runeKey('z')); ok {
		t.Error("Expected no command for an unbound key")
	}
	if _, ok := m.HandleEvent(tcell.NewEventResize(80, 24)); ok {
		t.Error("Expected no command for a resize")
	}
}

func TestSelectThenAdjust(t *testing.T) {
	reg := status.NewRegistry()
	m := NewMachine(nil, reg)

	if _, ok := m.HandleKey(runeKey('7')); ok {
		t.Error("Expected selection to produce no command")
	}
	if m.Selected() != sim.ParamTimeScale {
		t.Fatalf("Expected time_scale selected, got %v", m.Selected())
	}
	if got := reg.Strings.Get(parameter.SelectedParamKey).Load(); got != "time_scale" {
		t.Errorf("Expected published selection, got %q", got)
	}

	cmd, ok := m.HandleKey(runeKey('-'))
	if !ok {
		t.Fatal("Expected adjust command")
	}
	want := sim.Nudge(sim.ParamTimeScale, -ParamStep[sim.ParamTimeScale])
	if cmd != want {
		t.Errorf("Expected %+v, got %+v", want, cmd)
	}
}

func TestEveryParamSelectable(t *testing.T) {
	m := NewMachine(nil, nil)
	for i, p := range sim.Params() {
		m.HandleKey(runeKey(rune('1' + i)))
		if m.Selected() != p {
			t.Errorf("Key %c: expected %v, got %v", '1'+i, p, m.Selected())
		}
		if _, ok := ParamStep[p]; !ok {
			t.Errorf("Missing step for %v", p)
		}
	}
}
