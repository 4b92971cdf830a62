// Package spell enumerates the castable spells
package spell

import (
	"fmt"
	"strings"
)

// Kind is the tagged spell variant dispatched by the orchestrator
type Kind uint8

const (
	// Burst explodes at the wand tip with knockback
	Burst Kind = iota
	// Bolt fires a projectile that explodes on timeout
	Bolt
	// Fireball fires a projectile that bursts into fire on timeout
	Fireball
	// Lightning is an instantaneous beam hitting everything along it
	Lightning
	// Frost rings the ground under the wand and slows time
	Frost

	kindCount
)

// Class groups spells by delivery
type Class uint8

const (
	ClassArea Class = iota
	ClassProjectile
	ClassBeam
)

var kindNames = [kindCount]string{"burst", "bolt", "fireball", "lightning", "frost"}

var kindClasses = [kindCount]Class{ClassArea, ClassProjectile, ClassProjectile, ClassBeam, ClassArea}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("spell(%d)", uint8(k))
}

// Valid reports whether k names a known spell
func (k Kind) Valid() bool {
	return k < kindCount
}

// Class returns the delivery class
func (k Kind) Class() Class {
	if k < kindCount {
		return kindClasses[k]
	}
	return ClassArea
}

// Kinds returns every spell in declaration order
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind resolves a case-insensitive spell name
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown spell %q", name)
}
