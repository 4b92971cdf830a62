package visual

import "github.com/lixenwraith/magic-lab/core"

// Effect colors
var (
	ExplosionColor = core.Hex(0xffee88)
	FireColor      = core.Hex(0xff5522)
	LightningColor = core.Hex(0x99eeff)
	FrostColor     = core.Hex(0xffffff)
)

// Scene colors
var (
	BoxColor        = core.Hex(0x88ccff)
	BookColor       = core.Hex(0xc08850)
	TargetColor     = core.Hex(0xff4466)
	FragmentColor   = core.Hex(0x99bbdd)
	GroundColor     = core.Hex(0x332255)
	GroundRuneColor = core.Hex(0x8866ff)
	PortalColor     = core.Hex(0x66ccff)
	FireflyColor    = core.Hex(0xffff66)
	WandColor       = core.Hex(0x552200)
	WandTipColor    = core.Hex(0xffaa00)
	BoltColor       = core.Hex(0xffdd33)
	FrostRingColor  = core.Hex(0x99ddff)
	HUDColor        = core.Hex(0xa0a0b0)
	HUDAccentColor  = core.Hex(0xffc832)
)
