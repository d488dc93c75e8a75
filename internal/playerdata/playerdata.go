// Package playerdata declares the record shape of Minecraft's
// player.dat files, the "player file" collaborator of spec §6 is built
// around. It exists purely to exercise the Binding Decoder against a
// realistic, deeply nested document; it makes no claim to track every
// field a given game version actually writes.
package playerdata

import "github.com/google/uuid"

// Abilities mirrors the "abilities" compound nested inside player.dat.
type Abilities struct {
	Invulnerable   bool    `nbt:"invulnerable"`
	Flying         bool    `nbt:"flying"`
	MayFly         bool    `nbt:"mayfly"`
	InstaBuild     bool    `nbt:"instabuild"`
	MayBuild       bool    `nbt:"mayBuild"`
	WalkSpeed      float32 `nbt:"walkSpeed"`
	FlySpeed       float32 `nbt:"flySpeed"`
}

// ItemStack mirrors one entry of the "Inventory" list.
type ItemStack struct {
	Slot   int8   `nbt:"Slot"`
	ID     string `nbt:"id"`
	Count  int8   `nbt:"Count"`
	Damage int16  `nbt:"Damage"`
}

// Player mirrors the top-level compound of a player.dat file.
type Player struct {
	DataVersion int32       `nbt:"DataVersion"`
	Health      float32     `nbt:"Health"`
	FoodLevel   int32       `nbt:"foodLevel"`
	XpLevel     int32       `nbt:"XpLevel"`
	XpTotal     int32       `nbt:"XpTotal"`
	Dimension   string      `nbt:"Dimension"`
	Pos         [3]float64  `nbt:"Pos"`
	Motion      [3]float64  `nbt:"Motion"`
	Rotation    [2]float32  `nbt:"Rotation"`
	OnGround    bool        `nbt:"OnGround"`
	Inventory   []ItemStack `nbt:"Inventory"`
	Abilities   Abilities   `nbt:"abilities"`
	UUID        uuid.UUID   `nbt:"UUID"`
}
