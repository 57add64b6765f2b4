// Package spawn tracks the transient entities created by game rules:
// bombs, blast segments, break effects and loot.
package spawn

import "strings"

// Prefab names a kind of spawnable entity.
type Prefab string

// Built-in prefabs used by the bomb rules.
const (
	PrefabBomb            Prefab = "bomb"
	PrefabExplosionStart  Prefab = "explosion.start"
	PrefabExplosionMiddle Prefab = "explosion.middle"
	PrefabExplosionEnd    Prefab = "explosion.end"
)

// IsExplosion returns true for any blast visual.
func (p Prefab) IsExplosion() bool {
	return strings.HasPrefix(string(p), "explosion.")
}

// IsLoot returns true for collectible prefabs.
func (p Prefab) IsLoot() bool {
	return strings.HasPrefix(string(p), "loot.")
}

// IsEffect returns true for cosmetic one-shot prefabs.
func (p Prefab) IsEffect() bool {
	return strings.HasPrefix(string(p), "vfx.")
}
