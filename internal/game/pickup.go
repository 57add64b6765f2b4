package game

import "github.com/samdwyer/blastgrid/internal/spawn"

// Loot prefabs the player can collect.
const (
	LootBombUp  spawn.Prefab = "loot.bomb_up"
	LootBlastUp spawn.Prefab = "loot.blast_up"
)

// collectPickups consumes every loot entity under the player.
// Returns the number collected.
func (m *Match) collectPickups() int {
	collected := 0
	for _, e := range m.Entities.At(m.Player.Cell()) {
		if !e.Prefab.IsLoot() {
			continue
		}

		switch e.Prefab {
		case LootBombUp:
			m.Agent.AddBombCapacity()
		case LootBlastUp:
			m.Agent.AddBlastRadius()
		default:
			m.logger.Warn("unknown loot collected", "prefab", e.Prefab)
		}

		m.Entities.Destroy(e.Handle)
		collected++
		m.logger.Info("loot collected",
			"prefab", e.Prefab,
			"capacity", m.Agent.Capacity(),
			"radius", m.Agent.BlastRadius(),
		)
	}
	return collected
}
