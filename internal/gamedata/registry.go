package gamedata

import (
	"errors"
	"fmt"
)

// Catalog holds loaded definitions and provides lookup utilities.
type Catalog struct {
	bomb    BombDef
	layers  []LayerDef
	tiles   map[string]*TileDef
	prefabs map[string]*PrefabDef
}

// NewCatalog creates a catalog from loaded definitions.
func NewCatalog(file BlocksFile) *Catalog {
	c := &Catalog{
		bomb:    file.Bomb,
		layers:  file.Layers,
		tiles:   make(map[string]*TileDef, len(file.Tiles)),
		prefabs: make(map[string]*PrefabDef, len(file.Prefabs)),
	}
	for i := range file.Tiles {
		c.tiles[file.Tiles[i].ID] = &file.Tiles[i]
	}
	for i := range file.Prefabs {
		c.prefabs[file.Prefabs[i].ID] = &file.Prefabs[i]
	}
	return c
}

// LoadCatalog loads, validates and indexes the embedded blocks.json.
func LoadCatalog() (*Catalog, error) {
	file, err := LoadBlocks()
	if err != nil {
		return nil, err
	}
	c := NewCatalog(file)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blocks.json: %w", err)
	}
	return c, nil
}

// MustLoadCatalog loads a catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports every configuration problem found.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.layers) == 0 {
		errs = append(errs, errors.New("no destructible layers defined"))
	}
	if c.bomb.FuseMs <= 0 {
		errs = append(errs, fmt.Errorf("bomb fuse must be positive, got %dms", c.bomb.FuseMs))
	}
	if c.bomb.Capacity < 0 || c.bomb.BlastRadius < 0 {
		errs = append(errs, errors.New("bomb capacity and blast radius must not be negative"))
	}

	seen := make(map[string]bool)
	for _, l := range c.layers {
		if seen[l.ID] {
			errs = append(errs, fmt.Errorf("layer %q defined twice", l.ID))
		}
		seen[l.ID] = true

		if l.MaxHealth < 1 {
			errs = append(errs, fmt.Errorf("layer %q: maxHealth must be at least 1", l.ID))
		}
		if l.SpawnChance < 0 || l.SpawnChance > 1 {
			errs = append(errs, fmt.Errorf("layer %q: spawnChance %v outside [0,1]", l.ID, l.SpawnChance))
		}
		for _, tile := range l.StageTiles {
			if c.tiles[tile] == nil {
				errs = append(errs, fmt.Errorf("layer %q: unknown stage tile %q", l.ID, tile))
			}
		}
		if l.BreakEffect != "" && c.prefabs[l.BreakEffect] == nil {
			errs = append(errs, fmt.Errorf("layer %q: unknown break effect %q", l.ID, l.BreakEffect))
		}
		for _, item := range l.Loot {
			if c.prefabs[item] == nil {
				errs = append(errs, fmt.Errorf("layer %q: unknown loot %q", l.ID, item))
			}
		}
	}

	return errors.Join(errs...)
}

// Bomb returns the bomb tuning.
func (c *Catalog) Bomb() BombDef {
	return c.bomb
}

// Layers returns all destructible layer definitions in declaration order.
func (c *Catalog) Layers() []LayerDef {
	return c.layers
}

// Tile returns the tile definition with the given ID, or nil if not found.
func (c *Catalog) Tile(id string) *TileDef {
	return c.tiles[id]
}

// Prefab returns the prefab definition with the given ID, or nil if not found.
func (c *Catalog) Prefab(id string) *PrefabDef {
	return c.prefabs[id]
}
