package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KalpShah999/TMGame/internal/game"
	"github.com/KalpShah999/TMGame/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Locations AssetConfig[*game.Location] `json:"locations"`
	Enemies   AssetConfig[*game.Enemy]    `json:"enemies"`
	Weapons   AssetConfig[*game.Weapon]   `json:"weapons"`
	Spells    AssetConfig[*game.Spell]    `json:"spells"`

	// StatsPath points at a single JSON file holding the new-player
	// starting stats, not an asset directory.
	StatsPath string `json:"starting_stats"`
}

func (c *StorageConfig) BuildCatalog() (*game.Catalog, error) {
	locations, err := c.Locations.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating location store: %w", err)
	}
	enemies, err := c.Enemies.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating enemy store: %w", err)
	}
	weapons, err := c.Weapons.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating weapon store: %w", err)
	}
	spells, err := c.Spells.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating spell store: %w", err)
	}

	stats, err := c.loadStats()
	if err != nil {
		return nil, fmt.Errorf("loading starting stats: %w", err)
	}

	catalog := &game.Catalog{
		Locations: locations,
		Enemies:   enemies,
		Weapons:   weapons,
		Spells:    spells,
		Stats:     stats,
	}

	if err := catalog.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return catalog, nil
}

func (c *StorageConfig) loadStats() (*game.StartingStats, error) {
	data, err := os.ReadFile(c.StatsPath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", c.StatsPath, err)
	}

	var stats game.StartingStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", c.StatsPath, err)
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Locations.Validate("locations"))
	el.Add(c.Enemies.Validate("enemies"))
	el.Add(c.Weapons.Validate("weapons"))
	el.Add(c.Spells.Validate("spells"))

	if c.StatsPath == "" {
		el.Add(fmt.Errorf("starting_stats: path is required"))
	} else if _, err := os.Stat(c.StatsPath); err != nil {
		el.Add(fmt.Errorf("starting_stats: invalid path %q: %w", c.StatsPath, err))
	}

	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
