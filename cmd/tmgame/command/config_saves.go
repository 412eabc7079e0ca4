package command

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

type SavesConfig struct {
	// Dir is where snapshot files live.
	Dir string `json:"dir"`

	// File is the save target for autosave and shutdown. Empty disables
	// autosave; the shutdown save then picks a timestamped name.
	File string `json:"file,omitempty"`

	// Load names a snapshot to restore on startup. A missing or corrupt
	// file aborts startup rather than silently starting an empty world.
	Load string `json:"load,omitempty"`
}

func (c *SavesConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Dir == "" {
		el.Add(fmt.Errorf("saves dir is required"))
	}
	for _, name := range []string{c.File, c.Load} {
		if strings.ContainsAny(name, "/\\") {
			el.Add(fmt.Errorf("save file names must not contain path separators: %q", name))
		}
	}

	return el.Err()
}
