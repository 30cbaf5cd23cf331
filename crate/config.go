// Package crate implements the grid placement engine of the packing game:
// the 3D occupancy model, drop resolution, piece rotation and the isometric
// projection between screen pixels and grid cells.
package crate

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the container and tile geometry shared by projection,
// occupancy and drop resolution.
type Config struct {
	GridSize   int
	MaxHeight  int
	TileWidth  int
	TileHeight int
}

// DefaultConfig returns the 6x6x8 container with 64x32 tiles.
func DefaultConfig() Config {
	return Config{
		GridSize:   6,
		MaxHeight:  8,
		TileWidth:  64,
		TileHeight: 32,
	}
}

// Validate reports whether every dimension is positive.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, c.GridSize)
	case c.MaxHeight <= 0:
		return fmt.Errorf("%w: max height %d", ErrInvalidConfig, c.MaxHeight)
	case c.TileWidth <= 0 || c.TileHeight <= 0:
		return fmt.Errorf("%w: tile %dx%d", ErrInvalidConfig, c.TileWidth, c.TileHeight)
	case c.GridSize >= 1<<coordBits || c.MaxHeight >= 1<<coordBits:
		return fmt.Errorf("%w: container %dx%d too large", ErrInvalidConfig, c.GridSize, c.MaxHeight)
	}
	return nil
}

// Volume is the number of unit cells in the container.
func (c Config) Volume() int {
	return c.GridSize * c.GridSize * c.MaxHeight
}

// InBounds reports whether v lies inside the container.
func (c Config) InBounds(v Vec3) bool {
	return v.X >= 0 && v.X < c.GridSize &&
		v.Y >= 0 && v.Y < c.GridSize &&
		v.Z >= 0 && v.Z < c.MaxHeight
}
