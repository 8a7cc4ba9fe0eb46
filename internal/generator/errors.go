package generator

import "errors"

var (
	// ErrInvalidConfig is returned when GenConfig's dimensions are
	// non-positive.
	ErrInvalidConfig = errors.New("generator: invalid config")

	// ErrCatalogIncomplete is returned when the supplied catalog is
	// missing data a layer needs (e.g. no creature definitions, no
	// biome definitions).
	ErrCatalogIncomplete = errors.New("generator: catalog incomplete")
)
