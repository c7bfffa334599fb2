// SPDX-License-Identifier: MIT
package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/chromabags/chromabags/internal/config"
	"github.com/chromabags/chromabags/internal/designer"
)

// ErrUnknownArchetype is returned for archetypes without a price list entry
var ErrUnknownArchetype = errors.New("unknown archetype")

// defaults apply when config has not been initialized
var defaults = map[designer.Archetype]float64{
	designer.Single:   120,
	designer.TwoTone:  150,
	designer.Freeform: 220,
}

// UnitPrice returns the configured price of one bag of the given archetype
func UnitPrice(archetype designer.Archetype) (float64, error) {
	def, ok := defaults[archetype]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, archetype)
	}

	key := "pricing." + string(archetype)
	if config.IsSet(key) {
		return config.GetFloat64(key), nil
	}
	return def, nil
}

// Quote prices qty bags of one archetype, rounded to cents
func Quote(archetype designer.Archetype, qty int) (float64, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	unit, err := UnitPrice(archetype)
	if err != nil {
		return 0, err
	}
	return math.Round(unit*float64(qty)*100) / 100, nil
}
