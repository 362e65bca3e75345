package model

import "math"

// Cargo :
// A bounded multi-resource container with volume accounting. Invariants
// maintained by every mutator: `0 <= usage <= capacity` and `usage`
// tracks `sum(volume(r) * resources[r])` up to rounding.
type Cargo struct {
	Capacity  float64
	Usage     float64
	Resources map[Resource]float64
}

// NewCargo :
// Creates an empty cargo hold with the given capacity.
func NewCargo(capacity float64) Cargo {
	return Cargo{
		Capacity:  capacity,
		Resources: make(map[Resource]float64),
	}
}

// IsFull :
// True once usage has reached capacity exactly.
func (c *Cargo) IsFull() bool {
	return c.Usage == c.Capacity
}

// SlowingRatio :
// Reserved hook for cargo-induced speed penalties; currently always 0.
func (c *Cargo) SlowingRatio() float64 {
	return 0
}

// AddResource :
// Deposits up to `qty` of `r`, truncating at the remaining capacity
// (prorated by volume). Returns the quantity actually added.
func (c *Cargo) AddResource(r Resource, qty float64) float64 {
	added := r.Volume() * qty
	switch {
	case c.Usage == c.Capacity:
		return 0
	case c.Usage+added > c.Capacity:
		overflow := (c.Usage + added) - c.Capacity
		qty -= overflow / r.Volume()
		c.Usage = c.Capacity
	default:
		c.Usage += added
	}

	if c.Resources == nil {
		c.Resources = make(map[Resource]float64)
	}
	c.Resources[r] += qty
	return qty
}

// Unload :
// Withdraws `min(qty, resources[r])`, decreasing usage. Returns the
// quantity actually removed. Usage is rounded to three decimal places
// afterwards to keep floating-point drift bounded.
func (c *Cargo) Unload(r Resource, qty float64) float64 {
	have, ok := c.Resources[r]
	if !ok {
		return 0
	}

	unload := math.Min(have, qty)
	c.Resources[r] = have - unload
	c.Usage = math.Max(c.Usage-(r.Volume()*unload), 0)
	c.Usage = math.Round(c.Usage*1000) / 1000
	return unload
}

// SpaceFor :
// How many units of `r` still fit in the remaining capacity.
func (c *Cargo) SpaceFor(r Resource) float64 {
	return (c.Capacity - c.Usage) / r.Volume()
}
