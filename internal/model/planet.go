package model

// Planet :
// A single celestial body within a sector. Solid bodies carry
// Stone/Iron, gaseous bodies carry Helium/Ozone; nothing else is
// mineable or suckable there.
type Planet struct {
	Position    Coord
	Solid       bool
	Temperature float64
}

const stoneDensitySolid = 3.0
const ironDensitySolid = 1.0
const heliumDensityGas = 3.0
const ozoneDensityGas = 1.0

// ResourceDensity :
// Concentration of `r` at this planet. Zero for any resource the
// planet's composition does not carry.
func (p *Planet) ResourceDensity(r Resource) float64 {
	if p.Solid {
		switch r {
		case Stone:
			return stoneDensitySolid
		case Iron:
			return ironDensitySolid
		default:
			return 0
		}
	}

	switch r {
	case Helium:
		return heliumDensityGas
	case Ozone:
		return ozoneDensityGas
	default:
		return 0
	}
}

// PlanetInfo :
// Client-facing view of a planet, deliberately narrowed to position
// only; composition and temperature are not exposed by a scan.
type PlanetInfo struct {
	Position Coord
}

// Scan :
// Produces the position-only view handed back to scan commands.
func (p *Planet) Scan() PlanetInfo {
	return PlanetInfo{Position: p.Position}
}
