package model

import "math"

const modUpgBasePrice = 5000.0
const modUpgPowfDiv = 30.0
const extractionRateRankPowf = 0.25

// ShipModuleId :
// Identifier of a module within its owning ship. Allocated by a
// monotonically increasing per-ship counter (never reused, unlike the
// original's `modules.len()+1`, which is not stable under removal).
type ShipModuleId uint16

// ShipModuleType :
// Tagged variant over the two kinds of extraction module.
type ShipModuleType int

const (
	Miner ShipModuleType = iota
	GasSucker
)

func (t ShipModuleType) String() string {
	switch t {
	case Miner:
		return "Miner"
	case GasSucker:
		return "GasSucker"
	default:
		return "Unknown"
	}
}

// ParseShipModuleType :
// The inverse of String, used by the HTTP collaborator to turn a path
// segment back into a ShipModuleType.
func ParseShipModuleType(s string) (ShipModuleType, *GameError) {
	for _, t := range []ShipModuleType{Miner, GasSucker} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, ErrInvalidArgument("modtype")
}

// PriceBuy :
// Purchase price of a fresh rank-1 module of this type.
func (t ShipModuleType) PriceBuy() float64 {
	switch t {
	case Miner, GasSucker:
		return 2000.0
	default:
		return 0
	}
}

// NewModule :
// Creates a fresh rank-1, unoperated module of this type.
func (t ShipModuleType) NewModule() ShipModule {
	return ShipModule{ModType: t, Rank: 1}
}

// ShipModule :
// A single extraction module aboard a ship. Requires a crew member of
// type Operator to produce anything.
type ShipModule struct {
	ModType   ShipModuleType
	Rank      uint8
	Operator  *CrewId
	TotalCost float64
}

// PriceNextRank :
// Cost to rank this module up by one: `5000^((29+rank)/30)`.
func (m *ShipModule) PriceNextRank() float64 {
	num := modUpgPowfDiv - 1 + float64(m.Rank)
	return math.Pow(modUpgBasePrice, num/modUpgPowfDiv)
}

// Needs :
// True when this module requires a crew member of the given type and
// does not currently have one.
func (m *ShipModule) Needs(ctype CrewMemberType) bool {
	switch m.ModType {
	case Miner, GasSucker:
		return ctype == Operator && m.Operator == nil
	default:
		return false
	}
}

// ExtractionRate :
// Units of `resource` per second a module of this rank, operated by a
// crew member of `oprank`, extracts from a planet with the given
// `density`: `(density / (difficulty/oprank))^(rank^0.25)`.
func (m *ShipModule) ExtractionRate(resource Resource, oprank uint8, density float64) float64 {
	pow := math.Pow(float64(m.Rank), extractionRateRankPowf)
	difficulty := resource.ExtractionDifficulty()
	return math.Pow(density/(difficulty/float64(oprank)), pow)
}

// CanExtract :
// Every (resource, rate) pair this module currently produces given its
// operator's rank and the planet it is sitting on. Empty when unoccupied.
func (m *ShipModule) CanExtract(crew Crew, planet *Planet) map[Resource]float64 {
	rates := make(map[Resource]float64)
	if m.Operator == nil {
		return rates
	}

	cm, ok := crew[*m.Operator]
	if !ok {
		return rates
	}

	for _, r := range AllResources {
		density := planet.ResourceDensity(r)
		if density <= 0 {
			continue
		}

		var admits bool
		switch m.ModType {
		case Miner:
			admits = r.Mineable(cm.Rank)
		case GasSucker:
			admits = r.Suckable(cm.Rank)
		}
		if !admits {
			continue
		}

		rates[r] = m.ExtractionRate(r, cm.Rank, density)
	}

	return rates
}
