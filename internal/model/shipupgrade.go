package model

const cargoExpansionCap = 100.0
const reactorUpgradePower = 1.0
const hullUpgradeCap = 100.0

// ShipUpgrade :
// Tagged variant over the fixed-increment hull upgrades a station can
// sell for an idle ship.
type ShipUpgrade int

const (
	CargoExpansion ShipUpgrade = iota
	ReactorUpgrade
	HullUpgrade
)

func (u ShipUpgrade) String() string {
	switch u {
	case CargoExpansion:
		return "CargoExpansion"
	case ReactorUpgrade:
		return "ReactorUpgrade"
	case HullUpgrade:
		return "HullUpgrade"
	default:
		return "Unknown"
	}
}

// ParseShipUpgrade :
// The inverse of String, used by the HTTP collaborator to turn a path
// segment back into a ShipUpgrade.
func ParseShipUpgrade(s string) (ShipUpgrade, *GameError) {
	for _, u := range []ShipUpgrade{CargoExpansion, ReactorUpgrade, HullUpgrade} {
		if u.String() == s {
			return u, nil
		}
	}
	return 0, ErrInvalidArgument("upgrade")
}

// Description :
// Short human-readable label, used in upgrade listings.
func (u ShipUpgrade) Description() string {
	switch u {
	case CargoExpansion:
		return "adds 100 units of cargo capacity"
	case ReactorUpgrade:
		return "adds 1 unit of reactor power"
	case HullUpgrade:
		return "adds 100 units of hull decay capacity"
	default:
		return ""
	}
}

// Price :
// Flat purchase price of this upgrade, independent of the ship it is
// applied to.
func (u ShipUpgrade) Price() float64 {
	switch u {
	case CargoExpansion:
		return cargoExpansionCap * cargoCapPrice
	case ReactorUpgrade:
		return reactorUpgradePower * reactorPowerPrice
	case HullUpgrade:
		return hullUpgradeCap * hullDecayCapPrice
	default:
		return 0
	}
}

// Install :
// Applies the upgrade to `ship` in place. Must only be called once the
// caller has already confirmed and debited the price.
func (u ShipUpgrade) Install(ship *Ship) {
	switch u {
	case CargoExpansion:
		ship.Cargo.Capacity += cargoExpansionCap
	case ReactorUpgrade:
		ship.ReactorPower += uint16(reactorUpgradePower)
	case HullUpgrade:
		ship.HullDecayCapacity += hullUpgradeCap
	}
	ship.UpdatePerfStats()
}
