package model

import "math"

const stationInitCargo = 1000.0
const cargoBasePrice = 2.0
const cargoPriceIncDiv = 1000.0

// StationId :
// Identifier of a station, unique across the galaxy.
type StationId uint64

// Station :
// A docking point sitting at a fixed coordinate. Holds a shipyard of
// three ships for sale, a cargo hold fed by unloading ships, and an
// optional trader whose rank sets the market fee rate applied to buys
// and sells at this station.
type Station struct {
	Id       StationId
	Position Coord
	Cargo    Cargo
	Crew     Crew
	IdleCrew Crew
	Trader   *CrewId
	Shipyard [3]Ship

	nextCrewId CrewId
}

// NewStation :
// A freshly generated station: empty cargo hold at the base capacity,
// no trader, and the three standard shipyard tiers.
func NewStation(id StationId, position Coord, nextShipId func() ShipId) Station {
	return Station{
		Id:       id,
		Position: position,
		Cargo:    NewCargo(stationInitCargo),
		Crew:     make(Crew),
		IdleCrew: make(Crew),
		Shipyard: InitShipyard(nextShipId, position),
	}
}

// StationInfo :
// Client-facing view of a station.
type StationInfo struct {
	Id       StationId
	Position Coord
}

// Scan :
// Produces the position-only view handed back to scan commands.
func (s *Station) Scan() StationInfo {
	return StationInfo{Id: s.Id, Position: s.Position}
}

// NextCrewId :
// Allocates the next crew id hired at this station. Monotonically
// increasing, never reused.
func (s *Station) NextCrewId() CrewId {
	s.nextCrewId++
	return s.nextCrewId
}

// CargoExpansionPrice :
// Cost per unit of cargo capacity added by BuyCargo, rising
// exponentially with the station's current capacity:
// `2.0^((capacity-1000)/1000)`.
func (s *Station) CargoExpansionPrice() float64 {
	return math.Pow(cargoBasePrice, (s.Cargo.Capacity-stationInitCargo)/cargoPriceIncDiv)
}

// BuyCargoPrice :
// Price to add `units` of cargo capacity; does not itself debit money
// or mutate state, callers apply both once the charge is confirmed.
func (s *Station) BuyCargoPrice(units float64) float64 {
	return units * s.CargoExpansionPrice()
}

// ExpandCargo :
// Commits a previously priced cargo expansion.
func (s *Station) ExpandCargo(units float64) {
	s.Cargo.Capacity += units
}

// AssignTrader :
// Promotes the idle crew member at `id` to this station's trader,
// moving them from idle_crew into the station's active crew. Any idle
// member can be designated; rank alone determines the fee rate charged
// on trades here.
func (s *Station) AssignTrader(id CrewId) *GameError {
	cm, ok := s.IdleCrew[id]
	if !ok {
		return ErrCrewMemberNotIdle(id)
	}
	delete(s.IdleCrew, id)
	s.Crew[id] = cm
	s.Trader = &id
	return nil
}

// PeekIdleCrew :
// Looks up an idle crew member without removing them, so a caller can
// validate type/target before committing to the move.
func (s *Station) PeekIdleCrew(id CrewId) (*CrewMember, *GameError) {
	cm, ok := s.IdleCrew[id]
	if !ok {
		return nil, ErrCrewMemberNotIdle(id)
	}
	return cm, nil
}

// TakeIdleCrew :
// Removes and returns an idle crew member, assumed already validated
// by a prior PeekIdleCrew call.
func (s *Station) TakeIdleCrew(id CrewId) *CrewMember {
	cm := s.IdleCrew[id]
	delete(s.IdleCrew, id)
	return cm
}

// HireCrewMember :
// Adds a fresh rank-1 crew member of the given type to this station's
// idle_crew, for a player to later assign as a pilot, operator, or
// trader.
func (s *Station) HireCrewMember(memberType CrewMemberType) (CrewId, *CrewMember) {
	id := s.NextCrewId()
	member := NewCrewMember(memberType)
	s.IdleCrew[id] = &member
	return id, &member
}

// RefuelShip :
// Transfers `min(fuel in cargo, ship's tank headroom)` of Fuel from
// this station's cargo into `ship`'s tank. Returns the quantity added.
func (s *Station) RefuelShip(ship *Ship) (float64, *GameError) {
	qty, ok := s.Cargo.Resources[Fuel]
	if !ok || qty == 0 {
		return 0, ErrNoFuelInCargo()
	}

	needed := ship.FuelTankCapacity - ship.FuelTank
	added := s.Cargo.Unload(Fuel, math.Min(needed, qty))
	ship.FuelTank += added
	return added, nil
}

// RepairShip :
// Transfers `min(hull plate in cargo, ship's hull damage)` of
// HullPlate from this station's cargo, reducing `ship`'s hull decay.
// Returns the quantity used.
func (s *Station) RepairShip(ship *Ship) (float64, *GameError) {
	qty, ok := s.Cargo.Resources[HullPlate]
	if !ok || qty == 0 {
		return 0, ErrNoHullPlateInCargo()
	}

	amnt := math.Min(ship.HullDecay, qty)
	if amnt == 0 {
		return 0, nil
	}
	removed := s.Cargo.Unload(HullPlate, amnt)
	ship.HullDecay -= removed
	return removed, nil
}
