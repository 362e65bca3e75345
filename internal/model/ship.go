package model

const pilotFuelShare = 5.0 // rank 10 = 4/5 fuel consumption
const hullUsageBase = 0.05
const reactorSpeedPerPower = 50.0

const fuelTankCapPrice = 3.0
const cargoCapPrice = 10.0
const hullDecayCapPrice = 5.0
const reactorPowerPrice = 300.0

// ShipId :
// Identifier of a ship, unique across the whole galaxy.
type ShipId uint64

// ShipStateTag :
// Which of the three states a ship is currently in.
type ShipStateTag int

const (
	Idle ShipStateTag = iota
	InFlight
	Extracting
)

// ShipState :
// The ship's current activity. Exactly one of `Flight`/`Extraction` is
// populated depending on `Tag`.
type ShipState struct {
	Tag        ShipStateTag
	Flight     *FlightData
	Extraction map[Resource]float64
}

// IdleState :
// The default, inactive ship state.
func IdleState() ShipState {
	return ShipState{Tag: Idle}
}

// ShipStats :
// Derived performance figures, recomputed whenever pilot, reactor
// power, or cargo changes.
type ShipStats struct {
	Speed           float64
	FuelConsumption float64
	HullUsageRate   float64
}

// Ship :
// A single ship: its hull, tanks, crew, cargo, modules, and current
// activity.
type Ship struct {
	Id                ShipId
	ReactorPower      uint16
	FuelTankCapacity  float64
	FuelTank          float64
	HullDecayCapacity float64
	HullDecay         float64

	Position Coord
	Crew     Crew
	Cargo    Cargo
	Modules  map[ShipModuleId]*ShipModule
	Pilot    *CrewId
	State    ShipState
	Stats    ShipStats

	nextModuleId ShipModuleId
}

// newShipHull :
// Shared constructor for a hull with no crew, modules, or fuel/hull
// wear yet; tiered constructors and `RandomShip` fill in the rest.
func newShipHull(id ShipId, position Coord, reactorPower uint16, fuelCap, cargoCap, hullCap float64) Ship {
	return Ship{
		Id:                id,
		Position:          position,
		ReactorPower:      reactorPower,
		FuelTankCapacity:  fuelCap,
		HullDecayCapacity: hullCap,
		Cargo:             NewCargo(cargoCap),
		Crew:              make(Crew),
		Modules:           make(map[ShipModuleId]*ShipModule),
		State:             IdleState(),
	}
}

// LightShip, MediumShip, HeavyShip :
// The three fixed shipyard tiers.
func LightShip(id ShipId, position Coord) Ship {
	return newShipHull(id, position, 1, 1000, 500, 3000)
}

func MediumShip(id ShipId, position Coord) Ship {
	return newShipHull(id, position, 3, 2000, 1000, 6000)
}

func HeavyShip(id ShipId, position Coord) Ship {
	return newShipHull(id, position, 10, 4000, 3000, 20000)
}

// InitShipyard :
// The three-ship starting lineup for a newly created station.
func InitShipyard(nextId func() ShipId, position Coord) [3]Ship {
	return [3]Ship{
		LightShip(nextId(), position),
		MediumShip(nextId(), position),
		HeavyShip(nextId(), position),
	}
}

// RandomShip :
// A random replacement ship generated whenever a shipyard slot is sold,
// drawn uniformly from the ranges the original design space specifies.
func RandomShip(id ShipId, position Coord, rng func(lo, hi float64) float64) Ship {
	reactor := uint16(rng(1, 10))
	fuelCap := rng(100, 10000)
	cargoCap := rng(100, 10000)
	hullCap := rng(1000, 50000)
	return newShipHull(id, position, reactor, fuelCap, cargoCap, hullCap)
}

// ComputePrice :
// Purchase price of this ship as configured right now: reactor, tanks,
// cargo, hull, plus every installed module's total cost.
func (s *Ship) ComputePrice() float64 {
	price := float64(s.ReactorPower) * reactorPowerPrice
	price += s.FuelTankCapacity * fuelTankCapPrice
	price += s.Cargo.Capacity * cargoCapPrice
	price += s.HullDecayCapacity * hullDecayCapPrice
	for _, m := range s.Modules {
		price += m.TotalCost
	}
	return price
}

// UpdatePerfStats :
// Recomputes `Stats` from reactor power, pilot, and cargo. Must be
// called after any of those change.
func (s *Ship) UpdatePerfStats() {
	stats := ShipStats{HullUsageRate: hullUsageBase}
	stats.FuelConsumption = float64(s.ReactorPower)

	if s.Pilot != nil {
		pilot := s.Crew[*s.Pilot]
		totalShare := pilotFuelShare * 10.0
		stats.FuelConsumption *= (totalShare - float64(pilot.Rank)) / totalShare
		stats.Speed = float64(s.ReactorPower) * reactorSpeedPerPower * float64(pilot.Rank)
	} else {
		stats.Speed = 0
	}
	stats.Speed *= 1 - s.Cargo.SlowingRatio()

	s.Stats = stats
}

// NextModuleId :
// Allocates the next module id for this ship. Monotonically
// increasing, never reused even after a module is removed.
func (s *Ship) NextModuleId() ShipModuleId {
	s.nextModuleId++
	return s.nextModuleId
}

// ComputeTravelCosts :
// Read-only variant of `SetTravel`: computes what a flight to
// `destination` would cost without committing to it.
func (s *Ship) ComputeTravelCosts(destination Coord) (TravelCost, *GameError) {
	if s.State.Tag != Idle {
		return TravelCost{}, ErrShipNotIdle()
	}
	travel := Travel{Destination: destination}
	return travel.ComputeCosts(s)
}

// SetTravel :
// Idle -> InFlight. Rejected unless idle, with a pilot, a non-null
// distance, and sufficient fuel/hull budget.
func (s *Ship) SetTravel(destination Coord) (TravelCost, *GameError) {
	if s.State.Tag != Idle {
		return TravelCost{}, ErrShipNotIdle()
	}

	travel := Travel{Destination: destination}
	cost, err := travel.ComputeCosts(s)
	if err != nil {
		return TravelCost{}, err
	}
	if !cost.HaveEnough(s) {
		return TravelCost{}, ErrCannotPerformTravel()
	}

	flight := NewFlightData(s.Position, cost, travel)
	s.State = ShipState{Tag: InFlight, Flight: &flight}
	return cost, nil
}

// UpdateFlight :
// Advances an in-flight ship by `tdelta` seconds. `finished` reports
// that the ship reached its destination during this step, where it is
// then placed exactly; `destroyed` reports fuel or hull exhaustion, in
// which case the position is left as the previous step set it. The
// state is never changed here: the caller resets it to Idle on
// completion or removes a destroyed ship.
func (s *Ship) UpdateFlight(tdelta float64) (finished bool, destroyed bool) {
	data := s.State.Flight

	distDelta := s.Stats.Speed * tdelta
	data.DistDone += distDelta
	if data.DistDone >= data.DistTot {
		overflow := data.DistDone - data.DistTot
		data.DistDone -= overflow
		distDelta -= overflow
		tdelta -= overflow / s.Stats.Speed
		finished = true
	}

	s.FuelTank -= s.Stats.FuelConsumption * tdelta
	if s.FuelTank <= 0 {
		s.FuelTank = 0
		return finished, true
	}

	s.HullDecay += s.Stats.HullUsageRate * distDelta
	if s.HullDecay >= s.HullDecayCapacity {
		return finished, true
	}

	if finished {
		s.Position = data.Destination
	} else {
		s.Position = Translate(data.Start, data.Direction, data.DistDone)
	}
	return finished, false
}

// StartExtraction :
// Idle -> Extracting, only when docked over a known planet. The rate
// table sums every module's contribution.
func (s *Ship) StartExtraction(planet *Planet) (map[Resource]float64, *GameError) {
	if s.State.Tag != Idle {
		return nil, ErrShipNotIdle()
	}
	if planet == nil {
		return nil, ErrCannotExtractWithoutPlanet()
	}

	rates := make(map[Resource]float64)
	for _, m := range s.Modules {
		for r, rate := range m.CanExtract(s.Crew, planet) {
			rates[r] += rate
		}
	}

	s.State = ShipState{Tag: Extracting, Extraction: rates}
	return rates, nil
}

// StopExtraction :
// Extracting -> Idle by explicit request.
func (s *Ship) StopExtraction() *GameError {
	if s.State.Tag != Extracting {
		return ErrShipNotExtracting()
	}
	s.State = IdleState()
	return nil
}

// UpdateExtract :
// Advances an extracting ship by `tdelta` seconds, adding each rate's
// share into cargo. Returns true once cargo is full (the caller then
// stops the extraction and emits ExtractionStopped).
func (s *Ship) UpdateExtract(tdelta float64) bool {
	for r, rate := range s.State.Extraction {
		s.Cargo.AddResource(r, rate*tdelta)
	}
	return s.Cargo.IsFull()
}

// UnloadCargo :
// Moves `amnt` of `resource` from the ship's cargo into `station`'s,
// giving back whatever did not fit in the ship's own hold if the
// station cannot take it all.
func (s *Ship) UnloadCargo(resource Resource, amnt float64, station *Station) float64 {
	unloaded := s.Cargo.Unload(resource, amnt)
	if unloaded == 0 {
		return 0
	}

	added := station.Cargo.AddResource(resource, unloaded)
	if added < unloaded {
		s.Cargo.AddResource(resource, unloaded-added)
	}
	return added
}
