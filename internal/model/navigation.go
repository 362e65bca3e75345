package model

// Travel :
// A requested destination, not yet committed to a ship's state.
type Travel struct {
	Destination Coord
}

// TravelCost :
// The resource cost of carrying out a `Travel` for a specific ship,
// computed from its current stats and position.
type TravelCost struct {
	Direction        Vector
	Distance         float64
	Duration         float64
	FuelConsumption  float64
	HullUsage        float64
}

// ComputeCosts :
// Derives the cost of travelling to `t.Destination` from `ship`'s
// current position and stats. Fails if the ship has no pilot (zero
// speed) or if the destination equals the current position.
func (t *Travel) ComputeCosts(ship *Ship) (TravelCost, *GameError) {
	if ship.Pilot == nil {
		return TravelCost{}, ErrNoPilotAssigned()
	}

	distance := Distance(ship.Position, t.Destination)
	if distance == 0 {
		return TravelCost{}, ErrNullDistance()
	}

	direction := Direction(ship.Position, t.Destination)
	duration := distance / ship.Stats.Speed
	return TravelCost{
		Direction:       direction,
		Distance:        distance,
		Duration:        duration,
		FuelConsumption: ship.Stats.FuelConsumption * duration,
		HullUsage:       ship.Stats.HullUsageRate * distance,
	}, nil
}

// HaveEnough :
// Whether `ship` carries enough fuel and hull headroom to pay this
// cost.
func (c *TravelCost) HaveEnough(ship *Ship) bool {
	return ship.FuelTank >= c.FuelConsumption &&
		(ship.HullDecayCapacity-ship.HullDecay) >= c.HullUsage
}

// FlightData :
// The in-progress state of a ship travelling between two coordinates.
type FlightData struct {
	Start       Coord
	Destination Coord
	Direction   Vector
	DistDone    float64
	DistTot     float64
}

// NewFlightData :
// Builds the in-flight state from a committed `Travel` and its cost.
func NewFlightData(start Coord, cost TravelCost, travel Travel) FlightData {
	return FlightData{
		Start:       start,
		Destination: travel.Destination,
		Direction:   cost.Direction,
		DistDone:    0,
		DistTot:     cost.Distance,
	}
}
