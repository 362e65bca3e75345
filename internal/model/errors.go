package model

import "fmt"

// Kind :
// Identifies the category of a `GameError` returned by the core. The
// HTTP collaborator reports a `Kind`'s name in its response's `"type"`
// field, always with HTTP status 200; it never parses the error message
// itself.
type Kind int

const (
	// Identity errors.
	NoPlayerKey Kind = iota
	NoPlayerWithKey
	PlayerNotFound
	PlayerAlreadyExists
	PlayerLost

	// Reference errors.
	ShipNotFound
	NoSuchStation
	NoSuchModule
	CrewMemberNotFound

	// State errors.
	ShipNotIdle
	ShipNotExtracting
	ShipNotInStation
	CrewMemberNotIdle
	NoTraderAssigned
	NoPilotAssigned
	CrewNotNeeded
	WrongCrewType

	// Resource errors.
	NotEnoughMoney
	CargoFull
	BuyNothing
	SellNothing
	NoFuelInCargo
	NoHullPlateInCargo

	// Travel errors.
	NullDistance
	CannotPerformTravel
	CannotExtractWithoutPlanet

	// Input errors.
	InvalidArgument
)

// String :
// Gives a short machine-stable name for the kind, used by the HTTP
// collaborator's `"type"` response field.
func (k Kind) String() string {
	switch k {
	case NoPlayerKey:
		return "NoPlayerKey"
	case NoPlayerWithKey:
		return "NoPlayerWithKey"
	case PlayerNotFound:
		return "PlayerNotFound"
	case PlayerAlreadyExists:
		return "PlayerAlreadyExists"
	case PlayerLost:
		return "PlayerLost"
	case ShipNotFound:
		return "ShipNotFound"
	case NoSuchStation:
		return "NoSuchStation"
	case NoSuchModule:
		return "NoSuchModule"
	case CrewMemberNotFound:
		return "CrewMemberNotFound"
	case ShipNotIdle:
		return "ShipNotIdle"
	case ShipNotExtracting:
		return "ShipNotExtracting"
	case ShipNotInStation:
		return "ShipNotInStation"
	case CrewMemberNotIdle:
		return "CrewMemberNotIdle"
	case NoTraderAssigned:
		return "NoTraderAssigned"
	case NoPilotAssigned:
		return "NoPilotAssigned"
	case CrewNotNeeded:
		return "CrewNotNeeded"
	case WrongCrewType:
		return "WrongCrewType"
	case NotEnoughMoney:
		return "NotEnoughMoney"
	case CargoFull:
		return "CargoFull"
	case BuyNothing:
		return "BuyNothing"
	case SellNothing:
		return "SellNothing"
	case NoFuelInCargo:
		return "NoFuelInCargo"
	case NoHullPlateInCargo:
		return "NoHullPlateInCargo"
	case NullDistance:
		return "NullDistance"
	case CannotPerformTravel:
		return "CannotPerformTravel"
	case CannotExtractWithoutPlanet:
		return "CannotExtractWithoutPlanet"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// GameError :
// The single error type returned by the core. It carries a `Kind` plus
// whatever contextual fields are relevant to that kind (an id, an
// amount, a name) so the message can be rebuilt without the caller
// needing to parse it.
type GameError struct {
	kind   Kind
	fields []interface{}
}

func newErr(kind Kind, fields ...interface{}) *GameError {
	return &GameError{kind: kind, fields: fields}
}

// Kind :
// Returns the tag identifying this error's category.
func (e *GameError) Kind() Kind {
	return e.kind
}

// Error :
// Implements the standard `error` interface with a human-readable
// message. Mirrors the `errmsg` projection of the original's tagged
// error enum.
func (e *GameError) Error() string {
	switch e.kind {
	case NoPlayerKey:
		return "no player key provided with the request"
	case NoPlayerWithKey:
		return "no player with this key exists"
	case PlayerNotFound:
		return fmt.Sprintf("no player was found with id %v", e.fields[0])
	case PlayerAlreadyExists:
		return fmt.Sprintf("player %v already exists under id %v", e.fields[1], e.fields[0])
	case PlayerLost:
		return "this player lost the game and cannot play anymore"
	case ShipNotFound:
		return fmt.Sprintf("ship %v not found", e.fields[0])
	case NoSuchStation:
		return fmt.Sprintf("no station %v owned", e.fields[0])
	case NoSuchModule:
		return fmt.Sprintf("ship module %v does not exist", e.fields[0])
	case CrewMemberNotFound:
		return fmt.Sprintf("crew member %v not found", e.fields[0])
	case ShipNotIdle:
		return "the ship is already occupied with a task"
	case ShipNotExtracting:
		return "this ship is not extracting"
	case ShipNotInStation:
		return "this ship is not docked on station"
	case CrewMemberNotIdle:
		return fmt.Sprintf("crew member %v is not idle", e.fields[0])
	case NoTraderAssigned:
		return "this station does not have a trader assigned"
	case NoPilotAssigned:
		return "no pilot is assigned on this ship"
	case CrewNotNeeded:
		return "this crew member is not needed here"
	case WrongCrewType:
		return fmt.Sprintf("this requires a crew member of type %v", e.fields[0])
	case NotEnoughMoney:
		return fmt.Sprintf("not enough money, need %v, got %v", e.fields[1], e.fields[0])
	case CargoFull:
		return "the cargo is full"
	case BuyNothing:
		return "attempted to buy 0 units, or not enough cargo space"
	case SellNothing:
		return "attempted to sell 0 units, or none in cargo"
	case NoFuelInCargo:
		return "no fuel in the station cargo"
	case NoHullPlateInCargo:
		return "no hull plate in the station cargo"
	case NullDistance:
		return "already at these coordinates"
	case CannotPerformTravel:
		return "this travel cannot be performed in the ship's current state"
	case CannotExtractWithoutPlanet:
		return "cannot extract, this ship is not on a planet"
	case InvalidArgument:
		return fmt.Sprintf("argument %v has an invalid value", e.fields[0])
	default:
		return "unknown error"
	}
}

// Constructors, one per kind, carrying whatever context that kind needs.

func ErrNoPlayerKey() *GameError                          { return newErr(NoPlayerKey) }
func ErrNoPlayerWithKey() *GameError                       { return newErr(NoPlayerWithKey) }
func ErrPlayerNotFound(id PlayerId) *GameError              { return newErr(PlayerNotFound, id) }
func ErrPlayerAlreadyExists(id PlayerId, name string) *GameError {
	return newErr(PlayerAlreadyExists, id, name)
}
func ErrPlayerLost() *GameError                      { return newErr(PlayerLost) }
func ErrShipNotFound(id ShipId) *GameError            { return newErr(ShipNotFound, id) }
func ErrNoSuchStation(id StationId) *GameError        { return newErr(NoSuchStation, id) }
func ErrNoSuchModule(id ShipModuleId) *GameError      { return newErr(NoSuchModule, id) }
func ErrCrewMemberNotFound(id CrewId) *GameError      { return newErr(CrewMemberNotFound, id) }
func ErrShipNotIdle() *GameError                      { return newErr(ShipNotIdle) }
func ErrShipNotExtracting() *GameError                { return newErr(ShipNotExtracting) }
func ErrShipNotInStation() *GameError                 { return newErr(ShipNotInStation) }
func ErrCrewMemberNotIdle(id CrewId) *GameError       { return newErr(CrewMemberNotIdle, id) }
func ErrNoTraderAssigned() *GameError                 { return newErr(NoTraderAssigned) }
func ErrNoPilotAssigned() *GameError                  { return newErr(NoPilotAssigned) }
func ErrCrewNotNeeded() *GameError                    { return newErr(CrewNotNeeded) }
func ErrWrongCrewType(expected CrewMemberType) *GameError {
	return newErr(WrongCrewType, expected)
}
func ErrNotEnoughMoney(have, need float64) *GameError { return newErr(NotEnoughMoney, have, need) }
func ErrCargoFull() *GameError                        { return newErr(CargoFull) }
func ErrBuyNothing() *GameError                       { return newErr(BuyNothing) }
func ErrSellNothing() *GameError                      { return newErr(SellNothing) }
func ErrNoFuelInCargo() *GameError                    { return newErr(NoFuelInCargo) }
func ErrNoHullPlateInCargo() *GameError                { return newErr(NoHullPlateInCargo) }
func ErrNullDistance() *GameError                     { return newErr(NullDistance) }
func ErrCannotPerformTravel() *GameError               { return newErr(CannotPerformTravel) }
func ErrCannotExtractWithoutPlanet() *GameError        { return newErr(CannotExtractWithoutPlanet) }
func ErrInvalidArgument(name string) *GameError        { return newErr(InvalidArgument, name) }
