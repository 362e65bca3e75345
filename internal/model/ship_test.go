package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
)

func pilotedShip() model.Ship {
	ship := model.MediumShip(1, model.Coord{X: 0, Y: 0, Z: 0})
	crewID := model.CrewId(1)
	member := model.NewCrewMember(model.Pilot)
	member.Rank = 5
	ship.Crew[crewID] = &member
	ship.Pilot = &crewID
	ship.FuelTank = ship.FuelTankCapacity
	ship.UpdatePerfStats()
	return ship
}

func TestShip_SetTravel_RejectsWhenNotIdle(t *testing.T) {
	ship := pilotedShip()
	_, err := ship.SetTravel(model.Coord{X: 100, Y: 0, Z: 0})
	require.Nil(t, err)

	_, err = ship.SetTravel(model.Coord{X: 200, Y: 0, Z: 0})

	require.NotNil(t, err)
}

func TestShip_SetTravel_RejectsNullDistance(t *testing.T) {
	ship := pilotedShip()

	_, err := ship.SetTravel(ship.Position)

	require.NotNil(t, err)
}

func TestShip_SetTravel_RejectsWithoutPilot(t *testing.T) {
	ship := model.MediumShip(1, model.Coord{})
	ship.FuelTank = ship.FuelTankCapacity

	_, err := ship.SetTravel(model.Coord{X: 10, Y: 0, Z: 0})

	require.NotNil(t, err)
}

func TestShip_UpdateFlight_ArrivesExactlyAtDestination(t *testing.T) {
	ship := pilotedShip()
	dest := model.Coord{X: 500, Y: 0, Z: 0}
	_, err := ship.SetTravel(dest)
	require.Nil(t, err)

	finished := false
	destroyed := false
	for i := 0; i < 100000 && !finished && !destroyed; i++ {
		finished, destroyed = ship.UpdateFlight(0.05)
	}

	require.True(t, finished)
	require.False(t, destroyed)
	assert.Equal(t, dest, ship.Position)
}

func TestShip_UpdateFlight_FuelExhaustionDestroysShip(t *testing.T) {
	ship := pilotedShip()
	_, err := ship.SetTravel(model.Coord{X: 10000, Y: 0, Z: 0})
	require.Nil(t, err)
	ship.FuelTank = 0.001

	_, destroyed := ship.UpdateFlight(1.0)

	assert.True(t, destroyed)
	assert.Equal(t, 0.0, ship.FuelTank)
}

func TestShip_UpdateExtract_StopsAtFullCargo(t *testing.T) {
	ship := pilotedShip()
	planet := &model.Planet{Solid: true}

	opID := model.CrewId(2)
	operator := model.NewCrewMember(model.Operator)
	ship.Crew[opID] = &operator

	module := &model.ShipModule{ModType: model.Miner, Rank: 1, Operator: &opID}
	ship.Modules[1] = module

	_, err := ship.StartExtraction(planet)
	require.Nil(t, err)

	full := false
	for i := 0; i < 1000000 && !full; i++ {
		full = ship.UpdateExtract(1.0)
	}

	assert.True(t, full)
	assert.True(t, ship.Cargo.IsFull())
}

func TestShip_UnloadCargo_GivesBackWhatStationCannotTake(t *testing.T) {
	ship := pilotedShip()
	ship.Cargo.AddResource(model.Stone, 100)
	station := &model.Station{Cargo: model.NewCargo(1)}

	added := ship.UnloadCargo(model.Stone, 100, station)

	assert.Less(t, added, 100.0)
	assert.Greater(t, ship.Cargo.Resources[model.Stone], 0.0, "the part the station couldn't take should remain on the ship")
}
