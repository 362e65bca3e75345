package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
)

func nextIdCounter() func() model.ShipId {
	var next model.ShipId
	return func() model.ShipId {
		next++
		return next
	}
}

func TestStation_NewStation_ShipyardAlwaysHasThreeShips(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())

	assert.Len(t, station.Shipyard, 3)
}

func TestStation_NextCrewId_NeverReused(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())

	a := station.NextCrewId()
	b := station.NextCrewId()

	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}

func TestStation_AssignTrader_RejectsNonIdleMember(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())

	err := station.AssignTrader(999)

	require.NotNil(t, err)
}

func TestStation_AssignTrader_AcceptsAnyIdleMemberType(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())
	id, _ := station.HireCrewMember(model.Pilot)

	err := station.AssignTrader(id)

	require.Nil(t, err)
	require.NotNil(t, station.Trader)
	assert.Equal(t, id, *station.Trader)
	_, stillIdle := station.IdleCrew[id]
	assert.False(t, stillIdle, "assigned member should be moved out of idle_crew")
}

func TestStation_HireCrewMember_StagesIntoIdleCrew(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())

	id, member := station.HireCrewMember(model.Operator)

	idle, ok := station.IdleCrew[id]
	require.True(t, ok)
	assert.Same(t, member, idle)
	assert.Empty(t, station.Crew, "a hired member is not yet assigned anywhere")
}

func TestStation_RefuelShip_RejectsEmptyCargo(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())
	ship := model.LightShip(1, model.Coord{})

	_, err := station.RefuelShip(&ship)

	require.NotNil(t, err)
}

func TestStation_RefuelShip_TransfersUpToTankHeadroom(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())
	station.Cargo.AddResource(model.Fuel, 5)
	ship := model.LightShip(1, model.Coord{})
	ship.FuelTank = 0

	added, err := station.RefuelShip(&ship)

	require.Nil(t, err)
	assert.Equal(t, added, ship.FuelTank)
	assert.LessOrEqual(t, added, ship.FuelTankCapacity)
}

func TestStation_RepairShip_RejectsEmptyCargo(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())
	ship := model.LightShip(1, model.Coord{})

	_, err := station.RepairShip(&ship)

	require.NotNil(t, err)
}

func TestStation_CargoExpansionPrice_RisesWithCapacity(t *testing.T) {
	station := model.NewStation(1, model.Coord{}, nextIdCounter())
	before := station.CargoExpansionPrice()

	station.ExpandCargo(5000)

	assert.Greater(t, station.CargoExpansionPrice(), before)
}
