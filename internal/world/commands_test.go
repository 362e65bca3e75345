package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
)

func TestCommands_BuyShip_DebitsPriceAndAddsToRoster(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("buyer")
	require.Nil(t, err)

	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})
	before, err := w.PlayerStatus(key)
	require.Nil(t, err)

	shipID, err := w.BuyShip(key, stationID, 0)

	require.Nil(t, err)
	after, err := w.PlayerStatus(key)
	require.Nil(t, err)

	assert.Less(t, after.Money, before.Money, "buying a ship should debit its price")
	assert.Contains(t, after.Ships, shipID)
}

func TestCommands_BuyShip_RefillsShipyardSlot(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("buyer2")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	firstID, err := w.BuyShip(key, stationID, 0)
	require.Nil(t, err)

	view, err := w.StationStatus(stationID)
	require.Nil(t, err)
	assert.NotEqual(t, firstID, view.Shipyard[0].Id, "the slot should hold a freshly generated replacement ship")
}

func TestCommands_BuyShip_RejectsOutOfRangeSlot(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("buyer3")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	_, err = w.BuyShip(key, stationID, 3)

	require.NotNil(t, err)
}

func TestCommands_UnloadCargo_RejectsWhenShipNotAtStation(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("hauler")
	require.Nil(t, err)
	stationA := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})
	stationB := w.CreateStation(model.Coord{X: 9999, Y: 9999, Z: 9999})

	shipID, err := w.BuyShip(key, stationA, 0)
	require.Nil(t, err)

	_, err = w.UnloadCargo(key, shipID, stationB, model.Stone, 10)

	require.NotNil(t, err)
}

func TestCommands_HireCrewMember_DebitsFlatPriceAndStagesIdle(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("captain")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	before, err := w.PlayerStatus(key)
	require.Nil(t, err)

	crewID, err := w.HireCrewMember(key, stationID, model.Pilot)
	require.Nil(t, err)

	after, err := w.PlayerStatus(key)
	require.Nil(t, err)
	assert.Equal(t, before.Money-500.0, after.Money)
	assert.NotZero(t, crewID)
}

func TestCommands_AssignPilot_MovesHireFromIdleCrewOntoShip(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("captain2")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})
	shipID, err := w.BuyShip(key, stationID, 0)
	require.Nil(t, err)

	crewID, err := w.HireCrewMember(key, stationID, model.Pilot)
	require.Nil(t, err)

	err = w.AssignPilot(key, stationID, shipID, crewID)
	require.Nil(t, err)

	err = w.AssignPilot(key, stationID, shipID, crewID)
	require.NotNil(t, err, "the same crew id is no longer idle once assigned")
}

func TestCommands_AssignPilot_RejectsWrongCrewType(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("captain3")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})
	shipID, err := w.BuyShip(key, stationID, 0)
	require.Nil(t, err)

	crewID, err := w.HireCrewMember(key, stationID, model.Trader)
	require.Nil(t, err)

	err = w.AssignPilot(key, stationID, shipID, crewID)

	require.NotNil(t, err)
}

func TestCommands_AssignStationTrader_AcceptsAnyIdleMember(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("trader-owner")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	crewID, err := w.HireCrewMember(key, stationID, model.Pilot)
	require.Nil(t, err)

	err = w.AssignStationTrader(key, stationID, crewID)

	require.Nil(t, err)
}

func TestCommands_AssignStationTrader_RejectsNonIdleMember(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("trader-owner2")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	err = w.AssignStationTrader(key, stationID, 999)

	require.NotNil(t, err)
}

func TestCommands_BuyResource_ClampsToCargoSpace(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("miner")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})
	shipID, err := w.BuyShip(key, stationID, 0)
	require.Nil(t, err)

	shipView, err := w.ShipStatus(key, shipID)
	require.Nil(t, err)
	hugeAmount := shipView.Cargo.Capacity * 1000

	_, err = w.BuyResource(key, shipID, stationID, model.Fuel, hugeAmount)

	require.Nil(t, err)
	after, err := w.ShipStatus(key, shipID)
	require.Nil(t, err)
	assert.LessOrEqual(t, after.Cargo.Usage, after.Cargo.Capacity+1e-6)
}

func TestCommands_SetShipTravel_RejectsWithoutPilot(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("pilotless")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})
	shipID, err := w.BuyShip(key, stationID, 0)
	require.Nil(t, err)

	err = w.SetShipTravel(key, shipID, model.Coord{X: 500, Y: 0, Z: 0})

	require.NotNil(t, err)
}

func TestCommands_StartExtraction_RejectsWithoutPlanetUnderneath(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("extractor")
	require.Nil(t, err)
	stationID := w.CreateStation(model.Coord{X: 123456, Y: 654321, Z: 111}) // unlikely to coincide with a generated planet
	shipID, err := w.BuyShip(key, stationID, 0)
	require.Nil(t, err)

	err = w.StartExtraction(key, shipID)

	require.NotNil(t, err)
}
