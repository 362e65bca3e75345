package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
	"simeis/pkg/arguments"
	"simeis/pkg/logger"
)

func newDriverTestWorld(t *testing.T) *World {
	t.Helper()
	log := logger.NewStdLogger("test", "127.0.0.1")
	t.Cleanup(log.Release)
	return New(arguments.SimulationConfig{Seed: 99, StartingMoney: 30000}, log)
}

func TestDriver_StepPlayer_BillsWagesEachTick(t *testing.T) {
	w := newDriverTestWorld(t)
	p := model.NewPlayer("billed", 1000)
	ship := model.LightShip(1, model.Coord{})
	pilot := model.NewCrewMember(model.Pilot)
	ship.Crew[1] = &pilot
	p.AddShip(ship)
	lp := &lockedPlayer{player: &p}

	w.stepPlayer(p.Id, lp)

	assert.Less(t, lp.player.Money, 1000.0)
}

func TestDriver_StepPlayer_SkipsAlreadyLostPlayers(t *testing.T) {
	w := newDriverTestWorld(t)
	p := model.NewPlayer("gone", -1)
	p.Lost = true
	lp := &lockedPlayer{player: &p}

	w.stepPlayer(p.Id, lp)

	assert.Equal(t, -1.0, lp.player.Money, "a lost player's balance should never be touched again")
}

func TestDriver_StepPlayer_EmitsGameLostOnceBalanceGoesNegative(t *testing.T) {
	w := newDriverTestWorld(t)
	id, key, err := w.RegisterPlayer("about-to-lose")
	require.Nil(t, err)

	lp := w.players[id]
	lp.mu.Lock()
	lp.player.Money = 0.1
	ship := model.HeavyShip(1, model.Coord{})
	pilot := model.NewCrewMember(model.Pilot)
	pilot.Rank = 10
	ship.Crew[1] = &pilot
	lp.player.AddShip(ship)
	lp.mu.Unlock()

	w.stepPlayer(id, lp)

	require.True(t, lp.player.Lost)

	events, err := w.DrainSyslog(key)
	require.Nil(t, err)

	found := false
	for _, e := range events {
		if e.Kind == model.GameLost {
			found = true
		}
	}
	assert.True(t, found, "going negative this tick should emit exactly one GameLost event")
}

func TestDriver_StepShip_FinishesFlightExactlyAtDestination(t *testing.T) {
	w := newDriverTestWorld(t)
	p := model.NewPlayer("navigator", 100000)
	ship := model.MediumShip(1, model.Coord{})
	pilot := model.NewCrewMember(model.Pilot)
	pilot.Rank = 5
	ship.Crew[1] = &pilot
	ship.FuelTank = ship.FuelTankCapacity
	ship.UpdatePerfStats()
	p.AddShip(ship)

	dest := model.Coord{X: 50, Y: 0, Z: 0}
	_, terr := p.Ships[1].SetTravel(dest)
	require.Nil(t, terr)

	for i := 0; i < 100000 && p.Ships[1] != nil && p.Ships[1].State.Tag == model.InFlight; i++ {
		w.stepShip(p.Id, &p, 1, p.Ships[1])
	}

	require.NotNil(t, p.Ships[1])
	assert.Equal(t, model.Idle, p.Ships[1].State.Tag)
	assert.Equal(t, dest, p.Ships[1].Position)
}

func TestDriver_StepShip_RemovesShipOnFuelExhaustion(t *testing.T) {
	w := newDriverTestWorld(t)
	p := model.NewPlayer("stranded", 100000)
	ship := model.MediumShip(1, model.Coord{})
	pilot := model.NewCrewMember(model.Pilot)
	pilot.Rank = 5
	ship.Crew[1] = &pilot
	ship.UpdatePerfStats()
	ship.FuelTank = ship.FuelTankCapacity
	p.AddShip(ship)

	_, terr := p.Ships[1].SetTravel(model.Coord{X: 100000, Y: 0, Z: 0})
	require.Nil(t, terr)
	p.Ships[1].FuelTank = 0.0001

	w.stepShip(p.Id, &p, 1, p.Ships[1])

	_, err := p.Ship(1)
	require.NotNil(t, err, "a destroyed ship should be removed from the roster")
}
