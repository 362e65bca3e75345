package world

import (
	"simeis/internal/model"
	"simeis/pkg/background"
)

// tickSeconds :
// The fixed simulation timestep, in seconds, used for every per-tick
// formula regardless of how long the tick actually took on the wall
// clock. The outer loop paces real sleep time against the configured
// tick interval but never feeds measured elapsed time into the
// simulation math, so every tick advances the world by the same
// simulated time however long it took.
const tickSeconds = 0.05

// driver :
// Wraps the fixed-tempo background process advancing the whole
// simulation by one tick every `cfg.TickInterval`.
type driver struct {
	world   *World
	process *background.Process
}

// StartDriver :
// Builds and starts the tick loop. The returned driver's Stop method
// blocks until the in-flight tick, if any, finishes.
func (w *World) StartDriver() (*driver, error) {
	d := &driver{world: w}
	d.process = background.NewProcess(w.cfg.TickInterval, w.log).WithModule("driver").WithOperation(d.runTick)
	if err := d.process.Start(); err != nil {
		return nil, err
	}
	return d, nil
}

// Stop :
// Terminates the tick loop, waiting for any in-flight tick to finish.
func (d *driver) Stop() {
	d.process.Stop()
}

// runTick :
// One fixed-Δ simulation step: one drain of the pending syslog event
// channel, market drift, then every player's wage billing and
// threshold events, then every ship's flight/extraction stepping and
// destruction handling. Matches `background.OperationFunc` so it can
// drive the process directly.
func (d *driver) runTick() (bool, error) {
	w := d.world

	w.drainOneEvent()
	w.marketDrift(tickSeconds)

	w.playersMu.RLock()
	targets := make([]*lockedPlayer, 0, len(w.players))
	ids := make([]model.PlayerId, 0, len(w.players))
	for id, lp := range w.players {
		targets = append(targets, lp)
		ids = append(ids, id)
	}
	w.playersMu.RUnlock()

	for i, lp := range targets {
		w.stepPlayer(ids[i], lp)
	}

	w.tick++
	return true, nil
}

// stepPlayer :
// Advances a single player's wages, ships, and syslog for one tick.
func (w *World) stepPlayer(id model.PlayerId, lp *lockedPlayer) {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	p := lp.player
	if p.Lost {
		return
	}

	stationWages := w.stationWagesPerSecond(p)
	p.UpdateWages(tickSeconds, stationWages)

	costsPerSecond := stationWages
	for _, ship := range p.Ships {
		costsPerSecond += ship.Crew.SumWages()
	}
	lowFundsEntered, lost := p.RefreshStatus(costsPerSecond)
	if lowFundsEntered {
		secondsLeft := 0.0
		if costsPerSecond > 0 {
			secondsLeft = p.Money / costsPerSecond
		}
		w.pushEvent(id, model.NewLowFundsEvent(w.tick, secondsLeft))
	}
	if lost {
		w.pushEvent(id, model.NewEvent(model.GameLost, w.tick))
	}

	for shipID, ship := range p.Ships {
		w.stepShip(id, p, shipID, ship)
	}
}

// stepShip :
// Advances one ship through its current state (flight or extraction),
// emitting the matching syslog event on any state transition. A ship
// destroyed in flight is removed from the player's roster; its wreck
// is not otherwise recoverable. Caller must already hold the owning
// player's write lock.
func (w *World) stepShip(playerID model.PlayerId, p *model.Player, shipID model.ShipId, ship *model.Ship) {
	switch ship.State.Tag {
	case model.InFlight:
		finished, destroyed := ship.UpdateFlight(tickSeconds)
		if destroyed {
			p.RemoveShip(shipID)
			w.pushEvent(playerID, model.NewShipEvent(model.ShipDestroyed, shipID, w.tick))
			return
		}
		if finished {
			ship.State = model.IdleState()
			w.galaxy.Touch(ship.Position)
			w.pushEvent(playerID, model.NewShipEvent(model.ShipFlightFinished, shipID, w.tick))
		}

	case model.Extracting:
		full := ship.UpdateExtract(tickSeconds)
		if full {
			ship.StopExtraction()
			w.pushEvent(playerID, model.NewShipEvent(model.ExtractionStopped, shipID, w.tick))
		}
	}
}

// stationWagesPerSecond :
// Sum of crew and idle_crew wages across every station recorded in
// `p.StationCoords` (those where `p` bought a ship), mirroring the original's `update_wages`, which folds every
// cached station's payroll into a player's recurring costs alongside
// their ships'. Caller must already hold the owning player's write
// lock; this only ever takes the galaxy's read lock, consistent with
// the package's stated lock ordering.
func (w *World) stationWagesPerSecond(p *model.Player) float64 {
	total := 0.0
	for stationID := range p.StationCoords {
		_ = w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
			total += station.Crew.SumWages()
			total += station.IdleCrew.SumWages()
			return nil
		})
	}
	return total
}
