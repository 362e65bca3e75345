// Package world owns the live simulation: every player, the galaxy,
// the market, and the fixed-tempo driver that advances all of them.
package world

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"simeis/internal/galaxy"
	"simeis/internal/locker"
	"simeis/internal/model"
	"simeis/pkg/arguments"
	"simeis/pkg/logger"
)

// World :
// The simulation's top-level aggregate. Lock ordering is fixed across
// the whole package: top-level player map -> target Player -> galaxy
// -> Station -> Market. No operation ever holds two different players'
// locks at once, and the driver never holds the player map's write
// lock while stepping individual players (it takes the read lock once
// per tick and then each player's own write lock in turn).
type World struct {
	cfg arguments.SimulationConfig
	log logger.Logger

	playersMu sync.RWMutex
	players   map[model.PlayerId]*lockedPlayer
	keyIndex  map[model.PlayerKey]model.PlayerId

	galaxy *galaxy.Galaxy

	// market's price table is seeded by InitStation and otherwise only
	// ever mutated from inside Buy, Sell, or UpdatePrices, which also
	// need the shared rng: every access, seeding included, goes through
	// rngMu, which alone is enough to serialize them.
	market model.Market

	fifoLocker *locker.KeyedLocker
	fifoMu     sync.Mutex
	fifos      map[model.PlayerId]*model.Fifo

	rngMu sync.Mutex
	rng   *rand.Rand

	// events is the cross-thread hop between whatever goroutine raises
	// an event (a command handler, or the driver itself) and the target
	// player's FIFO. The driver's tick loop delivers one pending event
	// per tick, and DrainSyslog delivers every pending event before it
	// reads a FIFO. Buffered rather than unbounded, unlike the
	// original's mpsc channel: a send that would block instead drops
	// the event, so a reader that fell behind can never stall the
	// simulation.
	events chan pendingEvent

	tick      uint64
	startedAt time.Time
}

// pendingEvent :
// One event in flight on the cross-thread channel, still addressed to
// its target player.
type pendingEvent struct {
	id    model.PlayerId
	event model.Event
}

// eventChannelCapacity bounds how many events may be in flight between
// a push and the next tick's drain before newer ones are dropped.
const eventChannelCapacity = 256

// randRange :
// A uniform float64 draw in `[lo, hi)`, safe for concurrent callers.
func (w *World) randRange(lo, hi float64) float64 {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()
	return lo + w.rng.Float64()*(hi-lo)
}

// randFloat :
// A uniform float64 draw in `[0, 1)`, safe for concurrent callers.
func (w *World) randFloat() float64 {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()
	return w.rng.Float64()
}

// marketBuy, marketSell, marketDrift :
// Thin wrappers serializing every access to the shared `*rand.Rand`
// behind `rngMu`, since `market.Market`'s methods need randomness but
// the generator itself is not safe for unsynchronized concurrent use.
func (w *World) marketBuy(station model.StationId, r model.Resource, amount float64, trader *model.CrewMember) (model.MarketTx, *model.GameError) {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()
	return w.market.Buy(station, r, amount, trader, w.rng)
}

func (w *World) marketSell(station model.StationId, r model.Resource, amount float64, trader *model.CrewMember) (model.MarketTx, *model.GameError) {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()
	return w.market.Sell(station, r, amount, trader, w.rng)
}

func (w *World) marketDrift(elapsed float64) {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()
	w.market.UpdatePrices(elapsed, w.rng)
}

// lockedPlayer :
// A player guarded by its own lock, per the stated lock ordering.
type lockedPlayer struct {
	mu     sync.RWMutex
	player *model.Player
}

// New :
// An empty world ready to accept players, seeded from the
// configuration's seed (or the current time if unset).
func New(cfg arguments.SimulationConfig, log logger.Logger) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := &World{
		cfg:        cfg,
		log:        log,
		players:    make(map[model.PlayerId]*lockedPlayer),
		keyIndex:   make(map[model.PlayerKey]model.PlayerId),
		galaxy:     galaxy.New(seed),
		market:     model.NewMarket(),
		fifoLocker: locker.NewKeyedLocker(log),
		fifos:      make(map[model.PlayerId]*model.Fifo),
		rng:        rand.New(rand.NewSource(seed)),
		events:     make(chan pendingEvent, eventChannelCapacity),
		startedAt:  time.Now(),
	}

	return w
}

// playerKeyStr :
// The registry key used by the per-player FIFO lock, derived from the
// player id.
func playerKeyStr(id model.PlayerId) string {
	return strconv.FormatUint(uint64(id), 10)
}

// withPlayerRead :
// Looks up a player and runs `fn` while holding its read lock.
func (w *World) withPlayerRead(id model.PlayerId, fn func(p *model.Player) *model.GameError) *model.GameError {
	w.playersMu.RLock()
	lp, ok := w.players[id]
	w.playersMu.RUnlock()
	if !ok {
		return model.ErrPlayerNotFound(id)
	}

	lp.mu.RLock()
	defer lp.mu.RUnlock()
	return fn(lp.player)
}

// withPlayerWrite :
// Looks up a player and runs `fn` while holding its write lock.
func (w *World) withPlayerWrite(id model.PlayerId, fn func(p *model.Player) *model.GameError) *model.GameError {
	w.playersMu.RLock()
	lp, ok := w.players[id]
	w.playersMu.RUnlock()
	if !ok {
		return model.ErrPlayerNotFound(id)
	}

	lp.mu.Lock()
	defer lp.mu.Unlock()

	if lp.player.Lost {
		return model.ErrPlayerLost()
	}
	return fn(lp.player)
}

// resolveKey :
// Maps an authentication key to a player id.
func (w *World) resolveKey(key model.PlayerKey) (model.PlayerId, *model.GameError) {
	w.playersMu.RLock()
	defer w.playersMu.RUnlock()

	id, ok := w.keyIndex[key]
	if !ok {
		return 0, model.ErrNoPlayerWithKey()
	}
	return id, nil
}

// pushEvent :
// Sends an event onto the cross-thread channel, from which it reaches
// the target player's syslog FIFO on the driver's next tick or the next
// DrainSyslog, whichever comes first. Never
// blocks the caller: a full channel means a reader fell far behind, and
// the event is dropped rather than stall whichever command or tick
// raised it.
func (w *World) pushEvent(id model.PlayerId, e model.Event) {
	select {
	case w.events <- pendingEvent{id: id, event: e}:
	default:
		w.log.Trace(logger.Warning, "world", "syslog channel full, dropping event")
	}
}

// deliverEvent :
// Appends an event to a player's syslog FIFO, locked individually so
// that draining one player's syslog never blocks another's.
func (w *World) deliverEvent(id model.PlayerId, e model.Event) {
	w.fifoMu.Lock()
	fifo, ok := w.fifos[id]
	if !ok {
		fresh := model.NewFifo()
		fifo = &fresh
		w.fifos[id] = fifo
	}
	w.fifoMu.Unlock()

	lock := w.fifoLocker.Acquire(playerKeyStr(id))
	lock.Lock()
	defer lock.Unlock()
	fifo.Push(e)
}

// drainOneEvent :
// Performs exactly one non-blocking receive off the cross-thread event
// channel, delivering it if present. Mirrors the original's syslog
// receiver, which likewise performs exactly one try_recv per update.
func (w *World) drainOneEvent() {
	select {
	case pe := <-w.events:
		w.deliverEvent(pe.id, pe.event)
	default:
	}
}

// DrainSyslog :
// Removes and returns every buffered event for `key`'s player, in
// FIFO order. Events still waiting on the cross-thread channel are
// delivered first, so an event raised by an already completed command
// or tick is part of the result.
func (w *World) DrainSyslog(key model.PlayerKey) ([]model.Event, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return nil, err
	}

	for pending := true; pending; {
		select {
		case pe := <-w.events:
			w.deliverEvent(pe.id, pe.event)
		default:
			pending = false
		}
	}

	w.fifoMu.Lock()
	fifo, ok := w.fifos[id]
	w.fifoMu.Unlock()
	if !ok {
		return nil, nil
	}

	lock := w.fifoLocker.Acquire(playerKeyStr(id))
	lock.Lock()
	defer lock.Unlock()
	return fifo.RemoveAll(), nil
}
