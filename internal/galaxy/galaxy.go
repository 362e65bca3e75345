// Package galaxy owns the spatial layout of the simulated universe:
// sectors, the planets and stations within them, and sector generation
// on first discovery.
package galaxy

import (
	"math/rand"
	"sync"

	"simeis/internal/model"
)

const sectorSize = model.SpaceUnit(1000)
const planetsPerSector = 10
const solidProbability = 0.4
const minTemperature = -200.0
const maxTemperature = 400.0

// SectorCoord :
// Coarse grid coordinate identifying one sector. Every `Coord` inside
// `[x*1000, (x+1)*1000)` per axis belongs to the same sector.
type SectorCoord struct {
	X, Y, Z int64
}

func sectorOf(c model.Coord) SectorCoord {
	return SectorCoord{
		X: int64(c.X) / int64(sectorSize),
		Y: int64(c.Y) / int64(sectorSize),
		Z: int64(c.Z) / int64(sectorSize),
	}
}

// Sector :
// A generated 1000x1000x1000 cube of space holding a fixed number of
// planets. Stations are created inside a sector by explicit request
// (a player docking a new station), never by generation.
type Sector struct {
	Planets  []model.Planet
	Stations map[model.StationId]*model.Station
}

// Galaxy :
// The full simulated universe: every sector discovered so far, guarded
// by a single lock per the core's stated lock ordering (top-level
// player map -> target Player -> galaxy -> Station -> Market).
type Galaxy struct {
	mu      sync.RWMutex
	rng     *rand.Rand
	sectors map[SectorCoord]*Sector
	stationSector map[model.StationId]SectorCoord

	nextShipId model.ShipId
}

// New :
// An empty galaxy with no sectors generated yet; sectors are generated
// lazily the first time a coordinate inside them is touched.
func New(seed int64) *Galaxy {
	return &Galaxy{
		rng:           rand.New(rand.NewSource(seed)),
		sectors:       make(map[SectorCoord]*Sector),
		stationSector: make(map[model.StationId]SectorCoord),
	}
}

// sectorAt :
// Returns the sector containing `c`, generating it on first access.
// Caller must hold `g.mu` for writing.
func (g *Galaxy) sectorAt(c model.Coord) *Sector {
	return g.sectorAtLocked(sectorOf(c))
}

// randomPlanet :
// Generates one planet at a random position inside sector `sc`.
func (g *Galaxy) randomPlanet(sc SectorCoord) model.Planet {
	base := func(axis int64) model.SpaceUnit {
		return model.SpaceUnit(axis*int64(sectorSize)) + model.SpaceUnit(g.rng.Intn(int(sectorSize)))
	}
	return model.Planet{
		Position: model.Coord{
			X: base(sc.X),
			Y: base(sc.Y),
			Z: base(sc.Z),
		},
		Solid:       g.rng.Float64() < solidProbability,
		Temperature: minTemperature + g.rng.Float64()*(maxTemperature-minTemperature),
	}
}

// nextFreeShipId :
// Allocates the next ship id from a monotonically increasing per-galaxy
// counter, never reused. Caller must hold `g.mu`.
func (g *Galaxy) nextFreeShipId() model.ShipId {
	g.nextShipId++
	return g.nextShipId
}

// nextFreeStationId :
// Allocates a station id by rejecting collisions against every
// station id already placed anywhere in the galaxy and retrying.
// Caller must hold `g.mu`.
func (g *Galaxy) nextFreeStationId() model.StationId {
	for {
		id := model.StationId(g.rng.Uint64())
		if _, taken := g.stationSector[id]; !taken {
			return id
		}
	}
}

// CreateStation :
// Places a brand-new station at `position`, generating its sector if
// needed and its shipyard via the model layer. Returns the station id.
func (g *Galaxy) CreateStation(position model.Coord) model.StationId {
	g.mu.Lock()
	defer g.mu.Unlock()

	sector := g.sectorAt(position)
	id := g.nextFreeStationId()
	station := model.NewStation(id, position, g.nextFreeShipId)
	sector.Stations[id] = &station
	g.stationSector[id] = sectorOf(position)
	return id
}

// lookupStation :
// Caller must hold `g.mu` (read or write).
func (g *Galaxy) lookupStation(id model.StationId) (*model.Station, *model.GameError) {
	sc, ok := g.stationSector[id]
	if !ok {
		return nil, model.ErrNoSuchStation(id)
	}
	return g.sectors[sc].Stations[id], nil
}

// WithStationRead :
// Runs `fn` with read-only access to the station, while the galaxy's
// single lock is held, so no other goroutine can be mutating any
// station concurrently.
func (g *Galaxy) WithStationRead(id model.StationId, fn func(s *model.Station) *model.GameError) *model.GameError {
	g.mu.RLock()
	defer g.mu.RUnlock()

	station, err := g.lookupStation(id)
	if err != nil {
		return err
	}
	return fn(station)
}

// WithStationWrite :
// Runs `fn` with mutable access to the station, while the galaxy's
// single lock is held for writing.
func (g *Galaxy) WithStationWrite(id model.StationId, fn func(s *model.Station) *model.GameError) *model.GameError {
	g.mu.Lock()
	defer g.mu.Unlock()

	station, err := g.lookupStation(id)
	if err != nil {
		return err
	}
	return fn(station)
}

// PlanetAt :
// The planet occupying `position`, if any. A ship is "on a planet"
// only when its coordinate exactly matches a generated planet's
// position.
func (g *Galaxy) PlanetAt(position model.Coord) *model.Planet {
	g.mu.Lock()
	defer g.mu.Unlock()

	sector := g.sectorAt(position)
	for i := range sector.Planets {
		if sector.Planets[i].Position == position {
			return &sector.Planets[i]
		}
	}
	return nil
}

// Touch :
// Ensures the sector containing `position` has been generated, e.g.
// when a ship flies into previously unexplored space. Idempotent.
func (g *Galaxy) Touch(position model.Coord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sectorAt(position)
}
