package model

import (
	"hash/fnv"
	"math"

	"github.com/google/uuid"
)

const initMoney = 30000.0
const lowFundsCostMultiple = 60.0

// PlayerId :
// Identifier of a player, derived deterministically from their chosen
// name so reconnecting under the same name resolves to the same
// account.
type PlayerId uint64

// NewPlayerId :
// The 64-bit FNV-1a hash of the name, used whole, following the
// original's scheme of deriving a stable id from the account name.
func NewPlayerId(name string) PlayerId {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return PlayerId(h.Sum64())
}

// PlayerKey :
// Bearer credential handed back at account creation and required on
// every subsequent authenticated command.
type PlayerKey uuid.UUID

// NewPlayerKey :
// A fresh random key, unguessable and never reused.
func NewPlayerKey() PlayerKey {
	return PlayerKey(uuid.New())
}

// ParsePlayerKey :
// Decodes a bearer key from its string form, as handed back by
// RegisterPlayer and echoed on every subsequent request.
func ParsePlayerKey(s string) (PlayerKey, *GameError) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PlayerKey{}, ErrNoPlayerKey()
	}
	return PlayerKey(id), nil
}

func (k PlayerKey) String() string {
	return uuid.UUID(k).String()
}

// Player :
// A single account: its wallet, its ship roster, and the coordinates
// of every station it has bought a ship at. Ships and stations never hold a
// back-pointer to their owner; ownership always flows from the player
// outward.
type Player struct {
	Id    PlayerId
	Name  string
	Key   PlayerKey
	Money float64

	Ships         map[ShipId]*Ship
	StationCoords map[StationId]Coord

	LowFunds bool
	Lost     bool
}

// NewPlayer :
// A freshly registered account with the starting wallet balance and no
// ships yet.
func NewPlayer(name string, startingMoney float64) Player {
	return Player{
		Id:            NewPlayerId(name),
		Name:          name,
		Key:           NewPlayerKey(),
		Money:         startingMoney,
		Ships:         make(map[ShipId]*Ship),
		StationCoords: make(map[StationId]Coord),
	}
}

// Debit :
// Removes `amount` from the wallet. Rejected if `amount` exceeds the
// current balance, and never itself triggers GameLost: the
// driver is the only place that condition is raised, once per tick.
func (p *Player) Debit(amount float64) *GameError {
	if p.Money < amount {
		return ErrNotEnoughMoney(p.Money, amount)
	}
	p.Money -= amount
	return nil
}

// Credit :
// Adds `amount` to the wallet, e.g. from a sale or a shipyard slot
// sold to someone else.
func (p *Player) Credit(amount float64) {
	p.Money += amount
}

// UpdateWages :
// Bills `tdelta` seconds of combined crew wages across every ship the
// player owns, plus `stationWagesPerSecond` (the caller's sum of every
// owned station's crew and idle_crew wages, since a Player holds no
// direct reference to the galaxy to look that up itself). Allows the
// balance to go negative. Returns the total billed.
func (p *Player) UpdateWages(tdelta, stationWagesPerSecond float64) float64 {
	total := stationWagesPerSecond
	for _, ship := range p.Ships {
		total += ship.Crew.SumWages()
	}
	total *= tdelta
	p.Money = roundMoney(p.Money - total)
	return total
}

// RefreshStatus :
// Re-evaluates LowFunds and Lost against the current balance and the
// player's current recurring costs, returning whether each flag just
// transitioned (edge-triggered, for syslog emission).
func (p *Player) RefreshStatus(costsPerSecond float64) (lowFundsEntered, lost bool) {
	wasLow := p.LowFunds
	p.LowFunds = p.Money < costsPerSecond*lowFundsCostMultiple
	lowFundsEntered = p.LowFunds && !wasLow

	lost = !p.Lost && p.Money < 0
	if lost {
		p.Lost = true
	}
	return lowFundsEntered, lost
}

// AddShip :
// Registers a newly purchased or received ship under this player.
func (p *Player) AddShip(ship Ship) {
	p.Ships[ship.Id] = &ship
}

// Ship :
// Looks up one of the player's ships by id.
func (p *Player) Ship(id ShipId) (*Ship, *GameError) {
	ship, ok := p.Ships[id]
	if !ok {
		return nil, ErrShipNotFound(id)
	}
	return ship, nil
}

// RemoveShip :
// Drops a destroyed ship from the roster.
func (p *Player) RemoveShip(id ShipId) {
	delete(p.Ships, id)
}

// RecordStation :
// Caches a station's coordinate when the player buys a ship there, so
// future commands can resolve it without asking the galaxy again.
func (p *Player) RecordStation(id StationId, position Coord) {
	p.StationCoords[id] = position
}

// UpgradeCrewRank :
// Debits the price of ranking `member` up by one and applies it.
func (p *Player) UpgradeCrewRank(member *CrewMember) *GameError {
	price := member.PriceNextRank()
	if err := p.Debit(price); err != nil {
		return err
	}
	member.Rank++
	return nil
}

// UpgradeModuleRank :
// Debits the price of ranking `module` up by one and applies it.
func (p *Player) UpgradeModuleRank(module *ShipModule) *GameError {
	price := module.PriceNextRank()
	if err := p.Debit(price); err != nil {
		return err
	}
	module.Rank++
	module.TotalCost += price
	return nil
}

// BuyShipUpgrade :
// Debits the flat price of `upgrade` and installs it on `ship`.
func (p *Player) BuyShipUpgrade(ship *Ship, upgrade ShipUpgrade) *GameError {
	price := upgrade.Price()
	if err := p.Debit(price); err != nil {
		return err
	}
	upgrade.Install(ship)
	return nil
}

// BuyShipModule :
// Debits the purchase price of a fresh module of `modType` and
// installs it on `ship` under a freshly allocated module id.
func (p *Player) BuyShipModule(ship *Ship, modType ShipModuleType) (ShipModuleId, *GameError) {
	price := modType.PriceBuy()
	if err := p.Debit(price); err != nil {
		return 0, err
	}
	module := modType.NewModule()
	module.TotalCost = price
	id := ship.NextModuleId()
	ship.Modules[id] = &module
	return id, nil
}

// roundMoney keeps displayed and persisted balances at cent precision,
// matching the two-decimal amounts the original always prints.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
