package world

import "simeis/internal/model"

// PlayerView :
// Client-facing snapshot of a player's account.
type PlayerView struct {
	Id       model.PlayerId
	Name     string
	Money    float64
	LowFunds bool
	Lost     bool
	Ships    []model.ShipId
}

// PlayerStatus :
// Returns a snapshot of the authenticated player's account.
func (w *World) PlayerStatus(key model.PlayerKey) (PlayerView, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return PlayerView{}, err
	}

	var view PlayerView
	err = w.withPlayerRead(id, func(p *model.Player) *model.GameError {
		view = PlayerView{
			Id:       p.Id,
			Name:     p.Name,
			Money:    p.Money,
			LowFunds: p.LowFunds,
			Lost:     p.Lost,
			Ships:    make([]model.ShipId, 0, len(p.Ships)),
		}
		for id := range p.Ships {
			view.Ships = append(view.Ships, id)
		}
		return nil
	})
	return view, err
}

// ShipView :
// Client-facing snapshot of a single ship.
type ShipView struct {
	Id       model.ShipId
	Position model.Coord
	State    model.ShipStateTag
	FuelTank float64
	HullDecay float64
	Cargo     model.Cargo
}

// ShipStatus :
// Returns a snapshot of one of the authenticated player's ships.
func (w *World) ShipStatus(key model.PlayerKey, shipID model.ShipId) (ShipView, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return ShipView{}, err
	}

	var view ShipView
	err = w.withPlayerRead(id, func(p *model.Player) *model.GameError {
		ship, gerr := p.Ship(shipID)
		if gerr != nil {
			return gerr
		}
		view = ShipView{
			Id:        ship.Id,
			Position:  ship.Position,
			State:     ship.State.Tag,
			FuelTank:  ship.FuelTank,
			HullDecay: ship.HullDecay,
			Cargo:     ship.Cargo,
		}
		return nil
	})
	return view, err
}

// ScanSector :
// Surveys the area around `ship`'s current position, out to a radius
// determined by its pilot's rank.
func (w *World) ScanSector(key model.PlayerKey, shipID model.ShipId) (galaxyScanResult, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return galaxyScanResult{}, err
	}

	var result galaxyScanResult
	err = w.withPlayerRead(id, func(p *model.Player) *model.GameError {
		ship, gerr := p.Ship(shipID)
		if gerr != nil {
			return gerr
		}

		rank := uint8(1)
		if ship.Pilot != nil {
			rank = ship.Crew[*ship.Pilot].Rank
		}

		result = galaxyScanResult(w.galaxy.Scan(ship.Position, rank))
		return nil
	})
	return result, err
}

// galaxyScanResult mirrors galaxy.ScanResult; defined locally so that
// callers of this package never need to import the galaxy package
// directly.
type galaxyScanResult struct {
	Planets  []model.PlanetInfo
	Stations []model.StationInfo
}

// StationView :
// Client-facing snapshot of a station.
type StationView struct {
	Id       model.StationId
	Position model.Coord
	Shipyard [3]model.Ship
	CargoCap float64
}

// StationStatus :
// Returns a snapshot of a station, regardless of ownership (stations
// are not owned by players).
func (w *World) StationStatus(stationID model.StationId) (StationView, *model.GameError) {
	var view StationView
	err := w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
		view = StationView{
			Id:       station.Id,
			Position: station.Position,
			Shipyard: station.Shipyard,
			CargoCap: station.Cargo.Capacity,
		}
		return nil
	})
	return view, err
}

// ShipUpgradeInfo :
// One ship-hull upgrade on offer, price included.
type ShipUpgradeInfo struct {
	Upgrade     model.ShipUpgrade
	Price       float64
	Description string
}

// ListShipUpgrades :
// Every hull upgrade a station can sell, at its flat catalog price
// (stations do not yet price these independently).
func (w *World) ListShipUpgrades(stationID model.StationId) ([]ShipUpgradeInfo, *model.GameError) {
	var infos []ShipUpgradeInfo
	err := w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
		for _, u := range []model.ShipUpgrade{model.CargoExpansion, model.ReactorUpgrade, model.HullUpgrade} {
			infos = append(infos, ShipUpgradeInfo{Upgrade: u, Price: u.Price(), Description: u.Description()})
		}
		return nil
	})
	return infos, err
}

// ModulePriceInfo :
// Purchase price of a fresh module of a given type.
type ModulePriceInfo struct {
	ModType model.ShipModuleType
	Price   float64
}

// ListModulePrices :
// Every module type a station's shop sells, at its flat catalog price.
func (w *World) ListModulePrices(stationID model.StationId) ([]ModulePriceInfo, *model.GameError) {
	var infos []ModulePriceInfo
	err := w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
		for _, t := range []model.ShipModuleType{model.Miner, model.GasSucker} {
			infos = append(infos, ModulePriceInfo{ModType: t, Price: t.PriceBuy()})
		}
		return nil
	})
	return infos, err
}

// ModuleUpgradeInfo :
// Price to rank up one of a ship's installed modules by one.
type ModuleUpgradeInfo struct {
	ModuleId model.ShipModuleId
	ModType  model.ShipModuleType
	Price    float64
}

// ListModuleUpgrades :
// Prices to rank up every module installed on one of the player's
// ships, which must be docked at `stationID`.
func (w *World) ListModuleUpgrades(key model.PlayerKey, stationID model.StationId, shipID model.ShipId) ([]ModuleUpgradeInfo, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return nil, err
	}

	var infos []ModuleUpgradeInfo
	gerr := w.withPlayerRead(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		return w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
			if ship.Position != station.Position {
				return model.ErrShipNotInStation()
			}
			for modID, module := range ship.Modules {
				infos = append(infos, ModuleUpgradeInfo{ModuleId: modID, ModType: module.ModType, Price: module.PriceNextRank()})
			}
			return nil
		})
	})
	return infos, gerr
}

// CrewUpgradeInfo :
// Price to rank up one of a ship's crew members by one.
type CrewUpgradeInfo struct {
	CrewId     model.CrewId
	MemberType model.CrewMemberType
	NextRank   uint8
	Price      float64
}

// ListCrewUpgrades :
// Prices to rank up every crew member aboard one of the player's ships,
// which must be docked at `stationID`.
func (w *World) ListCrewUpgrades(key model.PlayerKey, stationID model.StationId, shipID model.ShipId) ([]CrewUpgradeInfo, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return nil, err
	}

	var infos []CrewUpgradeInfo
	gerr := w.withPlayerRead(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		return w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
			if ship.Position != station.Position {
				return model.ErrShipNotInStation()
			}
			for crewID, member := range ship.Crew {
				infos = append(infos, CrewUpgradeInfo{
					CrewId:     crewID,
					MemberType: member.MemberType,
					NextRank:   member.Rank + 1,
					Price:      member.PriceNextRank(),
				})
			}
			return nil
		})
	})
	return infos, gerr
}

// StationUpgradesView :
// Prices for the two station-scoped upgrades: cargo expansion (always
// available) and trader rank-up (only once a trader is assigned).
type StationUpgradesView struct {
	CargoExpansionPrice float64
	HasTraderUpgrade    bool
	TraderUpgradePrice  float64
}

// StationUpgrades :
// Prices for a station's cargo expansion and, if it has a trader
// assigned, their next rank-up.
func (w *World) StationUpgrades(stationID model.StationId) (StationUpgradesView, *model.GameError) {
	var view StationUpgradesView
	err := w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
		view.CargoExpansionPrice = station.CargoExpansionPrice()
		if station.Trader != nil {
			if member, ok := station.Crew[*station.Trader]; ok {
				view.HasTraderUpgrade = true
				view.TraderUpgradePrice = member.PriceNextRank()
			}
		}
		return nil
	})
	return view, err
}

// TravelCost :
// Prices the fuel, hull wear, and duration of flying one of the
// player's ships to `destination`, without committing to the flight.
func (w *World) TravelCost(key model.PlayerKey, shipID model.ShipId, destination model.Coord) (model.TravelCost, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return model.TravelCost{}, err
	}

	var cost model.TravelCost
	gerr := w.withPlayerRead(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		travel := model.Travel{Destination: destination}
		var cerr *model.GameError
		cost, cerr = travel.ComputeCosts(ship)
		return cerr
	})
	return cost, gerr
}

// MarketPrices :
// The current resource price table of every station in the galaxy, a
// public endpoint requiring no authentication.
func (w *World) MarketPrices() map[model.StationId]map[model.Resource]float64 {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()

	out := make(map[model.StationId]map[model.Resource]float64, len(w.market.Prices))
	for station, table := range w.market.Prices {
		copied := make(map[model.Resource]float64, len(table))
		for r, price := range table {
			copied[r] = price
		}
		out[station] = copied
	}
	return out
}

// FeeRate :
// The trade fee rate currently charged at a station, set by its
// trader's rank. Fails if the station has no trader assigned.
func (w *World) FeeRate(stationID model.StationId) (float64, *model.GameError) {
	var rate float64
	err := w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
		if station.Trader == nil {
			return model.ErrNoTraderAssigned()
		}
		trader, ok := station.Crew[*station.Trader]
		if !ok {
			return model.ErrCrewMemberNotFound(*station.Trader)
		}
		rate = model.FeeRate(trader)
		return nil
	})
	return rate, err
}
