package world

import "simeis/internal/model"

// BuyShip :
// Purchases the shipyard ship at `slot` (0, 1, or 2) of `stationID`
// and adds it to the authenticated player's roster with a full fuel
// tank and freshly computed performance stats. The shipyard slot
// is immediately refilled with a freshly generated random ship so the
// station never runs dry.
func (w *World) BuyShip(key model.PlayerKey, stationID model.StationId, slot int) (model.ShipId, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, err
	}
	if slot < 0 || slot > 2 {
		return 0, model.ErrInvalidArgument("slot")
	}

	var boughtID model.ShipId
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			ship := station.Shipyard[slot]
			price := ship.ComputePrice()
			if derr := p.Debit(price); derr != nil {
				return derr
			}

			ship.FuelTank = ship.FuelTankCapacity
			ship.UpdatePerfStats()
			p.AddShip(ship)
			p.RecordStation(stationID, station.Position)
			boughtID = ship.Id

			station.Shipyard[slot] = model.RandomShip(0, station.Position, w.randRange)
			return nil
		})
	})
	return boughtID, gerr
}

// SetShipTravel :
// Commands one of the player's idle ships to fly to `destination`.
func (w *World) SetShipTravel(key model.PlayerKey, shipID model.ShipId, destination model.Coord) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, gerr := p.Ship(shipID)
		if gerr != nil {
			return gerr
		}
		_, gerr = ship.SetTravel(destination)
		return gerr
	})
}

// StartExtraction :
// Commands one of the player's idle ships, docked on a planet, to
// start extracting resources.
func (w *World) StartExtraction(key model.PlayerKey, shipID model.ShipId) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, gerr := p.Ship(shipID)
		if gerr != nil {
			return gerr
		}

		planet := w.galaxy.PlanetAt(ship.Position)
		_, gerr = ship.StartExtraction(planet)
		return gerr
	})
}

// StopExtraction :
// Commands one of the player's extracting ships to stop.
func (w *World) StopExtraction(key model.PlayerKey, shipID model.ShipId) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, gerr := p.Ship(shipID)
		if gerr != nil {
			return gerr
		}
		return ship.StopExtraction()
	})
}

// UnloadCargo :
// Transfers `amount` of `resource` from one of the player's ships
// into a station's hold. The ship must be sitting exactly on the
// station's coordinates.
func (w *World) UnloadCargo(key model.PlayerKey, shipID model.ShipId, stationID model.StationId, resource model.Resource, amount float64) (float64, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, err
	}

	var unloaded float64
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}

		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			if ship.Position != station.Position {
				return model.ErrShipNotInStation()
			}
			unloaded = ship.UnloadCargo(resource, amount, station)
			if unloaded == 0 {
				w.pushEvent(id, model.NewShipEvent(model.UnloadedNothing, shipID, w.tick))
			}
			return nil
		})
	})
	return unloaded, gerr
}

// BuyResource :
// Purchases `amount` of `resource` from `stationID`'s market and loads
// it onto one of the player's docked ships, debiting the settled
// total (including the station's trade fee).
func (w *World) BuyResource(key model.PlayerKey, shipID model.ShipId, stationID model.StationId, resource model.Resource, amount float64) (model.MarketTx, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return model.MarketTx{}, err
	}

	var tx model.MarketTx
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}

		return w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
			if ship.Position != station.Position {
				return model.ErrShipNotInStation()
			}

			space := ship.Cargo.SpaceFor(resource)
			if amount > space {
				amount = space
			}

			var trader *model.CrewMember
			if station.Trader != nil {
				trader = station.Crew[*station.Trader]
			}

			settled, txerr := w.marketBuy(stationID, resource, amount, trader)
			if txerr != nil {
				return txerr
			}
			if derr := p.Debit(settled.Total); derr != nil {
				return derr
			}

			ship.Cargo.AddResource(resource, amount)
			tx = settled
			return nil
		})
	})
	return tx, gerr
}

// SellResource :
// Sells `amount` of `resource` out of one of the player's docked ships
// into `stationID`'s market, crediting the settled total.
func (w *World) SellResource(key model.PlayerKey, shipID model.ShipId, stationID model.StationId, resource model.Resource, amount float64) (model.MarketTx, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return model.MarketTx{}, err
	}

	var tx model.MarketTx
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}

		return w.galaxy.WithStationRead(stationID, func(station *model.Station) *model.GameError {
			if ship.Position != station.Position {
				return model.ErrShipNotInStation()
			}

			unloaded := ship.Cargo.Unload(resource, amount)
			if unloaded == 0 {
				return model.ErrSellNothing()
			}

			var trader *model.CrewMember
			if station.Trader != nil {
				trader = station.Crew[*station.Trader]
			}

			settled, txerr := w.marketSell(stationID, resource, unloaded, trader)
			if txerr != nil {
				ship.Cargo.AddResource(resource, unloaded)
				return txerr
			}

			p.Credit(settled.Total)
			tx = settled
			return nil
		})
	})
	return tx, gerr
}

const hireCrewPrice = 500.0

// HireCrewMember :
// Hires a fresh crew member of `memberType` into `stationID`'s
// idle_crew, for the player to later assign onto a ship or this
// station's own trader slot. Not itself an assignment: the member sits
// idle until a follow-up command claims them.
func (w *World) HireCrewMember(key model.PlayerKey, stationID model.StationId, memberType model.CrewMemberType) (model.CrewId, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, err
	}

	var crewID model.CrewId
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			if derr := p.Debit(hireCrewPrice); derr != nil {
				return derr
			}
			crewID, _ = station.HireCrewMember(memberType)
			return nil
		})
	})
	return crewID, gerr
}

// AssignStationTrader :
// Promotes an idle crew member at `stationID` to its trader. Any idle
// member can be designated; rank alone determines the fee rate they
// charge.
func (w *World) AssignStationTrader(key model.PlayerKey, stationID model.StationId, crewID model.CrewId) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			return station.AssignTrader(crewID)
		})
	})
}

// AssignPilot :
// Signs an idle crew member at `stationID` onto `shipID` as its pilot.
// Fails if the member is not idle, is not a Pilot, or the ship already
// has one.
func (w *World) AssignPilot(key model.PlayerKey, stationID model.StationId, shipID model.ShipId, crewID model.CrewId) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}

		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			cm, perr := station.PeekIdleCrew(crewID)
			if perr != nil {
				return perr
			}
			if cm.MemberType != model.Pilot {
				return model.ErrWrongCrewType(model.Pilot)
			}
			if ship.Pilot != nil {
				return model.ErrCrewNotNeeded()
			}

			ship.Pilot = &crewID
			ship.Crew[crewID] = station.TakeIdleCrew(crewID)
			ship.UpdatePerfStats()
			return nil
		})
	})
}

// AssignOperator :
// Signs an idle crew member at `stationID` onto `shipID`'s module
// `moduleID` as its operator. Fails if the member is not idle, is not
// an Operator, the module does not exist, or the module does not need
// one.
func (w *World) AssignOperator(key model.PlayerKey, stationID model.StationId, shipID model.ShipId, moduleID model.ShipModuleId, crewID model.CrewId) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		module, ok := ship.Modules[moduleID]
		if !ok {
			return model.ErrNoSuchModule(moduleID)
		}

		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			cm, perr := station.PeekIdleCrew(crewID)
			if perr != nil {
				return perr
			}
			if cm.MemberType != model.Operator {
				return model.ErrWrongCrewType(model.Operator)
			}
			if !module.Needs(model.Operator) {
				return model.ErrCrewNotNeeded()
			}

			module.Operator = &crewID
			ship.Crew[crewID] = station.TakeIdleCrew(crewID)
			return nil
		})
	})
}

// BuyCargo :
// Expands `stationID`'s cargo capacity by `units`, debiting the price
// at its current (exponentially rising) rate.
func (w *World) BuyCargo(key model.PlayerKey, stationID model.StationId, units float64) (float64, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, err
	}

	var cost float64
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			cost = station.BuyCargoPrice(units)
			if derr := p.Debit(cost); derr != nil {
				return derr
			}
			station.ExpandCargo(units)
			return nil
		})
	})
	return cost, gerr
}

// UpgradeTrader :
// Ranks up a station's assigned trader by one, debiting the price.
// Fails if the station has no trader assigned.
func (w *World) UpgradeTrader(key model.PlayerKey, stationID model.StationId) (float64, uint8, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, 0, err
	}

	var cost float64
	var rank uint8
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			if station.Trader == nil {
				return model.ErrNoTraderAssigned()
			}
			member, ok := station.Crew[*station.Trader]
			if !ok {
				return model.ErrCrewMemberNotFound(*station.Trader)
			}
			price := member.PriceNextRank()
			if derr := p.UpgradeCrewRank(member); derr != nil {
				return derr
			}
			cost = price
			rank = member.Rank
			return nil
		})
	})
	return cost, rank, gerr
}

// Refuel :
// Transfers fuel from `stationID`'s cargo into one of the player's
// docked ships. Fails if the station's cargo holds no fuel.
func (w *World) Refuel(key model.PlayerKey, stationID model.StationId, shipID model.ShipId) (float64, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, err
	}

	var added float64
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			if ship.Position != station.Position {
				return model.ErrShipNotInStation()
			}
			var rerr *model.GameError
			added, rerr = station.RefuelShip(ship)
			return rerr
		})
	})
	return added, gerr
}

// Repair :
// Transfers hull plate from `stationID`'s cargo into one of the
// player's docked ships, reducing hull decay. Fails if the station's
// cargo holds no hull plate.
func (w *World) Repair(key model.PlayerKey, stationID model.StationId, shipID model.ShipId) (float64, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, err
	}

	var removed float64
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		return w.galaxy.WithStationWrite(stationID, func(station *model.Station) *model.GameError {
			if ship.Position != station.Position {
				return model.ErrShipNotInStation()
			}
			var rerr *model.GameError
			removed, rerr = station.RepairShip(ship)
			return rerr
		})
	})
	return removed, gerr
}

// UpgradeCrewRank :
// Ranks up one of a ship's crew members by one, debiting the price.
func (w *World) UpgradeCrewRank(key model.PlayerKey, shipID model.ShipId, crewID model.CrewId) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		member, ok := ship.Crew[crewID]
		if !ok {
			return model.ErrCrewMemberNotFound(crewID)
		}

		if err := p.UpgradeCrewRank(member); err != nil {
			return err
		}
		ship.UpdatePerfStats()
		return nil
	})
}

// BuyShipModule :
// Installs a fresh module of `modType` on the given ship.
func (w *World) BuyShipModule(key model.PlayerKey, shipID model.ShipId, modType model.ShipModuleType) (model.ShipModuleId, *model.GameError) {
	id, err := w.resolveKey(key)
	if err != nil {
		return 0, err
	}

	var moduleID model.ShipModuleId
	gerr := w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		var berr *model.GameError
		moduleID, berr = p.BuyShipModule(ship, modType)
		return berr
	})
	return moduleID, gerr
}

// UpgradeModuleRank :
// Ranks up one of a ship's modules by one, debiting the price.
func (w *World) UpgradeModuleRank(key model.PlayerKey, shipID model.ShipId, moduleID model.ShipModuleId) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		module, ok := ship.Modules[moduleID]
		if !ok {
			return model.ErrNoSuchModule(moduleID)
		}
		return p.UpgradeModuleRank(module)
	})
}

// BuyShipUpgrade :
// Purchases a fixed hull upgrade for one of the player's idle ships.
func (w *World) BuyShipUpgrade(key model.PlayerKey, shipID model.ShipId, upgrade model.ShipUpgrade) *model.GameError {
	id, err := w.resolveKey(key)
	if err != nil {
		return err
	}

	return w.withPlayerWrite(id, func(p *model.Player) *model.GameError {
		ship, serr := p.Ship(shipID)
		if serr != nil {
			return serr
		}
		if ship.State.Tag != model.Idle {
			return model.ErrShipNotIdle()
		}
		return p.BuyShipUpgrade(ship, upgrade)
	})
}

// CreateStation :
// Places a brand-new station at `position`; a debug/admin operation
// not gated behind a player, used to seed a galaxy before players
// arrive.
func (w *World) CreateStation(position model.Coord) model.StationId {
	id := w.galaxy.CreateStation(position)

	w.rngMu.Lock()
	w.market.InitStation(id)
	w.rngMu.Unlock()

	return id
}
