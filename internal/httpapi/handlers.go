package httpapi

import (
	"net/http"
	"strconv"

	"simeis/internal/model"
	"simeis/internal/world"
)

// Handlers :
// Bundles the live world the command handlers operate against.
type Handlers struct {
	world *world.World
}

func NewHandlers(w *world.World) *Handlers {
	return &Handlers{world: w}
}

func parseSpaceUnit(s string) (model.SpaceUnit, *model.GameError) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, model.ErrInvalidArgument("coordinate")
	}
	return model.SpaceUnit(v), nil
}

// Ping :
// GET /ping
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeResult(w, ok(map[string]interface{}{"ping": "pong"}))
}

// NewPlayer :
// GET /player/new/{name}
func (h *Handlers) NewPlayer(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	if len(seg) != 3 {
		writeResult(w, fail(model.ErrInvalidArgument("name")))
		return
	}
	id, key, err := h.world.RegisterPlayer(seg[2])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"playerId": id, "key": key.String()}))
}

// PlayerStatus :
// GET /player/{id}?key=...
func (h *Handlers) PlayerStatus(w http.ResponseWriter, r *http.Request) {
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	view, err := h.world.PlayerStatus(key)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{
		"id":       view.Id,
		"name":     view.Name,
		"money":    view.Money,
		"lowFunds": view.LowFunds,
		"lost":     view.Lost,
		"ships":    view.Ships,
	}))
}

// Syslogs :
// GET /syslogs?key=...
func (h *Handlers) Syslogs(w http.ResponseWriter, r *http.Request) {
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	events, err := h.world.DrainSyslog(key)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"nb": len(events), "events": events}))
}

// ShipStatus :
// GET /ship/{id}?key=...
func (h *Handlers) ShipStatus(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	raw, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	view, err := h.world.ShipStatus(key, model.ShipId(raw))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{
		"id":        view.Id,
		"position":  view.Position,
		"state":     view.State,
		"fuelTank":  view.FuelTank,
		"hullDecay": view.HullDecay,
		"cargo":     view.Cargo,
	}))
}

// ScanSector :
// GET /ship/{id}/scan?key=...
func (h *Handlers) ScanSector(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	raw, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	result, err := h.world.ScanSector(key, model.ShipId(raw))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"planets": result.Planets, "stations": result.Stations}))
}

// Navigate :
// GET /ship/{id}/navigate/{x}/{y}/{z}?key=...
func (h *Handlers) Navigate(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	x, err := parseSpaceUnit(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	y, err := parseSpaceUnit(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	z, err := parseSpaceUnit(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	dest := model.Coord{X: x, Y: y, Z: z}
	if err := h.world.SetShipTravel(key, model.ShipId(shipID), dest); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// StartExtraction :
// GET /ship/{id}/extraction/start?key=...
func (h *Handlers) StartExtraction(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	if err := h.world.StartExtraction(key, model.ShipId(shipID)); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// StopExtraction :
// GET /ship/{id}/extraction/stop?key=...
func (h *Handlers) StopExtraction(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	if err := h.world.StopExtraction(key, model.ShipId(shipID)); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// UnloadCargo :
// GET /ship/{id}/unload/{station}/{resource}/{amount}?key=...
func (h *Handlers) UnloadCargo(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	resource, err := model.ParseResource(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	amount, err := parseFloat(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	unloaded, err := h.world.UnloadCargo(key, model.ShipId(shipID), model.StationId(stationID), resource, amount)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"unloaded": unloaded}))
}

// StationStatus :
// GET /station/{id}
func (h *Handlers) StationStatus(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	view, err := h.world.StationStatus(model.StationId(stationID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{
		"id":       view.Id,
		"position": view.Position,
		"shipyard": view.Shipyard,
		"cargoCap": view.CargoCap,
	}))
}

// BuyShip :
// GET /station/{id}/shipyard/buy/{slot}?key=...
func (h *Handlers) BuyShip(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	slot, err := parseInt(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := h.world.BuyShip(key, model.StationId(stationID), slot)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"shipId": shipID}))
}

// BuyShipUpgrade :
// GET /station/{id}/shipyard/upgrade/{ship_id}/{upgrade_type}?key=...
func (h *Handlers) BuyShipUpgrade(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	upgrade, err := model.ParseShipUpgrade(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	if err := h.world.BuyShipUpgrade(key, model.ShipId(shipID), upgrade); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"cost": upgrade.Price()}))
}

// HireCrew :
// GET /station/{id}/crew/hire/{crewtype}?key=...
func (h *Handlers) HireCrew(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	crewType, err := model.ParseCrewMemberType(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	crewID, err := h.world.HireCrewMember(key, model.StationId(stationID), crewType)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"crewId": crewID}))
}

// AssignTrader :
// GET /station/{id}/crew/assign/{crewid}/trading?key=...
func (h *Handlers) AssignTrader(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	crewID, err := parseUint64(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	if err := h.world.AssignStationTrader(key, model.StationId(stationID), model.CrewId(crewID)); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// AssignPilot :
// GET /station/{id}/crew/assign/{crewid}/{shipid}/pilot?key=...
func (h *Handlers) AssignPilot(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	crewID, err := parseUint64(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	if err := h.world.AssignPilot(key, model.StationId(stationID), model.ShipId(shipID), model.CrewId(crewID)); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// AssignOperator :
// GET /station/{id}/crew/assign/{crewid}/{shipid}/{modid}?key=...
func (h *Handlers) AssignOperator(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	crewID, err := parseUint64(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	modID, err := parseUint64(seg[6])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	if err := h.world.AssignOperator(key, model.StationId(stationID), model.ShipId(shipID), model.ShipModuleId(modID), model.CrewId(crewID)); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// ListShipUpgrades :
// GET /station/{id}/shipyard/upgrade
func (h *Handlers) ListShipUpgrades(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	infos, err := h.world.ListShipUpgrades(model.StationId(stationID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	out := make(map[string]interface{}, len(infos))
	for _, info := range infos {
		out[info.Upgrade.String()] = map[string]interface{}{"price": info.Price, "description": info.Description}
	}
	writeResult(w, ok(out))
}

// ListModulePrices :
// GET /station/{id}/shop/modules
func (h *Handlers) ListModulePrices(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	infos, err := h.world.ListModulePrices(model.StationId(stationID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	out := make(map[string]interface{}, len(infos))
	for _, info := range infos {
		out[info.ModType.String()] = info.Price
	}
	writeResult(w, ok(out))
}

// ListModuleUpgrades :
// GET /station/{id}/shop/modules/{ship_id}/upgrade?key=...
func (h *Handlers) ListModuleUpgrades(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	infos, err := h.world.ListModuleUpgrades(key, model.StationId(stationID), model.ShipId(shipID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	out := make(map[string]interface{}, len(infos))
	for _, info := range infos {
		out[strconv.FormatUint(uint64(info.ModuleId), 10)] = map[string]interface{}{
			"moduleType": info.ModType.String(),
			"price":      info.Price,
		}
	}
	writeResult(w, ok(out))
}

// ListCrewUpgrades :
// GET /station/{id}/crew/upgrade/ship/{ship_id}?key=...
func (h *Handlers) ListCrewUpgrades(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	infos, err := h.world.ListCrewUpgrades(key, model.StationId(stationID), model.ShipId(shipID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	out := make(map[string]interface{}, len(infos))
	for _, info := range infos {
		out[strconv.FormatUint(uint64(info.CrewId), 10)] = map[string]interface{}{
			"memberType": info.MemberType.String(),
			"nextRank":   info.NextRank,
			"price":      info.Price,
		}
	}
	writeResult(w, ok(out))
}

// StationUpgrades :
// GET /station/{id}/upgrades
func (h *Handlers) StationUpgrades(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	view, err := h.world.StationUpgrades(model.StationId(stationID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	body := map[string]interface{}{"cargoExpansion": view.CargoExpansionPrice}
	if view.HasTraderUpgrade {
		body["traderUpgrade"] = view.TraderUpgradePrice
	} else {
		body["traderUpgrade"] = nil
	}
	writeResult(w, ok(body))
}

// TravelCost :
// GET /ship/{id}/travelcost/{x}/{y}/{z}?key=...
func (h *Handlers) TravelCost(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	x, err := parseSpaceUnit(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	y, err := parseSpaceUnit(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	z, err := parseSpaceUnit(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	cost, err := h.world.TravelCost(key, model.ShipId(shipID), model.Coord{X: x, Y: y, Z: z})
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{
		"direction":       cost.Direction,
		"distance":        cost.Distance,
		"duration":        cost.Duration,
		"fuelConsumption": cost.FuelConsumption,
		"hullUsage":       cost.HullUsage,
	}))
}

// MarketPrices :
// GET /market/prices
func (h *Handlers) MarketPrices(w http.ResponseWriter, r *http.Request) {
	writeResult(w, ok(map[string]interface{}{"prices": h.world.MarketPrices()}))
}

// FeeRate :
// GET /market/{id}/fee_rate
func (h *Handlers) FeeRate(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	rate, err := h.world.FeeRate(model.StationId(stationID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"feeRate": rate}))
}

// BuyCargo :
// GET /station/{id}/shop/cargo/buy/{amount}?key=...
func (h *Handlers) BuyCargo(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	amount, err := parseFloat(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	cost, err := h.world.BuyCargo(key, model.StationId(stationID), amount)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"cost": cost}))
}

// UpgradeTrader :
// GET /station/{id}/crew/upgrade/trader?key=...
func (h *Handlers) UpgradeTrader(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	cost, rank, err := h.world.UpgradeTrader(key, model.StationId(stationID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"cost": cost, "newRank": rank}))
}

// Refuel :
// GET /station/{id}/refuel/{ship_id}?key=...
func (h *Handlers) Refuel(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	added, err := h.world.Refuel(key, model.StationId(stationID), model.ShipId(shipID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"addedFuel": added}))
}

// Repair :
// GET /station/{id}/repair/{ship_id}?key=...
func (h *Handlers) Repair(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	added, err := h.world.Repair(key, model.StationId(stationID), model.ShipId(shipID))
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"addedHull": added}))
}

// UpgradeCrewRank :
// GET /ship/{ship_id}/crew/{crew_id}/upgrade?key=...
func (h *Handlers) UpgradeCrewRank(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	crewID, err := parseUint64(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	if err := h.world.UpgradeCrewRank(key, model.ShipId(shipID), model.CrewId(crewID)); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// BuyShipModule :
// GET /ship/{ship_id}/modules/buy/{modtype}?key=...
func (h *Handlers) BuyShipModule(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	modType, err := model.ParseShipModuleType(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	moduleID, err := h.world.BuyShipModule(key, model.ShipId(shipID), modType)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"id": moduleID}))
}

// UpgradeModuleRank :
// GET /ship/{ship_id}/modules/{mod_id}/upgrade?key=...
func (h *Handlers) UpgradeModuleRank(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	modID, err := parseUint64(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	if err := h.world.UpgradeModuleRank(key, model.ShipId(shipID), model.ShipModuleId(modID)); err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(nil))
}

// BuyResource :
// GET /market/{station_id}/buy/{ship_id}/{resource}/{amount}?key=...
func (h *Handlers) BuyResource(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	resource, err := model.ParseResource(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	amount, err := parseFloat(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	tx, err := h.world.BuyResource(key, model.ShipId(shipID), model.StationId(stationID), resource, amount)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"unitPrice": tx.UnitPrice, "fee": tx.Fee, "total": tx.Total}))
}

// SellResource :
// GET /market/{station_id}/sell/{ship_id}/{resource}/{amount}?key=...
func (h *Handlers) SellResource(w http.ResponseWriter, r *http.Request) {
	seg := segments(r)
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	stationID, err := parseUint64(seg[1])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	shipID, err := parseUint64(seg[3])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	resource, err := model.ParseResource(seg[4])
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	amount, err := parseFloat(seg[5])
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	tx, err := h.world.SellResource(key, model.ShipId(shipID), model.StationId(stationID), resource, amount)
	if err != nil {
		writeResult(w, fail(err))
		return
	}
	writeResult(w, ok(map[string]interface{}{"unitPrice": tx.UnitPrice, "fee": tx.Fee, "total": tx.Total}))
}

// Healthz :
// GET /healthz, outside the JSON envelope: a bare 200 for liveness
// probes.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
