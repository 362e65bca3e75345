package httpapi

import (
	"net/http"

	"github.com/gorilla/handlers"

	"simeis/internal/world"
	"simeis/pkg/dispatcher"
	"simeis/pkg/logger"
)

// NewServer :
// Builds the full HTTP surface: every command route registered against
// the adapted dispatcher router, wrapped with access logging and panic
// recovery, plus the syslog websocket stream.
func NewServer(addr string, w *world.World, log logger.Logger) *http.Server {
	h := NewHandlers(w)
	router := dispatcher.NewRouter(log)

	router.HandleFunc("/ping", h.Ping).Methods("GET")
	router.HandleFunc("/healthz", h.Healthz).Methods("GET")
	router.HandleFunc("/syslogs", h.Syslogs).Methods("GET")
	router.HandleFunc("/syslogs/stream", h.SyslogStream).Methods("GET")

	router.HandleFunc("/player/new/[a-zA-Z0-9_-]+", h.NewPlayer).Methods("GET")
	router.HandleFunc("/player/[0-9]+", h.PlayerStatus).Methods("GET")

	router.HandleFunc("/ship/[0-9]+", h.ShipStatus).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/scan", h.ScanSector).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/navigate/[0-9]+/[0-9]+/[0-9]+", h.Navigate).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/extraction/start", h.StartExtraction).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/extraction/stop", h.StopExtraction).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/unload/[0-9]+/[a-zA-Z]+/[0-9.]+", h.UnloadCargo).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/crew/[0-9]+/upgrade", h.UpgradeCrewRank).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/modules/buy/[a-zA-Z]+", h.BuyShipModule).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/modules/[0-9]+/upgrade", h.UpgradeModuleRank).Methods("GET")
	router.HandleFunc("/ship/[0-9]+/travelcost/[0-9]+/[0-9]+/[0-9]+", h.TravelCost).Methods("GET")

	router.HandleFunc("/station/[0-9]+", h.StationStatus).Methods("GET")
	router.HandleFunc("/station/[0-9]+/upgrades", h.StationUpgrades).Methods("GET")
	router.HandleFunc("/station/[0-9]+/shipyard/buy/[0-9]+", h.BuyShip).Methods("GET")
	router.HandleFunc("/station/[0-9]+/shipyard/upgrade/[0-9]+/[a-zA-Z]+", h.BuyShipUpgrade).Methods("GET")
	router.HandleFunc("/station/[0-9]+/shipyard/upgrade", h.ListShipUpgrades).Methods("GET")
	router.HandleFunc("/station/[0-9]+/shop/modules/[0-9]+/upgrade", h.ListModuleUpgrades).Methods("GET")
	router.HandleFunc("/station/[0-9]+/shop/modules", h.ListModulePrices).Methods("GET")
	router.HandleFunc("/station/[0-9]+/shop/cargo/buy/[0-9.]+", h.BuyCargo).Methods("GET")
	router.HandleFunc("/station/[0-9]+/refuel/[0-9]+", h.Refuel).Methods("GET")
	router.HandleFunc("/station/[0-9]+/repair/[0-9]+", h.Repair).Methods("GET")
	router.HandleFunc("/station/[0-9]+/crew/hire/[a-zA-Z]+", h.HireCrew).Methods("GET")
	router.HandleFunc("/station/[0-9]+/crew/upgrade/ship/[0-9]+", h.ListCrewUpgrades).Methods("GET")
	router.HandleFunc("/station/[0-9]+/crew/upgrade/trader", h.UpgradeTrader).Methods("GET")
	router.HandleFunc("/station/[0-9]+/crew/assign/[0-9]+/trading", h.AssignTrader).Methods("GET")
	router.HandleFunc("/station/[0-9]+/crew/assign/[0-9]+/[0-9]+/pilot", h.AssignPilot).Methods("GET")
	router.HandleFunc("/station/[0-9]+/crew/assign/[0-9]+/[0-9]+/[0-9]+", h.AssignOperator).Methods("GET")

	router.HandleFunc("/market/prices", h.MarketPrices).Methods("GET")
	router.HandleFunc("/market/[0-9]+/fee_rate", h.FeeRate).Methods("GET")
	router.HandleFunc("/market/[0-9]+/buy/[0-9]+/[a-zA-Z]+/[0-9.]+", h.BuyResource).Methods("GET")
	router.HandleFunc("/market/[0-9]+/sell/[0-9]+/[a-zA-Z]+/[0-9.]+", h.SellResource).Methods("GET")

	logged := handlers.CombinedLoggingHandler(logWriter{log}, dispatcher.WithSafetyNet(log, router.ServeHTTP))

	return &http.Server{
		Addr:    addr,
		Handler: logged,
	}
}

// logWriter :
// Adapts the simulation's logger to the io.Writer CombinedLoggingHandler
// expects for its access log line.
type logWriter struct {
	log logger.Logger
}

func (lw logWriter) Write(p []byte) (int, error) {
	lw.log.Trace(logger.Info, "httpapi", string(p))
	return len(p), nil
}
