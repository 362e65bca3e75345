package httpapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/httpapi"
	"simeis/internal/model"
	"simeis/internal/world"
	"simeis/pkg/arguments"
	"simeis/pkg/logger"
)

func testHandlers(t *testing.T) (*httpapi.Handlers, *world.World) {
	t.Helper()
	log := logger.NewStdLogger("test", "127.0.0.1")
	t.Cleanup(log.Release)
	w := world.New(arguments.SimulationConfig{Seed: 42, StartingMoney: 30000}, log)
	return httpapi.NewHandlers(w), w
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	dec := json.NewDecoder(rec.Body)
	dec.UseNumber()
	var body map[string]interface{}
	require.Nil(t, dec.Decode(&body))
	return body
}

func doRequest(h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func registerPlayer(t *testing.T, h *httpapi.Handlers, name string) (playerID string, key string) {
	t.Helper()
	rec := doRequest(h.NewPlayer, "/player/new/"+name)
	body := decodeBody(t, rec)
	require.Equal(t, "ok", body["error"])
	return fmt.Sprintf("%v", body["playerId"]), fmt.Sprintf("%v", body["key"])
}

func TestHandlers_Ping_AnswersOkEnvelope(t *testing.T) {
	h, _ := testHandlers(t)

	rec := doRequest(h.Ping, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
	assert.Equal(t, "pong", body["ping"])
}

func TestHandlers_Healthz_IsPlainTextOutsideTheEnvelope(t *testing.T) {
	h, _ := testHandlers(t)

	rec := doRequest(h.Healthz, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandlers_NewPlayer_IssuesKeyAndPlayerId(t *testing.T) {
	h, _ := testHandlers(t)

	rec := doRequest(h.NewPlayer, "/player/new/newbie")

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
	assert.NotEmpty(t, body["key"])
	assert.NotNil(t, body["playerId"])
}

func TestHandlers_NewPlayer_RejectsDuplicateNameWithEnvelopeError(t *testing.T) {
	h, _ := testHandlers(t)
	doRequest(h.NewPlayer, "/player/new/dupe")

	rec := doRequest(h.NewPlayer, "/player/new/dupe")

	assert.Equal(t, http.StatusOK, rec.Code, "errors still answer HTTP 200, the envelope carries the failure")
	body := decodeBody(t, rec)
	assert.NotEqual(t, "ok", body["error"])
	assert.NotEmpty(t, body["type"])
}

func TestHandlers_PlayerStatus_ReflectsStartingBalance(t *testing.T) {
	h, _ := testHandlers(t)
	playerID, key := registerPlayer(t, h, "statusplayer")

	rec := doRequest(h.PlayerStatus, "/player/"+playerID+"?key="+key)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
	assert.Equal(t, json.Number("30000"), body["money"])
}

func TestHandlers_PlayerStatus_RejectsMissingKey(t *testing.T) {
	h, _ := testHandlers(t)
	playerID, _ := registerPlayer(t, h, "nokeyplayer")

	rec := doRequest(h.PlayerStatus, "/player/"+playerID)

	body := decodeBody(t, rec)
	assert.NotEqual(t, "ok", body["error"])
}

func TestHandlers_BuyShip_DebitsMoneyAndReturnsShipId(t *testing.T) {
	h, w := testHandlers(t)
	_, key := registerPlayer(t, h, "shipbuyer")
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.BuyShip, fmt.Sprintf("/station/%d/shipyard/buy/0?key=%s", stationID, key))

	body := decodeBody(t, rec)
	require.Equal(t, "ok", body["error"])
	assert.NotNil(t, body["shipId"])
}

func TestHandlers_BuyShipUpgrade_ReadsShipIdAndTypeFromTailSegments(t *testing.T) {
	h, w := testHandlers(t)
	_, key := registerPlayer(t, h, "upgrader")
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.BuyShip, fmt.Sprintf("/station/%d/shipyard/buy/0?key=%s", stationID, key))
	body := decodeBody(t, rec)
	require.Equal(t, "ok", body["error"])
	shipID := fmt.Sprintf("%v", body["shipId"])

	rec = doRequest(h.BuyShipUpgrade, fmt.Sprintf("/station/%d/shipyard/upgrade/%s/CargoExpansion?key=%s", stationID, shipID, key))

	body = decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"], "segment 4/5 must resolve to the ship id and upgrade type, not the station id")
}

func TestHandlers_StationStatus_NeedsNoAuthentication(t *testing.T) {
	h, w := testHandlers(t)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.StationStatus, fmt.Sprintf("/station/%d", stationID))

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
	assert.Len(t, body["shipyard"], 3, "a fresh station's shipyard always offers three ships")
}

func TestHandlers_ShipStatus_RejectsUnknownShipId(t *testing.T) {
	h, _ := testHandlers(t)
	_, key := registerPlayer(t, h, "curious")

	rec := doRequest(h.ShipStatus, "/ship/999999?key="+key)

	body := decodeBody(t, rec)
	assert.NotEqual(t, "ok", body["error"])
}

func TestHandlers_HireCrew_HasNoShipIdSegment(t *testing.T) {
	h, w := testHandlers(t)
	_, key := registerPlayer(t, h, "recruiter")
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.HireCrew, fmt.Sprintf("/station/%d/crew/hire/Pilot?key=%s", stationID, key))

	body := decodeBody(t, rec)
	require.Equal(t, "ok", body["error"])
	assert.NotNil(t, body["crewId"])
}

func TestHandlers_AssignPilot_MovesHireOntoShip(t *testing.T) {
	h, w := testHandlers(t)
	_, key := registerPlayer(t, h, "recruiter2")
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.BuyShip, fmt.Sprintf("/station/%d/shipyard/buy/0?key=%s", stationID, key))
	shipID := fmt.Sprintf("%v", decodeBody(t, rec)["shipId"])

	rec = doRequest(h.HireCrew, fmt.Sprintf("/station/%d/crew/hire/Pilot?key=%s", stationID, key))
	crewID := fmt.Sprintf("%v", decodeBody(t, rec)["crewId"])

	rec = doRequest(h.AssignPilot, fmt.Sprintf("/station/%d/crew/assign/%s/%s/pilot?key=%s", stationID, crewID, shipID, key))

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
}

func TestHandlers_AssignTrader_HasNoShipIdSegment(t *testing.T) {
	h, w := testHandlers(t)
	_, key := registerPlayer(t, h, "recruiter3")
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.HireCrew, fmt.Sprintf("/station/%d/crew/hire/Trader?key=%s", stationID, key))
	crewID := fmt.Sprintf("%v", decodeBody(t, rec)["crewId"])

	rec = doRequest(h.AssignTrader, fmt.Sprintf("/station/%d/crew/assign/%s/trading?key=%s", stationID, crewID, key))

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
}

func TestHandlers_MarketPrices_NeedsNoAuthentication(t *testing.T) {
	h, w := testHandlers(t)
	w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.MarketPrices, "/market/prices")

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
	assert.NotNil(t, body["prices"])
}

func TestHandlers_StationUpgrades_ReportsCargoExpansionPrice(t *testing.T) {
	h, w := testHandlers(t)
	stationID := w.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})

	rec := doRequest(h.StationUpgrades, fmt.Sprintf("/station/%d/upgrades", stationID))

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["error"])
	assert.NotNil(t, body["cargoExpansion"])
}
