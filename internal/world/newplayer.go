package world

import (
	"strings"

	"simeis/internal/model"
)

const testRichPrefix = "test-rich"

// RegisterPlayer :
// Creates a fresh account under `name` and returns its id and bearer
// key. Rejected if the name is already taken. A `test-rich`-prefixed
// name only gets the starting wallet multiplier when the world was
// launched with testing mode enabled; the name itself is never
// sufficient, per the configuration gate described in the simulation
// config.
func (w *World) RegisterPlayer(name string) (model.PlayerId, model.PlayerKey, *model.GameError) {
	if strings.TrimSpace(name) == "" {
		return 0, model.PlayerKey{}, model.ErrInvalidArgument("name")
	}

	id := model.NewPlayerId(name)

	w.playersMu.Lock()
	defer w.playersMu.Unlock()

	if _, exists := w.players[id]; exists {
		return 0, model.PlayerKey{}, model.ErrPlayerAlreadyExists(id, name)
	}

	startingMoney := w.cfg.StartingMoney
	if w.cfg.TestingMode && strings.HasPrefix(name, testRichPrefix) {
		startingMoney *= w.cfg.RichMultiplier
	}

	player := model.NewPlayer(name, startingMoney)

	w.players[id] = &lockedPlayer{player: &player}
	w.keyIndex[player.Key] = id

	w.pushEvent(id, model.NewEvent(model.GameStarted, w.tick))

	return id, player.Key, nil
}

// AuthenticatedPlayerId :
// Resolves a bearer key to a player id, as every authenticated command
// surface entry point needs to do first.
func (w *World) AuthenticatedPlayerId(key model.PlayerKey) (model.PlayerId, *model.GameError) {
	return w.resolveKey(key)
}
