package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
	"simeis/internal/world"
	"simeis/pkg/arguments"
	"simeis/pkg/logger"
)

func testConfig() arguments.SimulationConfig {
	return arguments.SimulationConfig{
		Seed:          1234,
		StartingMoney: 30000,
	}
}

func testWorld(t *testing.T) *world.World {
	t.Helper()
	log := logger.NewStdLogger("test", "127.0.0.1")
	t.Cleanup(log.Release)
	return world.New(testConfig(), log)
}

func TestWorld_RegisterPlayer_RejectsDuplicateName(t *testing.T) {
	w := testWorld(t)

	_, _, err := w.RegisterPlayer("alice")
	require.Nil(t, err)

	_, _, err = w.RegisterPlayer("alice")
	require.NotNil(t, err)
}

func TestWorld_RegisterPlayer_RejectsBlankName(t *testing.T) {
	w := testWorld(t)

	_, _, err := w.RegisterPlayer("   ")

	require.NotNil(t, err)
}

func TestWorld_AuthenticatedPlayerId_ResolvesIssuedKey(t *testing.T) {
	w := testWorld(t)
	id, key, err := w.RegisterPlayer("bob")
	require.Nil(t, err)

	resolved, err := w.AuthenticatedPlayerId(key)

	require.Nil(t, err)
	assert.Equal(t, id, resolved)
}

func TestWorld_AuthenticatedPlayerId_RejectsUnknownKey(t *testing.T) {
	w := testWorld(t)

	_, err := w.AuthenticatedPlayerId(model.NewPlayerKey())

	require.NotNil(t, err)
}

func TestWorld_DrainSyslog_SeesGameStartedAfterRegistration(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("carol")
	require.Nil(t, err)

	events, err := w.DrainSyslog(key)

	require.Nil(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.GameStarted, events[0].Kind)
}

func TestWorld_DrainSyslog_EmptiesAfterOneDrain(t *testing.T) {
	w := testWorld(t)
	_, key, err := w.RegisterPlayer("dave")
	require.Nil(t, err)

	_, err = w.DrainSyslog(key)
	require.Nil(t, err)

	second, err := w.DrainSyslog(key)
	require.Nil(t, err)
	assert.Empty(t, second)
}
