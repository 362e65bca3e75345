package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/galaxy"
	"simeis/internal/model"
)

func TestGalaxy_CreateStation_IsFindableAfterward(t *testing.T) {
	g := galaxy.New(1)
	pos := model.Coord{X: 10, Y: 10, Z: 10}

	id := g.CreateStation(pos)

	found := false
	err := g.WithStationRead(id, func(s *model.Station) *model.GameError {
		found = true
		assert.Equal(t, pos, s.Position)
		return nil
	})

	require.Nil(t, err)
	assert.True(t, found)
}

func TestGalaxy_WithStationRead_UnknownIdFails(t *testing.T) {
	g := galaxy.New(1)

	err := g.WithStationRead(999, func(s *model.Station) *model.GameError {
		t.Fatal("should never be called for an unknown station")
		return nil
	})

	require.NotNil(t, err)
}

func TestGalaxy_CreateStation_EachGetsAUniqueId(t *testing.T) {
	g := galaxy.New(2)

	a := g.CreateStation(model.Coord{X: 0, Y: 0, Z: 0})
	b := g.CreateStation(model.Coord{X: 2000, Y: 0, Z: 0})

	assert.NotEqual(t, a, b)
}

func TestGalaxy_Scan_RankOneOnlyCoversCurrentSector(t *testing.T) {
	g := galaxy.New(3)
	center := model.Coord{X: 500, Y: 500, Z: 500}

	result := g.Scan(center, 1)

	assert.Len(t, result.Planets, 10, "a single freshly generated sector should hold exactly its fixed planet count")
}

func TestGalaxy_Scan_HigherRankCoversMoreSectors(t *testing.T) {
	g := galaxy.New(4)
	center := model.Coord{X: 500, Y: 500, Z: 500}

	small := g.Scan(center, 1)
	large := g.Scan(center, 2)

	assert.Greater(t, len(large.Planets), len(small.Planets))
}

func TestGalaxy_PlanetAt_MatchesOnlyExactPosition(t *testing.T) {
	g := galaxy.New(5)
	center := model.Coord{X: 500, Y: 500, Z: 500}
	result := g.Scan(center, 1)
	require.NotEmpty(t, result.Planets)

	found := g.PlanetAt(result.Planets[0].Position)

	require.NotNil(t, found)
	assert.Equal(t, result.Planets[0].Position, found.Position)
}
