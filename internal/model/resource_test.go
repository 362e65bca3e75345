package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
)

func TestResource_ParseResource_RoundTripsString(t *testing.T) {
	for _, r := range model.AllResources {
		parsed, err := model.ParseResource(r.String())

		require.Nil(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestResource_ParseResource_UnknownNameFails(t *testing.T) {
	_, err := model.ParseResource("NotAResource")

	require.NotNil(t, err)
}

func TestResource_Mineable_IronNeedsRankAboveThree(t *testing.T) {
	assert.False(t, model.Iron.Mineable(3))
	assert.True(t, model.Iron.Mineable(4))
}

func TestResource_Suckable_OzoneNeedsRankAboveThree(t *testing.T) {
	assert.False(t, model.Ozone.Suckable(3))
	assert.True(t, model.Ozone.Suckable(4))
}

func TestResource_Stone_AlwaysMineable(t *testing.T) {
	assert.True(t, model.Stone.Mineable(0))
}
