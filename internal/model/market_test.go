package model_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
)

func TestMarket_FeeRate_HigherRankTraderMeansLowerFee(t *testing.T) {
	rookie := model.NewCrewMember(model.Trader)
	veteran := model.NewCrewMember(model.Trader)
	veteran.Rank = 10

	assert.Greater(t, model.FeeRate(&rookie), model.FeeRate(&veteran))
}

func TestMarket_FeeRate_NoTraderUsesBaseRate(t *testing.T) {
	rookie := model.NewCrewMember(model.Trader)

	assert.Equal(t, model.FeeRate(&rookie), model.FeeRate(nil))
}

func TestMarket_Buy_PushesPriceUp(t *testing.T) {
	mk := model.NewMarket()
	mk.InitStation(1)
	rng := rand.New(rand.NewSource(42))
	before := mk.Prices[1][model.Stone]

	_, err := mk.Buy(1, model.Stone, 50, nil, rng)

	require.Nil(t, err)
	assert.Greater(t, mk.Prices[1][model.Stone], before)
}

func TestMarket_Sell_PushesPriceDown(t *testing.T) {
	mk := model.NewMarket()
	mk.InitStation(1)
	rng := rand.New(rand.NewSource(42))
	before := mk.Prices[1][model.Stone]

	_, err := mk.Sell(1, model.Stone, 50, nil, rng)

	require.Nil(t, err)
	assert.Less(t, mk.Prices[1][model.Stone], before)
}

func TestMarket_Buy_RejectsNonPositiveAmount(t *testing.T) {
	mk := model.NewMarket()
	mk.InitStation(1)
	rng := rand.New(rand.NewSource(1))

	_, err := mk.Buy(1, model.Stone, 0, nil, rng)

	require.NotNil(t, err)
}

func TestMarket_UpdatePrices_StaysPositiveOverManyTicks(t *testing.T) {
	mk := model.NewMarket()
	mk.InitStation(1)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		mk.UpdatePrices(1.0, rng)
	}

	for _, r := range model.AllResources {
		assert.Greater(t, mk.Prices[1][r], 0.0, "price for %v should stay strictly positive", r)
	}
}
