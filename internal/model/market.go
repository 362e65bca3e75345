package model

import (
	"math"
	"math/rand"
)

const baseFeeRate = 0.20
const feeRateDecPowf = 1.3

const marketChangeSec = 20.0
const updPriceProba = 0.65
const maxAvgAmpl = 0.02

const priceIncDiv = 10000.0
const priceIncRangeMax = 0.20
const priceIncMinRatio = 0.75

// priceFloor keeps drifted prices strictly positive. The Rust original
// has no such floor and can in principle sample a negative price; this
// port resamples a draw below the floor and, if every retry still falls
// below it, clamps the price to the floor.
const priceFloor = 0.01

// Market :
// Per-station resource price tables. A single instance covers every
// station in the galaxy; callers take the market's lock once per
// operation rather than one lock per station.
type Market struct {
	Prices map[StationId]map[Resource]float64
}

// NewMarket :
// An empty market; stations get their price table seeded on creation.
func NewMarket() Market {
	return Market{Prices: make(map[StationId]map[Resource]float64)}
}

// InitStation :
// Seeds a fresh price table for a newly created station, one entry per
// resource at its catalog base price.
func (mk *Market) InitStation(id StationId) {
	table := make(map[Resource]float64, len(AllResources))
	for _, r := range AllResources {
		table[r] = r.BasePrice()
	}
	mk.Prices[id] = table
}

// FeeRate :
// The cut taken on every buy/sell at a station, set by its trader's
// rank: `0.20 / rank^1.3`. A station without a trader charges the
// untouched base rate (rank 1).
func FeeRate(trader *CrewMember) float64 {
	rank := uint8(1)
	if trader != nil {
		rank = trader.Rank
	}
	return baseFeeRate / math.Pow(float64(rank), feeRateDecPowf)
}

// UpdatePrices :
// Advances every station's price table by `elapsed` seconds of drift.
// A roll against `min(1, elapsed/20s)` decides whether this station's
// prices move at all this tick; conditional on that, each resource
// independently has a 0.65 chance to re-sample around a mean pulling
// it back toward its catalog base price.
func (mk *Market) UpdatePrices(elapsed float64, rng *rand.Rand) {
	rollProba := math.Min(1, elapsed/marketChangeSec)
	for _, table := range mk.Prices {
		if rng.Float64() >= rollProba {
			continue
		}
		for _, r := range AllResources {
			price, ok := table[r]
			if !ok || rng.Float64() >= updPriceProba {
				continue
			}
			table[r] = driftPrice(r, price, rng)
		}
	}
}

// driftPrice :
// One resampled price for a resource currently at `price`, mean-
// reverting toward its catalog base price. A draw below `priceFloor` is
// resampled, up to 8 attempts, after which the floor itself is returned,
// rather than allowing the floorless behavior of the original.
func driftPrice(r Resource, price float64, rng *rand.Rand) float64 {
	base := r.BasePrice()
	mu := (1 - price/base) * maxAvgAmpl
	sigma := math.Abs(mu) + maxAvgAmpl

	for attempt := 0; attempt < 8; attempt++ {
		sample := mu + sigma*rng.NormFloat64()
		next := price * (1 + sample)
		if next >= priceFloor {
			return next
		}
	}
	return priceFloor
}

// MarketTx :
// The settled outcome of a buy or sell: the price-per-unit actually
// charged after market impact, and the fee withheld from the trade.
type MarketTx struct {
	UnitPrice float64
	Fee       float64
	Total     float64
}

// priceImpact :
// The price multiplier a trade of `amount` units at `price` pushes the
// market by, bounded to [0.75x, x] where `x = (amount*price/10000)*0.20`.
func priceImpact(amount, price float64, rng *rand.Rand) float64 {
	x := (amount * price / priceIncDiv) * priceIncRangeMax
	lo := x * priceIncMinRatio
	return lo + rng.Float64()*(x-lo)
}

// Buy :
// Prices a purchase of `amount` units of `resource` at `station`,
// pushing the market price up and withholding `trader`'s fee rate.
// Records the new unit price in the station's price table; touches no
// cargo and no money, which callers settle from the returned result.
func (mk *Market) Buy(station StationId, resource Resource, amount float64, trader *CrewMember, rng *rand.Rand) (MarketTx, *GameError) {
	if amount <= 0 {
		return MarketTx{}, ErrBuyNothing()
	}

	table := mk.Prices[station]
	price := table[resource]
	impact := priceImpact(amount, price, rng)
	unitPrice := price * (1 + impact)

	subtotal := unitPrice * amount
	fee := subtotal * FeeRate(trader)

	table[resource] = unitPrice
	return MarketTx{UnitPrice: unitPrice, Fee: fee, Total: subtotal + fee}, nil
}

// Sell :
// Prices a sale of `amount` units of `resource` at `station`, pushing
// the market price down and withholding `trader`'s fee rate.
func (mk *Market) Sell(station StationId, resource Resource, amount float64, trader *CrewMember, rng *rand.Rand) (MarketTx, *GameError) {
	if amount <= 0 {
		return MarketTx{}, ErrSellNothing()
	}

	table := mk.Prices[station]
	price := table[resource]
	impact := priceImpact(amount, price, rng)
	unitPrice := price * (1 - impact)
	if unitPrice < priceFloor {
		unitPrice = priceFloor
	}

	subtotal := unitPrice * amount
	fee := subtotal * FeeRate(trader)

	table[resource] = unitPrice
	return MarketTx{UnitPrice: unitPrice, Fee: fee, Total: subtotal - fee}, nil
}
