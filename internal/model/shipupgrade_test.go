package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simeis/internal/model"
)

func TestShipUpgrade_Install_CargoExpansionRaisesCapacity(t *testing.T) {
	ship := model.LightShip(1, model.Coord{})
	before := ship.Cargo.Capacity

	model.CargoExpansion.Install(&ship)

	assert.Equal(t, before+100, ship.Cargo.Capacity)
}

func TestShipUpgrade_Install_ReactorUpgradeRaisesPower(t *testing.T) {
	ship := model.LightShip(1, model.Coord{})
	before := ship.ReactorPower

	model.ReactorUpgrade.Install(&ship)

	assert.Equal(t, before+1, ship.ReactorPower)
}

func TestShipUpgrade_Install_HullUpgradeRaisesCapacity(t *testing.T) {
	ship := model.LightShip(1, model.Coord{})
	before := ship.HullDecayCapacity

	model.HullUpgrade.Install(&ship)

	assert.Equal(t, before+100, ship.HullDecayCapacity)
}

func TestShipUpgrade_ParseShipUpgrade_RoundTripsString(t *testing.T) {
	for _, u := range []model.ShipUpgrade{model.CargoExpansion, model.ReactorUpgrade, model.HullUpgrade} {
		parsed, err := model.ParseShipUpgrade(u.String())

		assert.Nil(t, err)
		assert.Equal(t, u, parsed)
	}
}
