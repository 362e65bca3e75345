package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
)

func TestPlayer_Debit_RejectsWhenInsufficientFunds(t *testing.T) {
	p := model.NewPlayer("trader", 100)

	err := p.Debit(200)

	require.NotNil(t, err)
	assert.Equal(t, 100.0, p.Money, "balance should be untouched on a rejected debit")
}

func TestPlayer_Debit_SucceedsAndLowersBalance(t *testing.T) {
	p := model.NewPlayer("trader", 100)

	err := p.Debit(40)

	require.Nil(t, err)
	assert.Equal(t, 60.0, p.Money)
}

func TestPlayer_Credit_RaisesBalance(t *testing.T) {
	p := model.NewPlayer("trader", 100)

	p.Credit(50)

	assert.Equal(t, 150.0, p.Money)
}

func TestPlayer_UpdateWages_BillsProportionallyToElapsedTime(t *testing.T) {
	p := model.NewPlayer("trader", 100000)
	ship := model.LightShip(1, model.Coord{})
	pilot := model.NewCrewMember(model.Pilot)
	ship.Crew[1] = &pilot
	p.AddShip(ship)

	billedShort := p.UpdateWages(1.0, 0)
	balanceAfterShort := p.Money

	billedLong := p.UpdateWages(10.0, 0)

	assert.Greater(t, billedLong, billedShort, "billing over more elapsed time should bill more")
	assert.Less(t, p.Money, balanceAfterShort)
}

func TestPlayer_UpdateWages_CanDriveBalanceNegative(t *testing.T) {
	p := model.NewPlayer("trader", 1)
	ship := model.HeavyShip(1, model.Coord{})
	pilot := model.NewCrewMember(model.Pilot)
	pilot.Rank = 10
	ship.Crew[1] = &pilot
	p.AddShip(ship)

	p.UpdateWages(1000.0, 0)

	assert.Less(t, p.Money, 0.0)
}

func TestPlayer_RefreshStatus_LowFundsIsEdgeTriggered(t *testing.T) {
	p := model.NewPlayer("trader", 100)

	enteredFirst, _ := p.RefreshStatus(10)
	assert.True(t, enteredFirst)

	enteredAgain, _ := p.RefreshStatus(10)
	assert.False(t, enteredAgain, "should not re-fire while already low on funds")
}

func TestPlayer_RefreshStatus_LossIsSticky(t *testing.T) {
	p := model.NewPlayer("trader", -1)

	_, lostFirst := p.RefreshStatus(0)
	assert.True(t, lostFirst)

	p.Credit(1000000)
	_, lostAgain := p.RefreshStatus(0)
	assert.False(t, lostAgain, "Lost should not clear, and re-triggering should not re-fire")
	assert.True(t, p.Lost, "once lost, a player stays lost even after recovering funds")
}

func TestPlayer_RemoveShip_DropsFromRoster(t *testing.T) {
	p := model.NewPlayer("trader", 100)
	ship := model.LightShip(1, model.Coord{})
	p.AddShip(ship)

	p.RemoveShip(1)

	_, err := p.Ship(1)
	require.NotNil(t, err)
}
