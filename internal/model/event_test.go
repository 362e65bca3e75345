package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simeis/internal/model"
)

func TestFifo_RemoveAll_PreservesPushOrder(t *testing.T) {
	f := model.NewFifo()
	f.Push(model.NewEvent(model.GameStarted, 1))
	f.Push(model.NewEvent(model.LowFunds, 2))
	f.Push(model.NewEvent(model.GameLost, 3))

	events := f.RemoveAll()

	require.Len(t, events, 3)
	assert.Equal(t, model.GameStarted, events[0].Kind)
	assert.Equal(t, model.LowFunds, events[1].Kind)
	assert.Equal(t, model.GameLost, events[2].Kind)
}

func TestFifo_Push_OverwritesOldestOnceFull(t *testing.T) {
	f := model.NewFifo()
	for i := uint64(0); i < 15; i++ {
		f.Push(model.NewEvent(model.GameStarted, i))
	}

	assert.Equal(t, 10, f.Len(), "buffer should never grow past its fixed capacity")

	events := f.RemoveAll()
	require.Len(t, events, 10)
	assert.Equal(t, uint64(5), events[0].Tick, "the 5 oldest pushes should have been overwritten")
	assert.Equal(t, uint64(14), events[len(events)-1].Tick)
}

func TestFifo_RemoveAll_EmptiesTheBuffer(t *testing.T) {
	f := model.NewFifo()
	f.Push(model.NewEvent(model.GameStarted, 1))

	f.RemoveAll()

	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.RemoveAll())
}
