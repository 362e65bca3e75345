package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simeis/internal/model"
)

func TestCargo_AddResource_FillsExactlyToCapacity(t *testing.T) {
	c := model.NewCargo(10)

	added := c.AddResource(model.HullPlate, 1000)

	assert.InDelta(t, c.Capacity, c.Usage, 1e-9, "usage should never exceed capacity")
	assert.Greater(t, added, 0.0, "some quantity should have been added before truncating")
}

func TestCargo_AddResource_NoSpaceLeftReturnsZero(t *testing.T) {
	c := model.NewCargo(1)
	c.AddResource(model.HullPlate, 1000)

	added := c.AddResource(model.Stone, 1)

	assert.Equal(t, 0.0, added)
	assert.True(t, c.IsFull())
}

func TestCargo_Unload_NeverGoesBelowZero(t *testing.T) {
	c := model.NewCargo(100)
	c.AddResource(model.Iron, 5)

	unloaded := c.Unload(model.Iron, 50)

	assert.Equal(t, 5.0, unloaded, "should only unload what's actually present")
	assert.Equal(t, 0.0, c.Usage)
	assert.Equal(t, 0.0, c.Resources[model.Iron])
}

func TestCargo_Unload_UnknownResourceReturnsZero(t *testing.T) {
	c := model.NewCargo(100)

	unloaded := c.Unload(model.Fuel, 10)

	assert.Equal(t, 0.0, unloaded)
}

func TestCargo_SpaceFor_ShrinksAsUsageGrows(t *testing.T) {
	c := model.NewCargo(10)

	before := c.SpaceFor(model.Stone)
	c.AddResource(model.Stone, 1)
	after := c.SpaceFor(model.Stone)

	assert.Greater(t, before, after)
}
