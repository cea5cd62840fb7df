package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualCar(t *testing.T) {
	car := NewManualCar("maruti", "Wagonr")

	assert.ErrorIs(t, car.Accelerate(), ErrEngineOff)
	assert.ErrorIs(t, car.Brake(), ErrEngineOff)

	car.StartEngine()
	car.ShiftGear(3)
	require.NoError(t, car.Accelerate())
	require.NoError(t, car.Accelerate())
	assert.Equal(t, 10, car.Speed())
	assert.Equal(t, 3, car.Gear())

	require.NoError(t, car.Brake())
	assert.Equal(t, 5, car.Speed())

	car.StopEngine()
	assert.False(t, car.EngineOn())
	assert.Zero(t, car.Speed())
	assert.Equal(t, "maruti Wagonr", car.String())
}

func TestCar_BrakeFloorsAtZero(t *testing.T) {
	car := NewManualCar("maruti", "Wagonr")
	car.StartEngine()
	require.NoError(t, car.Brake())
	assert.Zero(t, car.Speed())
}

func TestElectricCar(t *testing.T) {
	car := NewElectricCar("Tesla", "Model S")
	assert.Zero(t, car.BatteryLevel())

	car.ChargeBattery()
	assert.Equal(t, FullCharge, car.BatteryLevel())

	car.StartEngine()
	require.NoError(t, car.Accelerate())
	assert.Equal(t, AccelerationStep, car.Speed())
}

func TestSportsCar(t *testing.T) {
	var d Drivable = NewSportsCar("Ford", "Mustang")
	car := d.(*SportsCar)

	assert.ErrorIs(t, d.ShiftGear(2), ErrEngineOff)
	assert.ErrorIs(t, d.Accelerate(), ErrEngineOff)
	assert.ErrorIs(t, d.Reverse(), ErrEngineOff)
	assert.ErrorIs(t, d.Brake(), ErrAlreadyStopped)

	d.StartEngine()
	require.NoError(t, d.ShiftGear(1))
	require.NoError(t, d.Accelerate())
	require.NoError(t, d.Accelerate())
	assert.Equal(t, 40, car.Speed())
	assert.ErrorIs(t, d.Reverse(), ErrMoving)

	require.NoError(t, d.Brake())
	require.NoError(t, d.Brake())
	assert.Zero(t, car.Speed())
	assert.ErrorIs(t, d.Brake(), ErrAlreadyStopped)

	require.NoError(t, d.Reverse())
	assert.Equal(t, ReverseGear, car.Gear())

	d.StopEngine()
	assert.Zero(t, car.Gear())
	assert.False(t, car.EngineOn())
}

func TestSportsCar_BrakeClampsPartialStep(t *testing.T) {
	car := NewSportsCar("Ford", "Mustang")
	car.StartEngine()
	require.NoError(t, car.Accelerate())
	car.speed = 15
	require.NoError(t, car.Brake())
	assert.Zero(t, car.Speed())
}
