// Package vehicle has two lessons: ManualCar and ElectricCar reuse a Car by
// embedding it, and Drivable describes a car purely by its behaviour.
package vehicle

import (
	"errors"
	"fmt"
)

var (
	ErrEngineOff      = errors.New("engine is off")
	ErrAlreadyStopped = errors.New("speed is already 0km/h")
	ErrMoving         = errors.New("car must be stationary")
)

// Car holds the state shared by every car
type Car struct {
	Brand    string
	Model    string
	engineOn bool
	speed    int
}

// AccelerationStep is how much a plain Car speeds up or slows down per call
const AccelerationStep = 5

func NewCar(brand, model string) Car {
	return Car{Brand: brand, Model: model}
}

func (c *Car) String() string {
	return fmt.Sprintf("%s %s", c.Brand, c.Model)
}

func (c *Car) EngineOn() bool { return c.engineOn }
func (c *Car) Speed() int { return c.speed }

func (c *Car) StartEngine() {
	c.engineOn = true
}

// StopEngine turns the engine off and brings the car to rest
func (c *Car) StopEngine() {
	c.engineOn = false
	c.speed = 0
}

func (c *Car) Accelerate() error {
	if !c.engineOn {
		return ErrEngineOff
	}
	c.speed += AccelerationStep
	return nil
}

// Brake slows the car, never below zero
func (c *Car) Brake() error {
	if !c.engineOn {
		return ErrEngineOff
	}
	c.speed = max(0, c.speed-AccelerationStep)
	return nil
}

// ManualCar is a Car with a gearbox
type ManualCar struct {
	Car
	gear int
}

func NewManualCar(brand, model string) *ManualCar {
	return &ManualCar{Car: NewCar(brand, model)}
}

func (m *ManualCar) Gear() int { return m.gear }

func (m *ManualCar) ShiftGear(g int) {
	m.gear = g
}

// ElectricCar is a Car with a battery
type ElectricCar struct {
	Car
	battery int
}

// FullCharge is the battery level after charging
const FullCharge = 100

func NewElectricCar(brand, model string) *ElectricCar {
	return &ElectricCar{Car: NewCar(brand, model)}
}

func (e *ElectricCar) BatteryLevel() int { return e.battery }

func (e *ElectricCar) ChargeBattery() {
	e.battery = FullCharge
}
