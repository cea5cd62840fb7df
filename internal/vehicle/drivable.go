package vehicle

import "fmt"

// Drivable describes what a driver can do with a car
type Drivable interface {
	StartEngine()
	StopEngine()
	ShiftGear(gear int) error
	Accelerate() error
	Reverse() error
	Brake() error
}

// ReverseGear is the gear selected by Reverse
const ReverseGear = -1

// SportsStep is how much a SportsCar speeds up or slows down per call
const SportsStep = 20

// SportsCar implements Drivable
type SportsCar struct {
	Brand    string
	Model    string
	engineOn bool
	speed    int
	gear     int
}

var _ Drivable = (*SportsCar)(nil)

func NewSportsCar(brand, model string) *SportsCar {
	return &SportsCar{Brand: brand, Model: model}
}

func (s *SportsCar) String() string { return fmt.Sprintf("%s %s", s.Brand, s.Model) }
func (s *SportsCar) Speed() int { return s.speed }
func (s *SportsCar) Gear() int { return s.gear }
func (s *SportsCar) EngineOn() bool { return s.engineOn }

func (s *SportsCar) StartEngine() {
	s.engineOn = true
}

// StopEngine resets gear and speed
func (s *SportsCar) StopEngine() {
	s.engineOn = false
	s.gear = 0
	s.speed = 0
}

func (s *SportsCar) ShiftGear(gear int) error {
	if !s.engineOn {
		return ErrEngineOff
	}
	s.gear = gear
	return nil
}

func (s *SportsCar) Accelerate() error {
	if !s.engineOn {
		return ErrEngineOff
	}
	s.speed += SportsStep
	return nil
}

// Reverse selects reverse gear; the car must be running and stationary
func (s *SportsCar) Reverse() error {
	if !s.engineOn {
		return ErrEngineOff
	}
	if s.speed != 0 {
		return ErrMoving
	}
	s.gear = ReverseGear
	return nil
}

func (s *SportsCar) Brake() error {
	if s.speed == 0 {
		return ErrAlreadyStopped
	}
	s.speed = max(0, s.speed-SportsStep)
	return nil
}
