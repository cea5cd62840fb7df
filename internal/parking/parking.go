// Package parking models a parking lot with size-aware spots and a pluggable
// fare strategy.
package parking

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type VehicleSize int
type SpotType int

const (
	Small VehicleSize = iota
	Medium
	Large
)

const (
	Compact SpotType = iota
	Regular
	Oversized
)

func (v VehicleSize) String() string {
	switch v {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	}
	return fmt.Sprintf("VehicleSize(%d)", int(v))
}

func (s SpotType) String() string {
	switch s {
	case Compact:
		return "Compact"
	case Regular:
		return "Regular"
	case Oversized:
		return "Oversized"
	}
	return fmt.Sprintf("SpotType(%d)", int(s))
}

var (
	ErrNoSpot         = errors.New("no free spot fits the vehicle")
	ErrSpotOccupied   = errors.New("the slot is already occupied")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrAlreadyParked  = errors.New("vehicle is already parked")
)

type Vehicle struct {
	LicensePlate string
	Size         VehicleSize
}

// Spot is one parking place; Distance orders spots from the entrance
type Spot struct {
	ID             string
	Type           SpotType
	Distance       int
	CurrentVehicle *Vehicle
}

func (s *Spot) IsOccupied() bool { return s.CurrentVehicle != nil }

// CanFit reports whether v fits in a free spot of this type
func (s *Spot) CanFit(v Vehicle) bool {
	if s.IsOccupied() {
		return false
	}
	return int(s.Type) >= int(v.Size)
}

func (s *Spot) Occupy(v Vehicle) error {
	if s.IsOccupied() {
		return ErrSpotOccupied
	}
	s.CurrentVehicle = &v
	return nil
}

func (s *Spot) Vacate() {
	s.CurrentVehicle = nil
}

type Ticket struct {
	ID           string
	VehiclePlate string
	VehicleSize  VehicleSize
	SpotID       string
	SpotType     SpotType
	EntryTime    time.Time
}

// FareStrategy prices a stay
type FareStrategy interface {
	Calculate(t Ticket, exit time.Time) float64
}

// HourlyFare charges per started hour, with a rate per vehicle size and a
// multiplier per spot type
type HourlyFare struct {
	RatePerHour    map[VehicleSize]float64
	SpotMultiplier map[SpotType]float64
}

// DefaultHourlyFare is the fare table used when a lot is built without one
func DefaultHourlyFare() HourlyFare {
	return HourlyFare{
		RatePerHour:    map[VehicleSize]float64{Small: 10, Medium: 20, Large: 40},
		SpotMultiplier: map[SpotType]float64{Compact: 1, Regular: 1, Oversized: 1.5},
	}
}

func (h HourlyFare) Calculate(t Ticket, exit time.Time) float64 {
	hours := math.Ceil(exit.Sub(t.EntryTime).Hours())
	if hours < 1 {
		hours = 1
	}
	multiplier, ok := h.SpotMultiplier[t.SpotType]
	if !ok {
		multiplier = 1
	}
	return hours * h.RatePerHour[t.VehicleSize] * multiplier
}

// Lot assigns vehicles to spots and prices their stay
type Lot struct {
	mu      sync.Mutex
	spots   []*Spot
	tickets map[string]Ticket
	fare    FareStrategy
}

// NewLot creates a lot; spots are tried nearest first
func NewLot(spots []*Spot, fare FareStrategy) *Lot {
	ordered := slices.Clone(spots)
	slices.SortStableFunc(ordered, func(a, b *Spot) int { return a.Distance - b.Distance })
	if fare == nil {
		fare = DefaultHourlyFare()
	}
	return &Lot{
		spots:   ordered,
		tickets: make(map[string]Ticket),
		fare:    fare,
	}
}

// Park puts v in the nearest free spot that fits and issues a ticket
func (l *Lot) Park(v Vehicle, now time.Time) (Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range l.tickets {
		if t.VehiclePlate == v.LicensePlate {
			return Ticket{}, ErrAlreadyParked
		}
	}

	for _, spot := range l.spots {
		if !spot.CanFit(v) {
			continue
		}
		if err := spot.Occupy(v); err != nil {
			return Ticket{}, err
		}
		ticket := Ticket{
			ID:           uuid.NewString(),
			VehiclePlate: v.LicensePlate,
			VehicleSize:  v.Size,
			SpotID:       spot.ID,
			SpotType:     spot.Type,
			EntryTime:    now,
		}
		l.tickets[ticket.ID] = ticket
		return ticket, nil
	}
	return Ticket{}, ErrNoSpot
}

// Unpark frees the ticket's spot and returns the fare
func (l *Lot) Unpark(ticketID string, now time.Time) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[ticketID]
	if !ok {
		return 0, ErrTicketNotFound
	}
	for _, spot := range l.spots {
		if spot.ID == ticket.SpotID {
			spot.Vacate()
			break
		}
	}
	delete(l.tickets, ticketID)
	return l.fare.Calculate(ticket, now), nil
}

// FreeSpots counts unoccupied spots
func (l *Lot) FreeSpots() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, s := range l.spots {
		if !s.IsOccupied() {
			n++
		}
	}
	return n
}
