package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"

	"designlab/internal/collection"
	"designlab/internal/vehicle"
)

// driveReport prints the outcome of one driving action
func driveReport(w io.Writer, ok string, err error) {
	switch {
	case err == nil:
		fmt.Fprintln(w, ok)
	case errors.Is(err, vehicle.ErrEngineOff):
		fmt.Fprintln(w, "The engine is off so car cannot be accelerated")
	case errors.Is(err, vehicle.ErrAlreadyStopped):
		fmt.Fprintln(w, "Speed is already 0km/h")
	default:
		fmt.Fprintln(w, err)
	}
}

func inheritanceScenario(ctx context.Context, w io.Writer) error {
	manual := vehicle.NewManualCar("maruti", "Wagonr")
	manual.StartEngine()
	fmt.Fprintln(w, "Car started")
	manual.ShiftGear(3)
	fmt.Fprintf(w, "Gear Shifted to %d\n", manual.Gear())
	driveReport(w, fmt.Sprintf("Accelerated by %d units", vehicle.AccelerationStep), manual.Accelerate())
	driveReport(w, "Brakes applied", manual.Brake())
	manual.StopEngine()
	fmt.Fprintln(w, "Engine Stopped")

	electric := vehicle.NewElectricCar("Tesla", "Model S")
	electric.ChargeBattery()
	fmt.Fprintf(w, "%s Battery Charged\n", electric)
	driveReport(w, "", electric.Accelerate())
	electric.StartEngine()
	fmt.Fprintln(w, "Car started")
	driveReport(w, fmt.Sprintf("Accelerated by %d units", vehicle.AccelerationStep), electric.Accelerate())
	return nil
}

func abstractionScenario(ctx context.Context, w io.Writer) error {
	car := vehicle.NewSportsCar("Ford", "Mustang")
	var d vehicle.Drivable = car

	if err := d.ShiftGear(1); err != nil {
		fmt.Fprintln(w, "Engine Is Not Started! Cannot shift gear")
	}

	d.StartEngine()
	fmt.Fprintf(w, "%s Engine started\n", car)

	for gear := 1; gear <= 2; gear++ {
		if err := d.ShiftGear(gear); err != nil {
			return err
		}
		fmt.Fprintf(w, "Gear shifted to %d\n", gear)
		driveReport(w, fmt.Sprintf("Accelerated by %dkm/h", vehicle.SportsStep), d.Accelerate())
	}

	for car.Speed() > 0 {
		driveReport(w, "Brakes applied", d.Brake())
	}
	driveReport(w, "Brakes applied", d.Brake())

	if err := d.Reverse(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Gear shifted to reverse")

	d.StopEngine()
	fmt.Fprintf(w, "%s Engine stopped\n", car)
	return nil
}

func vectorScenario(ctx context.Context, w io.Writer) error {
	v := collection.NewVector[int]()
	for i := 1; i <= 5; i++ {
		v.Add(i * 10)
		fmt.Fprintf(w, "Added %d: size %d, capacity %d\n", i*10, v.Len(), v.Cap())
	}
	fmt.Fprintln(w, v.Values())
	return nil
}
