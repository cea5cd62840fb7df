package lessons

import (
	"context"
	"fmt"
	"io"
	"time"

	"designlab/internal/cart"
	"designlab/internal/observer"
	"designlab/internal/parking"
	"designlab/internal/payment"
)

func observerScenario(ctx context.Context, w io.Writer) error {
	channel := observer.NewChannel("Temp")
	varun := observer.NewConsoleSubscriber("varun", "Varun", channel, w)
	tarun := observer.NewConsoleSubscriber("tarun", "Tarun", channel, w)

	channel.Subscribe(varun)
	channel.Subscribe(tarun)

	if err := upload(ctx, w, channel, "Observer Tutorial"); err != nil {
		return err
	}

	channel.Unsubscribe(varun)

	return upload(ctx, w, channel, "Decorator Pattern Tutorial")
}

// upload announces the new video before subscribers are notified
func upload(ctx context.Context, w io.Writer, channel *observer.Channel, title string) error {
	fmt.Fprintf(w, "%s uploaded %s\n", channel.Name(), title)
	return channel.UploadVideo(ctx, title)
}

func paymentScenario(ctx context.Context, w io.Writer) error {
	c := cart.New("order-1")
	c.AddProduct(cart.Product{Name: "Paneer Tikka", Price: 250})
	c.AddProduct(cart.Product{Name: "Butter Naan", Price: 60})

	strategies := []payment.Strategy{
		payment.CreditCard{CardNumber: "1234-5678-9012-3456"},
		payment.UPI{VPA: "varun@upi"},
		payment.Cash{},
	}
	for _, strategy := range strategies {
		receipt, err := payment.Checkout(ctx, c, strategy)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, receipt)
	}
	return nil
}

func parkingScenario(ctx context.Context, w io.Writer) error {
	lot := parking.NewLot([]*parking.Spot{
		{ID: "C1", Type: parking.Compact, Distance: 1},
		{ID: "R1", Type: parking.Regular, Distance: 2},
		{ID: "O1", Type: parking.Oversized, Distance: 3},
	}, nil)

	entry := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	vehicles := []parking.Vehicle{
		{LicensePlate: "KA-01-1111", Size: parking.Small},
		{LicensePlate: "KA-01-2222", Size: parking.Medium},
		{LicensePlate: "KA-01-3333", Size: parking.Large},
		{LicensePlate: "KA-01-4444", Size: parking.Medium},
	}

	var tickets []parking.Ticket
	for _, v := range vehicles {
		ticket, err := lot.Park(v, entry)
		if err != nil {
			fmt.Fprintf(w, "%s (%s): %v\n", v.LicensePlate, v.Size, err)
			continue
		}
		tickets = append(tickets, ticket)
		fmt.Fprintf(w, "%s (%s) parked at %s [%s]\n", v.LicensePlate, v.Size, ticket.SpotID, ticket.SpotType)
	}

	exit := entry.Add(2*time.Hour + 30*time.Minute)
	for _, t := range tickets {
		fare, err := lot.Unpark(t.ID, exit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s left %s, fare Rs %s\n", t.VehiclePlate, t.SpotID, cart.FormatAmount(fare))
	}
	fmt.Fprintf(w, "Free spots: %d\n", lot.FreeSpots())
	return nil
}
