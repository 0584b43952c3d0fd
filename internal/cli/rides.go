package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/unicaronas/unicaronas/internal/models"
)

func printRideLine(ride models.Ride) {
	fmt.Printf("%s  %s → %s  %s %s  driver: %s  seats left: %d\n",
		ride.ID, ride.Origin.Name, ride.Destination.Name,
		ride.Date, ride.Time, ride.Driver, ride.SeatsLeft())
}

func printRideDetails(ride models.Ride) {
	fmt.Printf("Ride %s\n", ride.ID)
	fmt.Printf("  From:   %s\n", ride.Origin)
	fmt.Printf("  To:     %s\n", ride.Destination)
	fmt.Printf("  When:   %s %s\n", ride.Date, ride.Time)
	fmt.Printf("  Driver: %s\n", ride.Driver)
	fmt.Printf("  Seats:  %d of %d left\n", ride.SeatsLeft(), ride.Vacancies)
	if len(ride.Passengers) > 0 {
		fmt.Printf("  Aboard: %s\n", strings.Join(ride.Passengers, ", "))
	}
}

// rideIDFrom takes the ride id from the command arguments or prompts for it.
func (a *App) rideIDFrom(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, "Enter ride id", os.Stdout)
}

// ListRides prints every posted ride.
func (a *App) ListRides(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	all, res := a.rides.List(ctx)
	if !res.Success {
		fmt.Println(res.Message)
		return
	}
	if len(all) == 0 {
		fmt.Println("No rides posted yet")
		return
	}
	for _, ride := range all {
		printRideLine(ride)
	}
}

// MyRides prints the rides the signed-in account is driving.
func (a *App) MyRides(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	mine, res := a.rides.ListByDriver(ctx, a.account.ID)
	if !res.Success {
		fmt.Println(res.Message)
		return
	}
	if len(mine) == 0 {
		fmt.Println("You have not posted any rides")
		return
	}
	for _, ride := range mine {
		printRideLine(ride)
	}
}

// ShowRide prints the details of a single ride.
func (a *App) ShowRide(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	id, err := a.rideIDFrom(args)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	ride, res := a.rides.Get(ctx, id)
	if !res.Success {
		fmt.Println(res.Message)
		return
	}
	printRideDetails(*ride)
}

// CreateRide collects the new-ride form and posts it.
func (a *App) CreateRide(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	origin, err := GetSimpleText(a.reader, "Enter origin", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	destination, err := GetSimpleText(a.reader, "Enter destination", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	date, err := GetSimpleText(a.reader, "Enter date (dd/mm/yyyy)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	timeOfDay, err := GetSimpleText(a.reader, "Enter time (hh:mm)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	vacanciesText, err := GetSimpleText(a.reader, "Enter number of vacancies", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	vacancies, err := strconv.Atoi(vacanciesText)
	if err != nil {
		fmt.Println("Vacancies must be a number")
		return
	}

	draft := models.Ride{
		Origin:      models.Plain(origin),
		Destination: models.Plain(destination),
		Date:        date,
		Time:        timeOfDay,
		Driver:      a.account.Name,
		DriverID:    a.account.ID,
		Vacancies:   vacancies,
	}

	ride, res := a.rides.Create(ctx, draft)
	if !res.Success {
		fmt.Println(res.Message)
		return
	}
	fmt.Printf("%s (id %s)\n", res.Message, ride.ID)
}

// JoinRide requests a seat on a ride.
func (a *App) JoinRide(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	id, err := a.rideIDFrom(args)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	ride, res := a.rides.Join(ctx, id, *a.account)
	if !res.Success {
		fmt.Println(res.Message)
		return
	}
	fmt.Printf("%s. Seats left: %d\n", res.Message, ride.SeatsLeft())
}

// DeleteRide removes one of the signed-in driver's rides.
func (a *App) DeleteRide(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	id, err := a.rideIDFrom(args)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	res := a.rides.Delete(ctx, id, a.account.ID)
	fmt.Println(res.Message)
}
