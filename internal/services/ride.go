package services

import (
	"context"

	"github.com/unicaronas/unicaronas/internal/logging"
	"github.com/unicaronas/unicaronas/internal/models"
	"github.com/unicaronas/unicaronas/internal/repositories/rides"
)

// RideService wraps the ride repository for the UI: listing, creation with
// form-level validation, joins with the passenger guards, and owner-only
// deletion.
type RideService struct {
	rides rides.Repository
	log   logging.Logger
}

// NewRideService constructs a RideService over the given repository.
func NewRideService(repo rides.Repository, log logging.Logger) *RideService {
	return &RideService{rides: repo, log: log}
}

// List returns all posted rides.
func (s *RideService) List(ctx context.Context) ([]models.Ride, Result) {
	all, err := s.rides.List(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to list rides", "error", err)
		return nil, fail(err)
	}
	return all, ok("")
}

// ListByDriver returns the rides posted by the given account.
func (s *RideService) ListByDriver(ctx context.Context, driverID string) ([]models.Ride, Result) {
	all, res := s.List(ctx)
	if !res.Success {
		return nil, res
	}
	mine := make([]models.Ride, 0, len(all))
	for _, ride := range all {
		if ride.DriverID == driverID {
			mine = append(mine, ride)
		}
	}
	return mine, ok("")
}

// Create validates the draft the way the creation form always did and
// persists it.
func (s *RideService) Create(ctx context.Context, draft models.Ride) (*models.Ride, Result) {
	if draft.Origin.Name == "" {
		return nil, failMsg("Please set the origin")
	}
	if draft.Destination.Name == "" {
		return nil, failMsg("Please set the destination")
	}
	if draft.Vacancies < 1 {
		return nil, failMsg("Please set a valid number of vacancies")
	}

	created, err := s.rides.Create(ctx, draft)
	if err != nil {
		s.log.Error(ctx, "failed to create ride", "error", err)
		return nil, fail(err)
	}
	s.log.Info(ctx, "ride created", "id", created.ID, "driver", created.DriverID)
	return &created, ok("Ride posted")
}

// Get returns a single ride by id.
func (s *RideService) Get(ctx context.Context, id string) (*models.Ride, Result) {
	ride, err := s.rides.GetByID(ctx, id)
	if err != nil {
		return nil, fail(err)
	}
	return &ride, ok("")
}

// Join adds the signed-in account to the ride's passenger list. Passengers
// are recorded by display name, matching the stored data. The own-ride and
// already-aboard checks read the same snapshot the join will re-read, so
// they share the repository's lost-update caveat.
func (s *RideService) Join(ctx context.Context, id string, account models.Account) (*models.Ride, Result) {
	ride, err := s.rides.GetByID(ctx, id)
	if err != nil {
		return nil, fail(err)
	}
	if ride.DriverID == account.ID {
		return nil, failMsg("You cannot join your own ride")
	}
	if ride.HasPassenger(account.Name) {
		return nil, failMsg("You are already aboard this ride")
	}

	updated, err := s.rides.Join(ctx, id, account.Name)
	if err != nil {
		s.log.Warn(ctx, "join failed", "ride", id, "error", err)
		return nil, fail(err)
	}
	return &updated, ok("You joined the ride")
}

// Delete removes a ride on behalf of requesterID.
func (s *RideService) Delete(ctx context.Context, id string, requesterID string) Result {
	if err := s.rides.Delete(ctx, id, requesterID); err != nil {
		s.log.Warn(ctx, "delete failed", "ride", id, "error", err)
		return fail(err)
	}
	return ok("Ride deleted")
}
