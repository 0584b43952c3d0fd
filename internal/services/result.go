// Package services composes the repositories into the lifecycle the UI
// consumes. Every operation reports a uniform Result: repository errors
// never cross this boundary, they are logged and mapped to human-readable
// messages, so UI code never branches on the error taxonomy.
package services

import (
	"errors"

	"github.com/unicaronas/unicaronas/internal/common"
)

// Result is the uniform outcome of a service operation.
type Result struct {
	Success bool
	Message string
}

func ok(message string) Result {
	return Result{Success: true, Message: message}
}

func fail(err error) Result {
	return Result{Success: false, Message: messageFor(err)}
}

func failMsg(message string) Result {
	return Result{Success: false, Message: message}
}

// messageFor resolves every failure to a human-readable message.
func messageFor(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, common.ErrDuplicateEmail):
		return "This email is already registered"
	case errors.Is(err, common.ErrRideFull):
		return "This ride is already full"
	case errors.Is(err, common.ErrUnauthorized):
		return "Only the driver of this ride can do that"
	case errors.Is(err, common.ErrNotFound):
		return "Record not found"
	case errors.Is(err, common.ErrCorruptData):
		return "Stored data could not be read"
	default:
		return "Something went wrong, please try again"
	}
}
