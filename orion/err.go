package orion

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGame is returned when a nil game or loop is passed where one is
	// required.
	ErrNilGame = errors.New("game must not be nil")

	// ErrNilWindow is returned when a nil native window is passed where one
	// is required.
	ErrNilWindow = errors.New("window must not be nil")

	// ErrDeviceManagerExists is returned when a second graphics device
	// manager is registered with the same loop.
	ErrDeviceManagerExists = errors.New("a graphics device manager is already registered with this game")

	// ErrInvalidTimeStep is returned when the loop could never accumulate a
	// full fixed step because MaxElapsedTime is below TargetElapsedTime.
	ErrInvalidTimeStep = errors.New("max elapsed time must not be below the target elapsed time")
)

// Handle panics if err is not nil. It is meant for examples and tools where
// an error is a programming mistake.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
