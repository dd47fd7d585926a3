package health

import (
	"errors"

	"github.com/charlie0129/ibatt/pkg/idevice"
)

var (
	// ErrNoBatteryInfo is returned when the battery query printed nothing that could be parsed
	ErrNoBatteryInfo = errors.New("no battery health information found")

	// ErrDeviceListFailed is returned when the device list tool could not be run or exited non-zero
	ErrDeviceListFailed = idevice.ErrDeviceListFailed

	// ErrNoDevice is returned when no device is attached
	ErrNoDevice = idevice.ErrNoDevice

	// ErrFetchFailed is returned when the battery query could not be run or exited non-zero
	ErrFetchFailed = idevice.ErrFetchFailed
)

// IsReported reports whether err is one of the pipeline outcomes that has
// already been explained to the user on stdout.
func IsReported(err error) bool {
	return errors.Is(err, ErrDeviceListFailed) ||
		errors.Is(err, ErrNoDevice) ||
		errors.Is(err, ErrFetchFailed) ||
		errors.Is(err, ErrNoBatteryInfo)
}
