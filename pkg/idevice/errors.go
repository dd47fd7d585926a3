package idevice

import "errors"

var (
	// ErrDeviceListFailed is returned when the device list tool could not be run or exited non-zero
	ErrDeviceListFailed = errors.New("failed to list devices")

	// ErrNoDevice is returned when the device list tool reports no attached device
	ErrNoDevice = errors.New("no device detected")

	// ErrFetchFailed is returned when the device info tool could not be run or exited non-zero
	ErrFetchFailed = errors.New("failed to fetch battery info")
)
