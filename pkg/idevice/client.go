// Package idevice talks to an attached iOS device through the
// libimobiledevice command line tools.
package idevice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/ibatt/pkg/runner"
)

const (
	// DefaultListTool enumerates attached devices, one UDID per line.
	DefaultListTool = "idevice_id"
	// DefaultInfoTool queries lockdown values from the attached device.
	DefaultInfoTool = "ideviceinfo"
	// BatteryDomain is the lockdown domain holding battery values.
	BatteryDomain = "com.apple.mobile.battery"
)

// Client runs the device tools and reports progress to out.
type Client struct {
	runner   runner.Runner
	out      io.Writer
	listTool string
	infoTool string
}

// NewClient is a constructor for creating a new Client. Empty tool names
// fall back to DefaultListTool and DefaultInfoTool.
func NewClient(r runner.Runner, out io.Writer, listTool, infoTool string) *Client {
	if listTool == "" {
		listTool = DefaultListTool
	}
	if infoTool == "" {
		infoTool = DefaultInfoTool
	}
	return &Client{
		runner:   r,
		out:      out,
		listTool: listTool,
		infoTool: infoTool,
	}
}

// ListArgv returns the argument vector used to enumerate devices.
func (c *Client) ListArgv() []string {
	return []string{c.listTool, "-l"}
}

// BatteryArgv returns the argument vector used to query battery values.
func (c *Client) BatteryArgv() []string {
	return []string{c.infoTool, "-q", BatteryDomain}
}

// Locate checks that a device is attached and returns its identifier.
// Failures are reported to out; the returned error only tells the caller
// which case it was.
func (c *Client) Locate(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.ListArgv())
	if err != nil {
		fmt.Fprintf(c.out, "ERROR: Failed to check device connection: %v\n", err)
		return "", fmt.Errorf("%w: %w", ErrDeviceListFailed, err)
	}

	id := strings.TrimSpace(out)
	if id == "" {
		fmt.Fprintln(c.out, "Error: No iPhone device was detected. Try connecting your iPhone.")
		return "", ErrNoDevice
	}

	logrus.WithField("device", id).Debug("device located")
	fmt.Fprintf(c.out, "Connected Device ID: %s\n", id)
	return id, nil
}

// FetchBattery returns the raw output of the battery domain query, untrimmed.
func (c *Client) FetchBattery(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.BatteryArgv())
	if err != nil {
		fmt.Fprintf(c.out, "ERROR: Battery health data could not be fetched: %v\n", err)
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	logrus.WithField("bytes", len(out)).Debug("battery info fetched")
	return out, nil
}
