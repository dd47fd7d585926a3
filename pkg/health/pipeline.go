// Package health runs the device battery health check end to end.
package health

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/ibatt/pkg/batteryinfo"
	"github.com/charlie0129/ibatt/pkg/idevice"
	"github.com/charlie0129/ibatt/pkg/runner"
)

// FetchFailedMessage is printed after the battery query failed.
const FetchFailedMessage = "Error: Failed to retrieve iPhone's battery health data."

// Device is what the pipeline needs from an attached device.
type Device interface {
	Locate(ctx context.Context) (string, error)
	FetchBattery(ctx context.Context) (string, error)
}

var _ Device = &idevice.Client{}

// Pipeline locates a device, fetches its battery values and prints the
// report.
type Pipeline struct {
	device Device
	out    io.Writer
}

// NewPipeline wires a Pipeline to the libimobiledevice tools run through r.
func NewPipeline(r runner.Runner, out io.Writer, listTool, infoTool string) *Pipeline {
	return &Pipeline{
		device: idevice.NewClient(r, out, listTool, infoTool),
		out:    out,
	}
}

// Run executes the check once. Every failure has already been printed to
// the output writer when Run returns; the error only identifies the branch.
func (p *Pipeline) Run(ctx context.Context) error {
	id, err := p.device.Locate(ctx)
	if err != nil {
		logrus.WithError(err).Debug("device not available")
		return err
	}

	raw, err := p.device.FetchBattery(ctx)
	if err != nil {
		fmt.Fprintln(p.out, FetchFailedMessage)
		return err
	}

	info := batteryinfo.Parse(raw)
	logrus.WithFields(logrus.Fields{
		"device": id,
		"keys":   len(info),
	}).Debug("battery info parsed")

	batteryinfo.Render(p.out, info)
	if len(info) == 0 {
		return ErrNoBatteryInfo
	}

	return nil
}
