package batteryinfo

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Placeholder is printed for fields the device did not report.
const Placeholder = "Unknown"

// NotFoundMessage is printed instead of the report when nothing was parsed.
const NotFoundMessage = "There was no battery health information found."

var rule = strings.Repeat("=", 40)

// Field is one line of the report.
type Field struct {
	Label  string
	Key    string
	Suffix string
}

// Fields are the report lines, in print order.
var Fields = []Field{
	{Label: "Battery Level", Key: "BatteryCurrentCapacity", Suffix: "%"},
	{Label: "Cycle Count", Key: "CycleCount"},
	{Label: "Maximum Capacity", Key: "MaximumCapacity", Suffix: " mAh"},
	{Label: "Peak Performance", Key: "PeakPower"},
	{Label: "Battery State", Key: "BatteryCharging"},
	{Label: "Temperature", Key: "Temperature", Suffix: " K"},
	{Label: "Voltage", Key: "Voltage", Suffix: " mV"},
	{Label: "Fully Charged", Key: "FullyCharged"},
	{Label: "Charging Status", Key: "IsCharging"},
}

// Render writes the battery health report for info to w.
func Render(w io.Writer, info Info) {
	if len(info) == 0 {
		fmt.Fprintln(w, NotFoundMessage)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.New(color.Bold).Sprint("iPhone Battery Health Information:"))
	fmt.Fprintln(w, rule)
	for _, f := range Fields {
		// The suffix stays even for Placeholder, e.g. "Unknown mAh".
		fmt.Fprintf(w, "%s: %s%s\n", f.Label, info.Get(f.Key), f.Suffix)
	}
	fmt.Fprintln(w, rule)
}
