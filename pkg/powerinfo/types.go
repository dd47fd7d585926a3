// Package powerinfo reads the batteries of the machine ibatt runs on.
package powerinfo

// BatteryState represents the charging state of the battery.
type BatteryState int

const (
	// Unknown indicates the state could not be determined.
	Unknown BatteryState = iota
	// Discharging indicates the battery is discharging.
	Discharging
	// Charging indicates the battery is charging.
	Charging
	// Full indicates the battery is full.
	Full
	// Empty indicates the battery is empty.
	Empty
)

func (s BatteryState) String() string {
	switch s {
	case Discharging:
		return "discharging"
	case Charging:
		return "charging"
	case Full:
		return "full"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Battery is a host battery readout.
// Units:
// - Current, Full, Design: mWh
// - ChargeRate: mW (negative when discharging)
// - DesignVoltage: Volts
type Battery struct {
	State         BatteryState
	Current       float64
	Full          float64
	Design        float64
	ChargeRate    float64
	DesignVoltage float64
}

// Percent returns Current as a percentage of Full, or 0 if Full is unknown.
func (b *Battery) Percent() float64 {
	if b.Full <= 0 {
		return 0
	}
	return b.Current / b.Full * 100
}

// Health returns Full as a percentage of Design, or 0 if Design is unknown.
func (b *Battery) Health() float64 {
	if b.Design <= 0 {
		return 0
	}
	return b.Full / b.Design * 100
}
