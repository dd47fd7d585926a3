package powerinfo

import (
	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// getAll is replaced in tests.
var getAll = battery.GetAll

// GetBatteries returns every battery the OS reports. A machine without a
// battery yields an empty slice and no error.
func GetBatteries() ([]*Battery, error) {
	bats, err := getAll()
	if err != nil {
		if len(bats) == 0 {
			return nil, pkgerrors.Wrap(err, "failed to read host batteries")
		}
		// Some batteries were readable.
		logrus.WithError(err).Warn("failed to read some host battery fields")
	}

	ret := make([]*Battery, 0, len(bats))
	for _, b := range bats {
		if b == nil {
			continue
		}
		ret = append(ret, fromDistatus(b))
	}

	return ret, nil
}

func fromDistatus(b *battery.Battery) *Battery {
	bat := &Battery{
		State:         convertState(b.State),
		Current:       b.Current,
		Full:          b.Full,
		Design:        b.Design,
		ChargeRate:    b.ChargeRate,
		DesignVoltage: b.DesignVoltage,
	}
	if bat.State == Discharging {
		bat.ChargeRate = -bat.ChargeRate
	}
	return bat
}

func convertState(s battery.State) BatteryState {
	switch s {
	case battery.Discharging:
		return Discharging
	case battery.Charging:
		return Charging
	case battery.Full:
		return Full
	case battery.Empty:
		return Empty
	default:
		return Unknown
	}
}
