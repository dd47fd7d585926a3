package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/charlie0129/ibatt/pkg/powerinfo"
)

// getHostBatteries is replaced in tests.
var getHostBatteries = powerinfo.GetBatteries

func NewHostCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "host",
		GroupID: gHost,
		Short:   "Show battery status of this computer",
		Long: `Show battery status of this computer.

Useful to compare against the iPhone report, or to check that the machine
the phone is charging from is itself on battery.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bats, err := getHostBatteries()
			if err != nil {
				return fmt.Errorf("failed to get host battery info: %w", err)
			}

			if len(bats) == 0 {
				cmd.Println("No batteries found on this host.")
				return nil
			}

			for i, bat := range bats {
				if i > 0 {
					cmd.Println()
				}
				printHostBattery(cmd, i, bat)
			}

			return nil
		},
	}
}

func printHostBattery(cmd *cobra.Command, idx int, bat *powerinfo.Battery) {
	cmd.Println(bold("Host battery %d:", idx))

	state := bat.State.String()
	switch bat.State {
	case powerinfo.Charging:
		state = color.GreenString(state)
	case powerinfo.Discharging:
		state = color.RedString(state)
	}
	cmd.Printf("  State: %s\n", bold("%s", state))
	cmd.Printf("  Current charge: %s (%.0f / %.0f mWh)\n", bold("%.1f%%", bat.Percent()), bat.Current, bat.Full)
	if bat.Design > 0 {
		cmd.Printf("  Design capacity: %s (health %.1f%%)\n", bold("%.0f mWh", bat.Design), bat.Health())
	}

	watts := bat.ChargeRate / 1e3
	var rateStr string
	switch {
	case watts > 0:
		rateStr = color.New(color.Bold, color.FgGreen).Sprintf("%+.1f W", watts)
	case watts < 0:
		rateStr = color.New(color.Bold, color.FgRed).Sprintf("%+.1f W", watts)
	default:
		rateStr = bold("%+.1f W", watts)
	}
	cmd.Printf("  Charge rate: %s\n", rateStr)
	if bat.DesignVoltage > 0 {
		cmd.Printf("  Voltage: %s\n", bold("%.2f V", bat.DesignVoltage))
	}
}
