package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/ibatt/pkg/config"
	"github.com/charlie0129/ibatt/pkg/health"
	"github.com/charlie0129/ibatt/pkg/runner"
)

var (
	logLevel       = "info"
	configPath     = config.DefaultPath()
	deviceListTool string
	deviceInfoTool string
	strict         bool
	timeout        time.Duration

	// conf is loaded in PersistentPreRunE.
	conf = config.DefaultConfig()

	// newRunner is replaced in tests.
	newRunner = func() runner.Runner { return runner.NewExec() }
)

var (
	gBasic        = "Basic:"
	gHost         = "Host:"
	commandGroups = []string{
		gBasic,
		gHost,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

// loadConfig reads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	c, err := config.LoadOrDefault(configPath, flags.Changed("config"))
	if err != nil {
		return err
	}

	if flags.Changed("device-list-tool") {
		c.DeviceListTool = deviceListTool
	}
	if flags.Changed("device-info-tool") {
		c.DeviceInfoTool = deviceInfoTool
	}
	if flags.Changed("strict") {
		c.Strict = strict
	}
	if flags.Changed("timeout") {
		c.TimeoutSeconds = int(math.Ceil(timeout.Seconds()))
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	conf = c
	logrus.WithFields(conf.LogrusFields()).Debug("config loaded")
	return nil
}

func handleCmdError(err error) {
	// Pipeline failures were already explained on stdout.
	if health.IsReported(err) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func main() {
	cmd := NewCommand()
	// Reports go to stdout, including those printed with cmd.Print*.
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ibatt",
		Short: "ibatt reports battery health of a connected iPhone",
		Long: `ibatt reports battery health of a connected iPhone.

It needs the libimobiledevice tools (idevice_id, ideviceinfo) in PATH, and the
device must trust this computer. Running ibatt without a subcommand is the
same as 'ibatt health'.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := setupLogger(); err != nil {
				return err
			}
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHealth(cmd)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", config.DefaultPath(), "config file path")
	globalFlags.StringVar(&deviceListTool, "device-list-tool", "", "program used to list attached devices (default from config, idevice_id)")
	globalFlags.StringVar(&deviceInfoTool, "device-info-tool", "", "program used to query device values (default from config, ideviceinfo)")
	globalFlags.BoolVar(&strict, "strict", false, "exit with status 1 when the check fails")
	globalFlags.DurationVar(&timeout, "timeout", 0, "timeout for each tool invocation, rounded up to seconds (0 means none)")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewHealthCommand(),
		NewHostCommand(),
		NewVersionCommand(),
	)

	return cmd
}
