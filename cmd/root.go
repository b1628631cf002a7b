package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"teetimealerts/internal/config"
	"teetimealerts/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `teetimealerts`.
// Running it with the tee-time flags performs one preference update;
// subcommands cover course re-selection.
var rootCmd = &cobra.Command{
	Use:   "teetimealerts",
	Short: "Update golf tee time preferences via the TeeTimeAlerts API",
	Long: "Authenticates against the TeeTimeAlerts identity provider and submits a\n" +
		"tee-time search preference (time window, date, player count, saved course\n" +
		"list). Credentials come from EMAIL and PASSWORD in the environment or a\n" +
		"local .env file; the chosen courses are cached in ~/.teetimealerts.",

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: runUpdate,
}

// Execute initializes flags, registers subcommands, and starts the command
// execution. A failure in any stage exits the process with code 1.
func Execute() {
	// Register the global --debug flag before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Tee-time flags for the default update action. All four are required.
	rootCmd.Flags().IntVar(&startTime, "start_time", 0, "Start time hour in 24hr format (0-23)")
	rootCmd.Flags().IntVar(&endTime, "end_time", 0, "End time hour in 24hr format (0-23)")
	rootCmd.Flags().StringVar(&date, "date", "", "Date in YYYY-MM-DD format")
	rootCmd.Flags().IntVar(&numPlayers, "num_players", 0, "Number of players (1-4)")
	_ = rootCmd.MarkFlagRequired("start_time")
	_ = rootCmd.MarkFlagRequired("end_time")
	_ = rootCmd.MarkFlagRequired("date")
	_ = rootCmd.MarkFlagRequired("num_players")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("✗ Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves the optional settings override file; when the home
// directory cannot be determined the built-in defaults are used as-is.
func loadSettings() config.Settings {
	path, err := config.SettingsPath()
	if err != nil {
		logger.Debug("[DEBUG] Cannot locate settings file: %v\n", err)
		return config.Defaults()
	}
	return config.LoadSettings(path)
}
