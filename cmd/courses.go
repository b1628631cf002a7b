package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"teetimealerts/internal/config"
	"teetimealerts/internal/logger"
	"teetimealerts/internal/selector"
	"teetimealerts/internal/state"
	"teetimealerts/internal/teetime"
)

// coursesCmd re-runs the course search and selection without touching
// preferences, overwriting the saved defaults.
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Search nearby golf courses and re-save the default selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings()
		client := teetime.New(settings)

		statePath, err := state.DefaultPath()
		if err != nil {
			return fmt.Errorf("cannot locate home directory: %w", err)
		}
		st := state.Load(statePath)

		in := bufio.NewReader(cmd.InOrStdin())
		_, err = chooseCourses(cmd, in, client, settings, statePath, st)
		return err
	},
}

// chooseCourses prompts for a ZIP code, searches the course directory, runs
// the interactive selector, and persists the result as the new defaults.
// An empty ZIP, an empty search result, or an empty selection all abort the
// run.
func chooseCourses(cmd *cobra.Command, in *bufio.Reader, client *teetime.Client, settings config.Settings, statePath string, st *state.State) ([]string, error) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\n=== Setting Up Default Courses ===")
	fmt.Fprint(out, "Enter your ZIP code: ")

	zipcode, err := readLine(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read ZIP code: %w", err)
	}
	zipcode = strings.TrimSpace(zipcode)
	if zipcode == "" {
		return nil, fmt.Errorf("ZIP code is required")
	}

	// Commands built outside cobra's Execute path carry no context.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(out, "\nSearching for courses near %s...\n", zipcode)
	courses := client.SearchCourses(ctx, zipcode, settings.SearchRadius)
	if len(courses) == 0 {
		return nil, fmt.Errorf("no courses found, please check your ZIP code and try again")
	}

	selected, err := selector.Select(in, out, courses)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no courses selected")
	}

	st.DefaultCourses = selected
	st.Zipcode = zipcode
	state.Save(statePath, st)

	logger.Info("\n✓ Saved %d courses as defaults\n", len(selected))
	return selected, nil
}

// init adds the courses subcommand to the root command.
func init() {
	rootCmd.AddCommand(coursesCmd)
}
