package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"teetimealerts/internal/config"
	"teetimealerts/internal/logger"
	"teetimealerts/internal/state"
	"teetimealerts/internal/teetime"
	"teetimealerts/internal/validate"
)

// Tee-time flags bound on the root command.
var (
	startTime  int
	endTime    int
	date       string
	numPlayers int
)

// runUpdate is the default action: validate the flags, resolve the course
// list (saved defaults or interactive selection), authenticate, and submit
// the preference update. Validation and credential checks happen before any
// network call.
func runUpdate(cmd *cobra.Command, args []string) error {
	if err := validate.Args(startTime, endTime, date, numPlayers); err != nil {
		return err
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	settings := loadSettings()
	client := teetime.New(settings)

	// Commands built outside cobra's Execute path carry no context.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	statePath, err := state.DefaultPath()
	if err != nil {
		return fmt.Errorf("cannot locate home directory: %w", err)
	}

	courses, err := resolveCourses(cmd, client, settings, statePath)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		return fmt.Errorf("no courses selected")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nAuthenticating...")
	auth, err := client.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil {
		return err
	}
	if auth.IDToken == "" {
		return fmt.Errorf("failed to get authentication token")
	}

	prefs := teetime.Preferences{
		StartHour: startTime,
		EndHour:   endTime,
		Date:      date,
		Players:   strconv.Itoa(numPlayers),
		Courses:   courses,
	}

	status, body, err := client.UpdatePreferences(ctx, prefs, auth.IDToken)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), prefs, status, body)
	return nil
}

// resolveCourses returns the course identifiers for this run. When saved
// defaults exist the user is offered them first; any answer other than
// n/no/reset reuses the saved list. Otherwise it falls through to a fresh
// ZIP search and interactive selection.
func resolveCourses(cmd *cobra.Command, client *teetime.Client, settings config.Settings, statePath string) ([]string, error) {
	st := state.Load(statePath)
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	if len(st.DefaultCourses) > 0 {
		logger.Info("\n✓ Using saved default courses (%d courses)\n", len(st.DefaultCourses))

		preview := st.DefaultCourses
		suffix := ""
		if len(preview) > 5 {
			preview = preview[:5]
			suffix = " ..."
		}
		fmt.Fprintf(out, "Courses: %s%s\n", strings.Join(preview, ", "), suffix)
		fmt.Fprint(out, "\nUse these courses? (y/n) or 'reset' to choose new ones: ")

		answer, err := readLine(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "n", "no", "reset":
			// Fall through to a fresh selection below.
		default:
			return st.DefaultCourses, nil
		}
	}

	return chooseCourses(cmd, in, client, settings, statePath, st)
}

// readLine reads one line of user input, tolerating a final line without a
// trailing newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	return line, nil
}

// printSummary reports the accepted update, the HTTP status, and the
// service response, pretty-printed when it is JSON.
func printSummary(out io.Writer, prefs teetime.Preferences, status int, body []byte) {
	logger.Info("\n✓ Successfully updated preferences\n")
	fmt.Fprintf(out, "  Start time: %d:00\n", prefs.StartHour)
	fmt.Fprintf(out, "  End time: %d:00\n", prefs.EndHour)
	fmt.Fprintf(out, "  Date: %s\n", prefs.Date)
	fmt.Fprintf(out, "  Players: %s\n", prefs.Players)
	fmt.Fprintf(out, "  Courses: %d selected\n", len(prefs.Courses))

	fmt.Fprintf(out, "\nResponse status: %d\n", status)

	if len(body) == 0 {
		return
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err == nil {
		formatted, err := json.MarshalIndent(pretty, "", "  ")
		if err == nil {
			fmt.Fprintf(out, "\nResponse data: %s\n", formatted)
			return
		}
	}
	fmt.Fprintf(out, "\nResponse text: %s\n", body)
}
