package main

import (
	"teetimealerts/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The teetimealerts tool is a command-line client for the TeeTimeAlerts
// service that:
//   - Validates the requested tee-time window, date, and player count before
//     touching the network
//   - Reads login credentials from EMAIL/PASSWORD in the environment,
//     optionally populated from a local untracked .env file
//   - Caches the user's chosen golf courses in ~/.teetimealerts/config.json
//     so repeated runs skip the interactive course selection
//   - Authenticates against the Google Identity Toolkit to obtain a bearer
//     token valid for the single run
//   - Submits the preference update to the TeeTimeAlerts API and prints the
//     service response
//
// Error handling strategy:
//   - Validation and credential problems abort before any network call
//   - The course search degrades to an empty result on failure so the user
//     is simply re-prompted; authentication and preference submission
//     failures terminate the run with exit code 1
func main() {
	cmd.Execute()
}
