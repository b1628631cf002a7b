package teetime

import (
	"context"
	"fmt"
	"net/http"

	"teetimealerts/internal/logger"
)

// Preferences describes one tee-time search: an hour window, a date, a
// player count, and the course identifiers to watch.
type Preferences struct {
	StartHour int
	EndHour   int
	Date      string
	Players   string
	Courses   []string
}

// preferencePayload is the fixed-shape body the preferences endpoint
// expects. The single-value fields are wrapped in one-element lists and the
// account constants come from Settings.
type preferencePayload struct {
	UUID        string          `json:"uuid"`
	Preferences preferencesBody `json:"preferences"`
	Analytics   int             `json:"golfer_ignore_in_analytics"`
}

type preferencesBody struct {
	Courses       []string `json:"courses"`
	StartTimes    []int    `json:"start_times"`
	EndTimes      []int    `json:"end_times"`
	Players       []string `json:"players"`
	Dates         []string `json:"dates"`
	PreferencesID int64    `json:"preferences_id"`
	AlertsSent    int      `json:"alerts_sent"`
}

// UpdatePreferences submits the preference update with the bearer token
// obtained from Authenticate and returns the HTTP status and raw response
// body. The call is single-attempt: a second identical invocation
// duplicates or overwrites the update entirely at the service's discretion.
func (c *Client) UpdatePreferences(ctx context.Context, prefs Preferences, idToken string) (int, []byte, error) {
	url := c.Settings.APIBaseURL + "/api/golfer/preferences/add"

	payload := preferencePayload{
		UUID: c.Settings.AccountUUID,
		Preferences: preferencesBody{
			Courses:       prefs.Courses,
			StartTimes:    []int{prefs.StartHour},
			EndTimes:      []int{prefs.EndHour},
			Players:       []string{prefs.Players},
			Dates:         []string{prefs.Date},
			PreferencesID: c.Settings.PreferencesID,
			AlertsSent:    0,
		},
		Analytics: c.Settings.AnalyticsFlag,
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+idToken)

	logger.Debug("[DEBUG] Updating preferences at %s for %d courses\n", url, len(prefs.Courses))

	status, body, err := c.doJSON(ctx, http.MethodPut, url, payload, header)
	if err != nil {
		return status, nil, fmt.Errorf("error updating preferences: %w", err)
	}

	return status, body, nil
}
