package teetime

import (
	"context"
	"encoding/json"
	"net/http"

	"teetimealerts/internal/logger"
)

// Course is one golf course as returned by the directory search.
// Name is the stable identifier the preferences API expects; FullName,
// City and Distance are display-only.
type Course struct {
	Name     string  `json:"course_name"`
	FullName string  `json:"course_fullname"`
	City     string  `json:"course_city"`
	Distance float64 `json:"course_distance"`
}

type courseSearchRequest struct {
	ZipCode string `json:"zipCode"`
	Radius  int    `json:"radius"`
}

type courseSearchResponse struct {
	Courses []Course `json:"courses"`
}

// SearchCourses looks up golf courses near the given ZIP code. Failures are
// absorbed: any transport error, non-2xx status, or unexpected response
// shape is logged and yields an empty slice, so the caller treats "no
// courses" uniformly whether the area is empty or the request failed.
func (c *Client) SearchCourses(ctx context.Context, zipcode string, radius int) []Course {
	url := c.Settings.APIBaseURL + "/api/course/search/zipcode"

	payload := courseSearchRequest{
		ZipCode: zipcode,
		Radius:  radius,
	}

	_, body, err := c.doJSON(ctx, http.MethodPost, url, payload, nil)
	if err != nil {
		logger.Error("✗ Error searching courses: %v\n", err)
		return nil
	}

	var result courseSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		logger.Error("✗ Error decoding course search response: %v\n", err)
		return nil
	}

	logger.Debug("[DEBUG] Course search near %s returned %d courses\n", zipcode, len(result.Courses))
	return result.Courses
}
