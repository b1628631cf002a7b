// Package selector implements the interactive course picker shown when no
// saved course defaults exist.
package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"teetimealerts/internal/teetime"
)

// Select renders a 1-indexed listing of courses on out and reads a
// selection from in. The user may answer with the literal token "all" to
// select every course, or a comma-separated list of 1-based indices
// (duplicates and ordering preserved as entered). Invalid input — anything
// non-numeric, out of range, or malformed — prints an error and re-prompts;
// the loop only ends on valid input or when in is exhausted, which returns
// an error.
func Select(in io.Reader, out io.Writer, courses []teetime.Course) ([]string, error) {
	if len(courses) == 0 {
		fmt.Fprintln(out, "No courses found in your area.")
		return nil, nil
	}

	fmt.Fprintln(out, "\n=== Available Golf Courses ===")
	for i, course := range courses {
		fmt.Fprintf(out, "%2d. %s (%s) - %.1f miles\n", i+1, course.FullName, course.City, course.Distance)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "\nEnter the numbers of courses you want to track (comma-separated)")
		fmt.Fprintln(out, "Example: 1,3,5,7")
		fmt.Fprint(out, "Or type 'all' to select all courses: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read selection: %w", err)
			}
			return nil, fmt.Errorf("no course selection entered")
		}

		selection := strings.ToLower(strings.TrimSpace(scanner.Text()))

		if selection == "all" {
			names := make([]string, 0, len(courses))
			for _, course := range courses {
				names = append(names, course.Name)
			}
			return names, nil
		}

		names, err := parseIndices(selection, courses)
		if err != nil {
			fmt.Fprintln(out, "Invalid selection. Please try again.")
			continue
		}
		return names, nil
	}
}

// parseIndices resolves a comma-separated list of 1-based indices against
// the course list. Any non-numeric or out-of-range entry invalidates the
// whole selection.
func parseIndices(selection string, courses []teetime.Course) ([]string, error) {
	parts := strings.Split(selection, ",")
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", part)
		}
		if idx < 1 || idx > len(courses) {
			return nil, fmt.Errorf("index %d out of range", idx)
		}
		names = append(names, courses[idx-1].Name)
	}

	return names, nil
}
