package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// NewIntervalForm creates the form for editing a reminder's recurrence
// period. Validation keeps the user in the form until the value is a
// positive number of days.
func NewIntervalForm(value *string, plantName string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Interval for %s (days)", plantName)).
				Value(value).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("interval must be a number of days")
					}
					if i <= 0 {
						return fmt.Errorf("interval must be a positive number of days")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
