package share

import (
	"fmt"
	"strings"

	"github.com/leafyapp/leafy/internal/models"
)

// Summary builds the shareable text blurb for an identified plant.
func Summary(plant models.PlantDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found a %s (%s)! 🌿\n\n", plant.CommonName, plant.ScientificName)
	if plant.Description != "" {
		b.WriteString(plant.Description)
		b.WriteString("\n\n")
	}
	b.WriteString("Identified with Leafy.")
	return b.String()
}
