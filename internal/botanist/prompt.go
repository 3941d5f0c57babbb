package botanist

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leafyapp/leafy/internal/models"
)

const identifyPrompt = `Analyze this image. First, determine if the main subject is a real plant (living biological plant).
Identify it and provide comprehensive details in JSON format.

Fields required:
- isPlant: boolean. True if it is a plant, false if it is an inanimate object, animal, person, or unrecognized.
- commonName: The most widely used name (or object name if not a plant).
- scientificName: The Latin botanical name (or "N/A" if not a plant).
- description: A brief, poetic overview.
- healthStatus: A quick assessment (or "N/A" if not a plant).
- care: An object containing water, light, temperature, soil, fertilizer, suggestedWaterDays, and suggestedFertilizeDays.
  (If isPlant is false, provide "N/A" for string fields and 0 for numeric fields).`

const chatSystemPrompt = "You are 'Leafy', an expert botanist. Help users identify plants and troubleshoot care issues. Be professional, warm, and highly practical."

// stripJSONFences removes markdown code fences the model sometimes wraps
// around a JSON payload.
func stripJSONFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// parsePlantDetails decodes the model's identification payload and stamps it
// with an id and timestamp.
func parsePlantDetails(raw string) (models.PlantDetails, error) {
	if raw == "" {
		return models.PlantDetails{}, fmt.Errorf("the assistant returned an empty response")
	}

	var plant models.PlantDetails
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &plant); err != nil {
		return models.PlantDetails{}, fmt.Errorf("failed to parse botanical data (a clearer photo may help): %w", err)
	}

	plant.ID = uuid.New().String()
	plant.Timestamp = time.Now()
	return plant, nil
}
