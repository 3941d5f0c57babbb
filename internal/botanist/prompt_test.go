package botanist

import (
	"strings"
	"testing"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare payload", `{"isPlant": true}`, `{"isPlant": true}`},
		{"json fence", "```json\n{\"isPlant\": true}\n```", `{"isPlant": true}`},
		{"plain fence", "```\n{\"isPlant\": true}\n```", `{"isPlant": true}`},
		{"surrounding whitespace", "  \n{\"isPlant\": true}\n  ", `{"isPlant": true}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripJSONFences(tc.in); got != tc.want {
				t.Errorf("stripJSONFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePlantDetails(t *testing.T) {
	raw := "```json\n" + `{
		"isPlant": true,
		"commonName": "Monstera Deliciosa",
		"scientificName": "Monstera deliciosa",
		"description": "A dramatic climber with split leaves.",
		"healthStatus": "Thriving",
		"care": {
			"water": "Weekly, when topsoil is dry",
			"light": "Bright indirect",
			"temperature": "18-27C",
			"soil": "Well-draining aroid mix",
			"fertilizer": "Monthly in growing season",
			"suggestedWaterDays": 7,
			"suggestedFertilizeDays": 30
		}
	}` + "\n```"

	plant, err := parsePlantDetails(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !plant.IsPlant {
		t.Error("IsPlant = false, want true")
	}
	if plant.CommonName != "Monstera Deliciosa" {
		t.Errorf("CommonName = %q", plant.CommonName)
	}
	if plant.Care.SuggestedWaterDays != 7 || plant.Care.SuggestedFertilizeDays != 30 {
		t.Errorf("care suggestions = %d/%d, want 7/30", plant.Care.SuggestedWaterDays, plant.Care.SuggestedFertilizeDays)
	}
	if plant.ID == "" {
		t.Error("ID not stamped")
	}
	if plant.Timestamp.IsZero() {
		t.Error("Timestamp not stamped")
	}
}

func TestParsePlantDetails_NotAPlant(t *testing.T) {
	plant, err := parsePlantDetails(`{"isPlant": false, "commonName": "Coffee Mug", "scientificName": "N/A"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if plant.IsPlant {
		t.Error("IsPlant = true, want false")
	}
}

func TestParsePlantDetails_Errors(t *testing.T) {
	if _, err := parsePlantDetails(""); err == nil {
		t.Error("empty response should error")
	}
	if _, err := parsePlantDetails("I'm sorry, I can't see an image."); err == nil {
		t.Error("non-JSON response should error")
	}
	if _, err := parsePlantDetails("not json"); err == nil || !strings.Contains(err.Error(), "clearer photo") {
		t.Error("parse failure should mention retaking the photo")
	}
}
