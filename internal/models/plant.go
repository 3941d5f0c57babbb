package models

import "time"

// CareInstructions holds the care guidance returned by the identification
// service, including the suggested reminder intervals in days.
type CareInstructions struct {
	Water                  string `json:"water"`
	Light                  string `json:"light"`
	Temperature            string `json:"temperature"`
	Soil                   string `json:"soil"`
	Fertilizer             string `json:"fertilizer"`
	SuggestedWaterDays     int    `json:"suggestedWaterDays"`
	SuggestedFertilizeDays int    `json:"suggestedFertilizeDays"`
}

// PlantDetails is one identified plant as stored in the journal.
type PlantDetails struct {
	ID             string           `json:"id"`
	CommonName     string           `json:"commonName"`
	ScientificName string           `json:"scientificName"`
	Description    string           `json:"description"`
	HealthStatus   string           `json:"healthStatus,omitempty"`
	IsPlant        bool             `json:"isPlant"`
	Care           CareInstructions `json:"care"`
	Timestamp      time.Time        `json:"timestamp"`
	ImagePath      string           `json:"imagePath,omitempty"`
}
