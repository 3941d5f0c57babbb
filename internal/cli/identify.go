package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/leafyapp/leafy/internal/botanist"
	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/reminders"
)

type IdentifyCmd struct {
	Photo  string `arg:"" type:"existingfile" help:"Path to a photo of the plant."`
	Remind bool   `help:"Create watering and feeding reminders from the suggested schedule."`
}

func (c *IdentifyCmd) Run(appCtx *Context) error {
	image, err := os.ReadFile(c.Photo)
	if err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}
	mimeType := http.DetectContentType(image)

	key, err := appCtx.ResolveAPIKey()
	if err != nil {
		return err
	}
	appCtx.Config.SetAPIKey(key)

	ctx := context.Background()
	provider, err := botanist.NewProvider(ctx, appCtx.Config)
	if err != nil {
		return err
	}

	fmt.Println("Analyzing photo...")
	plant, err := provider.Identify(ctx, image, mimeType)
	if err != nil {
		return err
	}
	plant.ImagePath = c.Photo

	appCtx.Journal.Add(plant)

	if !plant.IsPlant {
		fmt.Printf("That doesn't look like a plant — it seems to be a %s.\n", plant.CommonName)
		return nil
	}

	fmt.Printf("\n%s (%s)\n", plant.CommonName, plant.ScientificName)
	if plant.Description != "" {
		fmt.Println(plant.Description)
	}
	if plant.HealthStatus != "" {
		fmt.Printf("Health: %s\n", plant.HealthStatus)
	}
	fmt.Printf("\nWater: %s\nLight: %s\nSoil: %s\nFertilizer: %s\n",
		plant.Care.Water, plant.Care.Light, plant.Care.Soil, plant.Care.Fertilizer)

	if c.Remind {
		c.createReminders(appCtx, plant.ID, plant.CommonName, plant.Care.SuggestedWaterDays, plant.Care.SuggestedFertilizeDays)
	} else if plant.Care.SuggestedWaterDays > 0 {
		fmt.Printf("\nSuggested: water every %d day(s), feed every %d day(s).\n",
			plant.Care.SuggestedWaterDays, plant.Care.SuggestedFertilizeDays)
		fmt.Println("Re-run with --remind to create care reminders, or use 'leafy care add'.")
	}

	fmt.Printf("\nSaved to the journal. (id %s)\n", plant.ID)
	return nil
}

func (c *IdentifyCmd) createReminders(appCtx *Context, plantID, plantName string, waterDays, fertilizeDays int) {
	now := time.Now()
	schedule := []struct {
		careType constants.CareType
		days     int
	}{
		{constants.CareWater, waterDays},
		{constants.CareFertilizer, fertilizeDays},
	}
	for _, s := range schedule {
		if s.days <= 0 {
			continue
		}
		if appCtx.Repo.HasReminder(plantID, s.careType) {
			fmt.Printf("%s already has a %s reminder, skipping.\n", plantName, s.careType)
			continue
		}
		r := reminders.NewReminder(uuid.New().String(), plantID, plantName, s.careType, s.days, now)
		appCtx.Repo.Add(r)
		fmt.Printf("Added a %s reminder every %d day(s).\n", s.careType, s.days)
	}
}
