package care

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leafyapp/leafy/internal/cli"
	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/reminders"
	"github.com/leafyapp/leafy/internal/schedule"
)

type ListCmd struct {
	Group string `help:"Group reminders by plant or by care type." enum:"plant,type," default:""`
	Sort  string `help:"Sort groups by urgency or by name." enum:"urgency,name," default:""`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	mode := constants.GroupMode(settings.GroupMode)
	if c.Group != "" {
		mode = constants.GroupMode(c.Group)
	}
	sortMode := constants.SortMode(settings.SortMode)
	if c.Sort != "" {
		sortMode = constants.SortMode(c.Sort)
	}

	all := ctx.Repo.All()
	if len(all) == 0 {
		fmt.Println("No care reminders yet. Run 'leafy identify <photo>' or 'leafy care add' to create one.")
		return nil
	}

	groups := schedule.BuildGroups(all, mode, sortMode)
	fmt.Print(cli.RenderGroups(groups, time.Now(), ctx.Config.UI.ColoredOutput))
	return nil
}

type DoneCmd struct {
	ID string `arg:"" help:"Reminder id to mark as completed."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	r, ok := ctx.Repo.Get(c.ID)
	if !ok {
		return fmt.Errorf("no reminder with id %s", c.ID)
	}
	ctx.Repo.Complete(c.ID)

	updated, _ := ctx.Repo.Get(c.ID)
	verb := "Watered"
	if r.Type == constants.CareFertilizer {
		verb = "Fed"
	}
	fmt.Printf("%s %s. Next due %s.\n", verb, r.PlantName, updated.NextDue.Format("Jan 2, 2006"))
	return nil
}

type IntervalCmd struct {
	ID   string `arg:"" help:"Reminder id to update."`
	Days int    `arg:"" help:"New interval in days."`
}

func (c *IntervalCmd) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("interval must be a positive number of days")
	}
	return nil
}

func (c *IntervalCmd) Run(ctx *cli.Context) error {
	r, ok := ctx.Repo.Get(c.ID)
	if !ok {
		return fmt.Errorf("no reminder with id %s", c.ID)
	}
	ctx.Repo.UpdateInterval(c.ID, c.Days)

	updated, _ := ctx.Repo.Get(c.ID)
	fmt.Printf("%s now repeats every %d day(s); next due %s.\n",
		r.PlantName, c.Days, updated.NextDue.Format("Jan 2, 2006"))
	return nil
}

type RemoveCmd struct {
	ID    string `arg:"" help:"Reminder id to remove."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	r, ok := ctx.Repo.Get(c.ID)
	if !ok {
		return fmt.Errorf("no reminder with id %s", c.ID)
	}

	if !c.Force {
		fmt.Printf("Delete the %s reminder for %s? [y/N] ", r.Type, r.PlantName)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.Repo.Remove(c.ID)
	fmt.Printf("Removed the %s reminder for %s.\n", r.Type, r.PlantName)
	return nil
}

type AddCmd struct {
	Plant string `arg:"" help:"Journal plant id, or a plant name for an ad-hoc reminder."`
	Type  string `arg:"" help:"Care type: water or fertilizer."`
	Days  int    `arg:"" help:"Interval in days."`
}

func (c *AddCmd) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("interval must be a positive number of days")
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	careType, err := cli.ParseCareType(c.Type)
	if err != nil {
		return err
	}

	// The plant argument can reference a journal entry; otherwise it is
	// treated as a free-form name with a synthetic plant id.
	plantID := c.Plant
	plantName := c.Plant
	if p, ok := ctx.Journal.Get(c.Plant); ok {
		plantName = p.CommonName
	} else {
		plantID = uuid.New().String()
	}

	if ctx.Repo.HasReminder(plantID, careType) {
		return fmt.Errorf("%s already has a %s reminder", plantName, careType)
	}

	r := reminders.NewReminder(uuid.New().String(), plantID, plantName, careType, c.Days, time.Now())
	ctx.Repo.Add(r)
	fmt.Printf("Added a %s reminder for %s, every %d day(s). First due %s. (id %s)\n",
		careType, plantName, c.Days, r.NextDue.Format("Jan 2, 2006"), r.ID)
	return nil
}
