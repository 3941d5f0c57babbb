package journals

import (
	"fmt"

	"github.com/leafyapp/leafy/internal/cli"
	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/share"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	plants := ctx.Journal.All()
	if len(plants) == 0 {
		fmt.Println("The journal is empty. Run 'leafy identify <photo>' to add a plant.")
		return nil
	}

	for _, p := range plants {
		marker := "🌿"
		if !p.IsPlant {
			marker = "✗"
		}
		fmt.Printf("%s %-24s %-28s %s  [%s]\n",
			marker, p.CommonName, p.ScientificName, p.Timestamp.Format(constants.DateFormat), p.ID)
	}
	return nil
}

type RemoveCmd struct {
	ID    string `arg:"" help:"Journal entry id to remove."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	p, ok := ctx.Journal.Get(c.ID)
	if !ok {
		return fmt.Errorf("no journal entry with id %s", c.ID)
	}

	if !c.Force {
		fmt.Printf("Remove %s from the journal? [y/N] ", p.CommonName)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.Journal.Remove(c.ID)
	fmt.Printf("Removed %s from the journal.\n", p.CommonName)
	return nil
}

type ClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	count := len(ctx.Journal.All())
	if count == 0 {
		fmt.Println("The journal is already empty.")
		return nil
	}

	if !c.Force {
		fmt.Printf("Clear all %d journal entries? [y/N] ", count)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.Journal.Clear()
	fmt.Println("Journal cleared.")
	return nil
}

type ShareCmd struct {
	ID string `arg:"" help:"Journal entry id to share."`
}

func (c *ShareCmd) Run(ctx *cli.Context) error {
	p, ok := ctx.Journal.Get(c.ID)
	if !ok {
		return fmt.Errorf("no journal entry with id %s", c.ID)
	}
	fmt.Println(share.Summary(p))
	return nil
}
