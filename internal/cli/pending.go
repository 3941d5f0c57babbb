package cli

import (
	"fmt"
	"time"
)

// PendingCmd prints the overdue reminder count, suitable for shell prompts
// and status bars.
type PendingCmd struct {
	Quiet bool `short:"q" help:"Print only the number."`
}

func (c *PendingCmd) Run(appCtx *Context) error {
	count := appCtx.Repo.PendingCount(time.Now())
	if c.Quiet {
		fmt.Println(count)
		return nil
	}
	switch count {
	case 0:
		fmt.Println("All caught up. No plants waiting on care.")
	case 1:
		fmt.Println("1 plant is waiting on care.")
	default:
		fmt.Printf("%d plants are waiting on care.\n", count)
	}
	return nil
}
