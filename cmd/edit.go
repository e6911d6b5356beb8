package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/partsledger"
)

type editCmd struct {
	id string
	entryFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a recorded purchase" }
func (*editCmd) Usage() string {
	return `pl edit -id <id> [-item <name>] [-model <model>] [-part <number>] [-qty <n>] [-price <unit price>] [-d <date>]

  Edits the purchase with that id. Flags that are not given keep their
  current value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the purchase to edit.")
	c.entryFlags.SetFlags(f)
}

// apply returns p with the fields given on the command line replaced.
func (c *editCmd) apply(p partsledger.Purchase, set map[string]bool) (partsledger.Purchase, error) {
	if set["item"] {
		p.ItemName = c.item
	}
	if set["model"] {
		p.ModelName = c.model
	}
	if set["part"] {
		p.PartNumber = c.number
	}
	if set["qty"] {
		p.Quantity = c.qty
	}
	if set["price"] {
		price, err := c.unitPrice()
		if err != nil {
			return p, err
		}
		p.PurchasePrice = price
	}
	if set["d"] {
		on, err := c.on()
		if err != nil {
			return p, err
		}
		p.Date = on
	}
	return p, partsledger.ValidatePurchase(p)
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		current, ok := a.book.Snapshot().Purchases.Find(c.id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no purchase with id %q\n", c.id)
			return subcommands.ExitFailure
		}
		p, err := c.apply(current, visited(f))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error editing purchase: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := a.book.UpdatePurchase(ctx, p); err != nil {
			if errors.Is(err, partsledger.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Error: purchase %q was deleted meanwhile\n", c.id)
			} else {
				fmt.Fprintf(os.Stderr, "Error saving purchase: %v\n", err)
			}
			return subcommands.ExitFailure
		}
		fmt.Printf("Updated purchase %s: %s\n", p.ID, p)
		return subcommands.ExitSuccess
	})
}
