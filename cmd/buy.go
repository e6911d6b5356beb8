package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/etnz/partsledger"
)

type buyCmd struct {
	entryFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of parts" }
func (*buyCmd) Usage() string {
	return `pl buy -item <name> -model <model> -part <number> -qty <n> -price <unit price> [-d <date>]

  Records a purchase. The stock of the part grows by the quantity and its
  average purchase price is recomputed.
`
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := c.on()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := c.unitPrice()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	p := partsledger.Purchase{
		ID:            uuid.NewString(),
		PartKey:       c.part(),
		Quantity:      c.qty,
		PurchasePrice: price,
		Date:          on,
	}
	if err := partsledger.ValidatePurchase(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating purchase: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		if err := a.book.AddOrUpdatePurchase(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving purchase: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded purchase %s: %s\n", p.ID, p)
		return subcommands.ExitSuccess
	})
}
