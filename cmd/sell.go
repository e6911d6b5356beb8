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

type sellCmd struct {
	entryFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of parts in stock" }
func (*sellCmd) Usage() string {
	return `pl sell -item <name> -model <model> -part <number> -qty <n> [-price <unit price>] [-d <date>]

  Records a sale. The part must be in stock with at least that quantity.
  The price defaults to the average purchase price of the part.
`
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := c.on()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		l := a.book.Snapshot()
		part := c.part()

		if price, last, ok := partsledger.LastSalePrice(l.Sales, part); ok {
			fmt.Fprintf(os.Stderr, "Last sale of %s: %s on %s\n", part, partsledger.M(price, a.currency()), last)
		}

		s := partsledger.Sale{
			ID:       uuid.NewString(),
			PartKey:  part,
			Quantity: c.qty,
			Date:     on,
		}
		if c.price != "" {
			if s.SalePrice, err = c.unitPrice(); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
				return subcommands.ExitUsageError
			}
		} else if item, ok := partsledger.FindStock(l.Stock(), part); ok {
			s.SalePrice = item.AvgPurchasePrice
		}

		if err := a.book.Sell(ctx, s); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording sale: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded sale %s: %s\n", s.ID, s)
		return subcommands.ExitSuccess
	})
}
