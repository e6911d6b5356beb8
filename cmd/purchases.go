package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/partsledger/renderer"
)

type purchasesCmd struct {
	rangeFlags
}

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "list purchases, most recent first" }
func (*purchasesCmd) Usage() string {
	return `pl purchases [-period <period>] [-d <date>]

  Lists the purchases, most recent first. With -period, only the purchases of
  the period containing -d (today by default) are listed.
`
}

func (c *purchasesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, filter, err := c.selected()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		ps, label := a.book.Snapshot().Purchases, ""
		if filter {
			ps, label = ps.Between(rng), rng.String()
		}
		printMarkdown(renderer.RenderLedger(renderer.NewPurchasesView(ps, a.currency(), label)))
		return subcommands.ExitSuccess
	})
}
