package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/partsledger/renderer"
)

type salesCmd struct {
	rangeFlags
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list sales, most recent first" }
func (*salesCmd) Usage() string {
	return `pl sales [-period <period>] [-d <date>]

  Lists the sales, most recent first. With -period, only the sales of the
  period containing -d (today by default) are listed.
`
}

func (c *salesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, filter, err := c.selected()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		ss, label := a.book.Snapshot().Sales, ""
		if filter {
			ss, label = ss.Between(rng), rng.String()
		}
		printMarkdown(renderer.RenderLedger(renderer.NewSalesView(ss, a.currency(), label)))
		return subcommands.ExitSuccess
	})
}
