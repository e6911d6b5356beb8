package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/partsledger/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the business metrics and the low stock alert" }
func (*dashboardCmd) Usage() string {
	return `pl dashboard

  Displays the total stock value, the number of items in stock, the total
  sales value and the total profit, followed by the parts running low.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(a.book.Snapshot(), a.currency(), a.threshold())))
		return subcommands.ExitSuccess
	})
}
