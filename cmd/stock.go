package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/partsledger"
	"github.com/etnz/partsledger/renderer"
)

type stockCmd struct {
	low bool
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "display the stock derived from purchases and sales" }
func (*stockCmd) Usage() string {
	return `pl stock [-low]

  Displays every part with its quantity, average purchase price and value.
  Parts below the low stock threshold are flagged.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.low, "low", false, "Only display parts below the low stock threshold.")
}

func (c *stockCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		stock := a.book.Stock()
		if c.low {
			stock = partsledger.LowStock(stock, a.threshold())
		}
		printMarkdown(renderer.RenderStock(renderer.NewStockView(stock, a.currency(), a.threshold())))
		return subcommands.ExitSuccess
	})
}
