package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/partsledger/logger"
	"github.com/etnz/partsledger/scheduler"
	"github.com/etnz/partsledger/server"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the ledger over HTTP and watch the stock" }
func (*serveCmd) Usage() string {
	return `pl serve [-addr <addr>]

  Serves the HTTP API and runs the low stock check on its schedule, until
  interrupted. See 'pl topic serve'.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address. Overrides PARTSLEDGER_HTTP_ADDR.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	addr := a.cfg.Server.Addr
	if c.addr != "" {
		addr = c.addr
	}

	sched := scheduler.New(a.book, a.cfg.Server.LowStockSchedule, a.threshold(), logger.Named(a.logger, "scheduler"))
	if err := sched.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the scheduler: %v\n", err)
		return subcommands.ExitFailure
	}
	defer sched.Stop()
	sched.CheckLowStock()

	handler := server.NewHandler(a.book, a.gate, a.currency(), a.threshold(), logger.Named(a.logger, "handlers"))
	engine := server.NewRouter(handler, logger.Named(a.logger, "router"))
	if err := server.Run(ctx, addr, engine, a.logger); err != nil {
		a.logger.Error("http server crashed", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
