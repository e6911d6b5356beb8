package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id       string
	password string
	confirm  string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a purchase, behind the delete password" }
func (*deleteCmd) Usage() string {
	return `pl delete -id <id> -password <password> [-confirm <password>]

  Deletes the purchase with that id. The first delete sets the password and
  needs it twice: in -password and in -confirm. See 'pl topic delete'.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the purchase to delete.")
	f.StringVar(&c.password, "password", "", "The delete password.")
	f.StringVar(&c.confirm, "confirm", "", "The delete password again, only needed to set it.")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		set, err := a.gate.IsSet(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading the delete password: %v\n", err)
			return subcommands.ExitFailure
		}
		if !set {
			fmt.Fprintln(os.Stderr, "No delete password yet: this delete sets it to -password, repeated in -confirm.")
		}
		if err := a.gate.Confirm(ctx, c.password, c.confirm); err != nil {
			fmt.Fprintf(os.Stderr, "Error confirming the delete: %v\n", err)
			return subcommands.ExitFailure
		}
		if _, ok := a.book.Snapshot().Purchases.Find(c.id); !ok {
			fmt.Fprintf(os.Stderr, "Warning: no purchase with id %q, nothing deleted.\n", c.id)
			return subcommands.ExitSuccess
		}
		if err := a.book.DeletePurchase(ctx, c.id); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting purchase: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted purchase %s\n", c.id)
		return subcommands.ExitSuccess
	})
}
