package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type queryCmd struct {
	compact bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the ledger" }
func (*queryCmd) Usage() string {
	return `pl query [-c] <jsonpath>

  Evaluates the expression against a document with the members purchases,
  sales, stock and summary, and prints the result as JSON.

Usage Examples:
$ pl query '$.stock[?(@.quantity < 3)].itemName'
$ pl query '$.summary.totalProfit'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "c", false, "Print compact JSON.")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required.")
		return subcommands.ExitUsageError
	}

	return withApp(ctx, func(a *app) subcommands.ExitStatus {
		result, err := a.book.Snapshot().Query(f.Arg(0), a.currency(), a.threshold())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying the ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		var out []byte
		if c.compact {
			out, err = json.Marshal(result)
		} else {
			out, err = json.MarshalIndent(result, "", "  ")
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding the result: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	})
}
