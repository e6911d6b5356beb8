package cmd

import (
	"errors"
	"flag"

	"github.com/etnz/partsledger/date"
)

// rangeFlags select the records of a period.
type rangeFlags struct {
	period string
	date   string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "period", "", "Only list records of that period (day, week, month, quarter, year).")
	f.StringVar(&r.date, "d", "", "Reference date of the period, defaults to today.")
}

// selected returns the range to list. ok is false when every record is listed.
func (r *rangeFlags) selected() (rng date.Range, ok bool, err error) {
	if r.period == "" {
		if r.date != "" {
			return rng, false, errors.New("-d requires -period")
		}
		return rng, false, nil
	}
	period, err := date.ParsePeriod(r.period)
	if err != nil {
		return rng, false, err
	}
	on := date.Today()
	if r.date != "" {
		if on, err = date.Parse(r.date); err != nil {
			return rng, false, err
		}
	}
	return date.NewRange(on, period), true, nil
}
