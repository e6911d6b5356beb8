package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/partsledger/config"
	"github.com/etnz/partsledger/date"
	"github.com/etnz/partsledger/docs"
)

// Completion describes the pl command line for shell completion.
func Completion() *complete.Command {
	entry := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := map[string]complete.Predictor{
			"item":  predict.Something,
			"model": predict.Something,
			"part":  predict.Something,
			"qty":   predict.Something,
			"price": predict.Something,
			"d":     predict.Something,
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}
	ranged := map[string]complete.Predictor{
		"period": predict.Set(date.Periods()),
		"d":      predict.Something,
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":       {Flags: entry(nil)},
			"edit":      {Flags: entry(map[string]complete.Predictor{"id": predict.Something})},
			"delete":    {Flags: map[string]complete.Predictor{"id": predict.Something, "password": predict.Something, "confirm": predict.Something}},
			"sell":      {Flags: entry(nil)},
			"stock":     {Flags: map[string]complete.Predictor{"low": predict.Nothing}},
			"purchases": {Flags: ranged},
			"sales":     {Flags: ranged},
			"dashboard": {},
			"query":     {Flags: map[string]complete.Predictor{"c": predict.Nothing}},
			"serve":     {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"topic":     {Args: predict.Set(append(topics, "*"))},
			"help":      {},
			"flags":     {},
			"commands":  {},
		},
		Flags: map[string]complete.Predictor{
			"store-driver": predict.Set(config.Drivers),
			"store":        predict.Files("*"),
			"env-file":     predict.Files("*"),
		},
	}
}
