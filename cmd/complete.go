package cmd

import (
	"github.com/etnz/analytics"
	"github.com/etnz/analytics/config"
	"github.com/etnz/analytics/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the registered commands.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	locales := map[string]complete.Predictor{"locale": predict.Set(analytics.Locales())}
	chart := map[string]complete.Predictor{"width": predict.Something, "height": predict.Something}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config-file": predict.Files("*"),
			"input-file":  predict.Files("*.csv"),
			"benchmark":   predict.Something,
			"currency":    predict.Something,
			"provider":    predict.Set{config.ProviderYahoo, config.ProviderEODHD, config.ProviderFile},
			"prices-file": predict.Files("*.jsonl"),
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"analyze":  {Flags: chart},
			"holdings": {Flags: locales},
			"benchmark": {
				Flags: map[string]complete.Predictor{"since": predict.Something, "width": predict.Something, "height": predict.Something},
				Args:  predict.Something,
			},
			"normalize": {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv"), "locale": predict.Set(analytics.Locales())}},
			"fetch": {
				Flags: map[string]complete.Predictor{"since": predict.Something, "o": predict.Files("*.jsonl")},
				Args:  predict.Something,
			},
			"topic":  {Args: predict.Set(append(topics, "*"))},
			"assist": {Args: predict.Something},
			"help":   {Args: predict.Set{"analyze", "holdings", "benchmark", "normalize", "fetch", "topic", "assist"}},
		},
	}
}
