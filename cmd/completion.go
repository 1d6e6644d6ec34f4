package cmd

import (
	"github.com/etnz/advisor/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	portfolios := predict.Files("*.json")
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"analyze": {
				Flags: map[string]complete.Predictor{
					"json":    predict.Nothing,
					"html":    predict.Nothing,
					"narrate": predict.Nothing,
					"o":       predict.Files("*"),
				},
				Args: portfolios,
			},
			"chart": {
				Flags: map[string]complete.Predictor{"o": predict.Files("*.png")},
				Args:  portfolios,
			},
			"assist": {Args: portfolios},
			"serve": {
				Flags: map[string]complete.Predictor{
					"port": predict.Something,
					"dev":  predict.Nothing,
				},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
	}
}
