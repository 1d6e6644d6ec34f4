package renderer

import (
	"errors"
	"strconv"

	"github.com/etnz/advisor"
	charts "github.com/vicanso/go-charts/v2"
)

// ScenarioChart renders the year by year projections of a, one line per
// regime plus the goal, as a PNG image.
func ScenarioChart(a *advisor.Analysis) ([]byte, error) {
	if len(a.Scenarios) == 0 {
		return nil, errors.New("no scenario to chart")
	}
	years := len(a.Scenarios[0].YearByYearValues)

	values := make([][]float64, 0, len(a.Scenarios)+1)
	names := make([]string, 0, len(a.Scenarios)+1)
	yMax := a.Goal.TargetAmount
	for _, s := range a.Scenarios {
		values = append(values, s.YearByYearValues)
		names = append(names, s.Label)
		for _, v := range s.YearByYearValues {
			yMax = max(yMax, v)
		}
	}
	goal := make([]float64, years)
	for i := range goal {
		goal[i] = a.Goal.TargetAmount
	}
	values = append(values, goal)
	names = append(names, "Goal")

	x := make([]string, years)
	x[0] = "Now"
	for i := 1; i < years; i++ {
		x[i] = strconv.Itoa(i)
	}

	yMin := 0.0
	p, err := charts.LineRender(values,
		charts.TitleTextOptionFunc("Projected value", advisor.FormatMoney(a.Goal.TargetAmount, a.Currency)+" goal"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: x, BoundaryGap: charts.FalseFlag()}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names, Top: charts.PositionTop}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, err
	}
	return p.Bytes()
}
