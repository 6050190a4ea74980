package render

import (
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/core"
	"github.com/samber/lo"
)

// Summary writes one table row per coin: point count, covered dates and
// the price range.
func Summary(w io.Writer, collection core.SeriesCollection) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Coin", "Points", "From", "To", "Min Price", "Max Price", "Last Price"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, coin := range collection.Coins() {
		series, _ := collection.Series(coin)
		first, ok := series.First()
		if !ok {
			table.Append([]string{coin, "0", "-", "-", "-", "-", "-"})
			continue
		}
		last, _ := series.Last()

		prices := series.Values(core.MetricPrice)
		table.Append([]string{
			coin,
			strconv.Itoa(series.Length()),
			core.FormatDate(first.Date),
			core.FormatDate(last.Date),
			chart.FormatCurrency(lo.Reduce(prices, func(acc, v float64, _ int) float64 { return math.Min(acc, v) }, math.Inf(1))),
			chart.FormatCurrency(lo.Reduce(prices, func(acc, v float64, _ int) float64 { return math.Max(acc, v) }, math.Inf(-1))),
			chart.FormatCurrency(last.PriceUSD),
		})
	}

	table.Render()
}
