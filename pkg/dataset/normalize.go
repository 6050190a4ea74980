package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/samber/lo"
)

// Normalize turns raw records into one typed series per coin. Coins keep
// name order since a map carries none; use NormalizeDocument to keep the
// order of the source file.
func Normalize(raw map[string][]core.RawRecord) (core.SeriesCollection, error) {
	coins := lo.Keys(raw)
	sort.Strings(coins)
	return NormalizeDocument(Document{Coins: coins, Records: raw})
}

// NormalizeDocument normalizes every coin of a decoded document. A date that
// does not match day/month/year aborts the whole document.
func NormalizeDocument(doc Document) (core.SeriesCollection, error) {
	series := make(map[string]core.Series, len(doc.Records))

	for coin, records := range doc.Records {
		s, err := normalizeCoin(coin, records)
		if err != nil {
			return core.SeriesCollection{}, err
		}
		series[coin] = s
	}

	return core.NewSeriesCollection(doc.Coins, series), nil
}

// normalizeCoin drops records without a price and converts the rest,
// keeping the input order.
func normalizeCoin(coin string, records []core.RawRecord) (core.Series, error) {
	series := make(core.Series, 0, len(records))
	for index, record := range records {
		if !record.PriceUSD.Valid {
			continue
		}

		date, err := core.ParseDate(record.Date)
		if err != nil {
			return nil, fmt.Errorf("coin %s record %d: %w", coin, index, err)
		}

		// a price that is not a number counts as missing
		price := coerce(record.PriceUSD)
		if math.IsNaN(price) {
			continue
		}

		series = append(series, core.SeriesPoint{
			Date:      date,
			PriceUSD:  price,
			MarketCap: coerce(record.MarketCap),
			Volume24h: coerce(record.Volume24h),
		})
	}

	return series, nil
}

// coerce converts a raw value into a number: null and blank text are zero,
// decimal text is parsed and anything else is NaN. Infinities and hex
// floats are not numbers in the source data.
func coerce(value core.RawValue) float64 {
	if !value.Valid {
		return 0
	}

	text := strings.TrimSpace(value.Text)
	if text == "" {
		return 0
	}
	if strings.ContainsAny(text, "xXpP_") {
		return math.NaN()
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(number, 0) {
		return math.NaN()
	}
	return number
}
