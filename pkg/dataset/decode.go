package dataset

import (
	"fmt"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/tidwall/gjson"
)

// Source document field names
const (
	fieldDate      = "date"
	fieldPriceUSD  = "price_usd"
	fieldMarketCap = "market_cap"
	fieldVolume24h = "24h_vol"
)

// Document is the decoded coins file: raw records per coin plus the coin
// order of the source object.
type Document struct {
	Coins   []string
	Records map[string][]core.RawRecord
}

// Decode reads a JSON object keyed by coin whose values are arrays of
// records. String and number metrics are kept as text, null and missing
// ones become invalid raw values.
func Decode(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, fmt.Errorf("%w: invalid json", core.ErrMalformedDocument)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Document{}, fmt.Errorf("%w: top level value is not an object", core.ErrMalformedDocument)
	}

	doc := Document{Records: make(map[string][]core.RawRecord)}

	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		coin := key.String()
		if !value.IsArray() {
			decodeErr = fmt.Errorf("%w: coin %s is not an array", core.ErrMalformedDocument, coin)
			return false
		}

		items := value.Array()
		records := make([]core.RawRecord, 0, len(items))
		for index, item := range items {
			if !item.IsObject() {
				decodeErr = fmt.Errorf("%w: coin %s record %d is not an object",
					core.ErrMalformedDocument, coin, index)
				return false
			}
			records = append(records, decodeRecord(item))
		}

		if _, seen := doc.Records[coin]; !seen {
			doc.Coins = append(doc.Coins, coin)
		}
		doc.Records[coin] = records
		return true
	})

	if decodeErr != nil {
		return Document{}, decodeErr
	}

	return doc, nil
}

func decodeRecord(item gjson.Result) core.RawRecord {
	var record core.RawRecord
	item.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case fieldDate:
			record.Date = value.String()
		case fieldPriceUSD:
			record.PriceUSD = rawValue(value)
		case fieldMarketCap:
			record.MarketCap = rawValue(value)
		case fieldVolume24h:
			record.Volume24h = rawValue(value)
		}
		return true
	})
	return record
}

func rawValue(value gjson.Result) core.RawValue {
	switch value.Type {
	case gjson.Null:
		return core.Null()
	case gjson.String:
		return core.Text(value.Str)
	default:
		return core.Text(value.Raw)
	}
}
