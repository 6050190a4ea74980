package core

// RawValue is a metric as it appears in the source document. Valid is false
// when the value was null or missing.
type RawValue struct {
	Text  string
	Valid bool
}

// Text returns a present raw value
func Text(value string) RawValue {
	return RawValue{Text: value, Valid: true}
}

// Null returns a missing raw value
func Null() RawValue {
	return RawValue{}
}

// RawRecord is one observation exactly as received
type RawRecord struct {
	Date      string
	PriceUSD  RawValue
	MarketCap RawValue
	Volume24h RawValue
}
