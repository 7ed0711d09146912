package idosell

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Order is one record from the orders listing, kept as decoded JSON. Numbers
// are json.Number so identifiers and amounts survive without float rounding.
// Accessors never fail: a missing or malformed field yields its zero value.
type Order map[string]any

// ProductLine is a product position as found in the record. Name may be blank.
type ProductLine struct {
	Name     string
	Quantity float64
}

// Costs is the order's cost breakdown in the order currency.
type Costs struct {
	Products  decimal.Decimal
	Delivery  decimal.Decimal
	Payform   decimal.Decimal
	Insurance decimal.Decimal
	Currency  string
}

func (c Costs) Total() decimal.Decimal {
	return c.Products.Add(c.Delivery).Add(c.Payform).Add(c.Insurance)
}

// ID returns the order identifier. Null, blank strings and numeric zero count
// as absent.
func (o Order) ID() (string, bool) {
	switch v := o["orderId"].(type) {
	case string:
		id := strings.TrimSpace(v)
		return id, id != ""
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", false
		}
		return v.String(), true
	case float64:
		if v == 0 {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), v != 0
	default:
		return "", false
	}
}

// ServiceName is the marketplace service the order came from, if any.
func (o Order) ServiceName() string {
	v, _ := lookup(o, "orderDetails", "orderSourceResults", "auctionsServiceName")
	s, _ := v.(string)
	return s
}

func (o Order) Products() []ProductLine {
	v, _ := lookup(o, "orderDetails", "productsResults")
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	lines := make([]ProductLine, 0, len(items))
	for _, item := range items {
		product, ok := item.(map[string]any)
		if !ok {
			continue
		}
		lines = append(lines, ProductLine{
			Name:     stringValue(product["productName"]),
			Quantity: floatValue(product["productQuantity"]),
		})
	}
	return lines
}

func (o Order) Costs() Costs {
	v, _ := lookup(o, "orderDetails", "payments", "orderCurrency")
	currency, _ := v.(map[string]any)

	return Costs{
		Products:  decimalValue(currency["orderProductsCost"]),
		Delivery:  decimalValue(currency["orderDeliveryCost"]),
		Payform:   decimalValue(currency["orderPayformCost"]),
		Insurance: decimalValue(currency["orderInsuranceCost"]),
		Currency:  strings.ToUpper(strings.TrimSpace(stringValue(currency["currencyId"]))),
	}
}

func lookup(root map[string]any, path ...string) (any, bool) {
	var current any = root
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

func floatValue(v any) float64 {
	var f float64
	var err error
	switch n := v.(type) {
	case json.Number:
		f, err = n.Float64()
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func decimalValue(v any) decimal.Decimal {
	var d decimal.Decimal
	var err error
	switch n := v.(type) {
	case json.Number:
		d, err = decimal.NewFromString(n.String())
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		d = decimal.NewFromFloat(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Zero
	}
	if err != nil {
		return decimal.Zero
	}
	return d
}
