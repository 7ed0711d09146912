package report

import (
	"encoding/json"
	"testing"

	"orders_report/internal/idosell"

	"github.com/stretchr/testify/require"
)

type line struct {
	name string
	qty  any
}

type costs struct {
	currency                               any
	products, delivery, payform, insurance any
}

// newOrder builds a record shaped like the orders API output.
func newOrder(id any, service any, lines ...line) idosell.Order {
	products := make([]any, 0, len(lines))
	for _, l := range lines {
		p := map[string]any{"productQuantity": l.qty}
		if l.name != "" {
			p["productName"] = l.name
		}
		products = append(products, p)
	}

	details := map[string]any{
		"orderSourceResults": map[string]any{"auctionsServiceName": service},
		"productsResults":    products,
	}
	order := idosell.Order{"orderDetails": details}
	if id != nil {
		order["orderId"] = id
	}
	return order
}

func withCosts(order idosell.Order, c costs) idosell.Order {
	details := order["orderDetails"].(map[string]any)
	details["payments"] = map[string]any{
		"orderCurrency": map[string]any{
			"currencyId":         c.currency,
			"orderProductsCost":  c.products,
			"orderDeliveryCost":  c.delivery,
			"orderPayformCost":   c.payform,
			"orderInsuranceCost": c.insurance,
		},
	}
	return order
}

func decodeOrders(t *testing.T, raw string) []idosell.Order {
	t.Helper()
	var orders []idosell.Order
	require.NoError(t, json.Unmarshal([]byte(raw), &orders))
	return orders
}

func names(items []ProductQuantity) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}
