package report

import (
	"cmp"
	"slices"
	"strings"

	"orders_report/internal/idosell"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopN      = 10
	UnknownProduct   = "Unknown Product"
	DefaultCurrency  = "PLN"
	revenuePrecision = 2
)

// Aggregator reduces a day of orders into a Result. It holds no state between
// calls and is safe for concurrent use.
type Aggregator struct {
	topN            int
	revenue         bool
	defaultCurrency string
}

type Option func(*Aggregator)

// WithRevenue enables revenue extraction. Orders without a currency are
// booked in defaultCurrency.
func WithRevenue(defaultCurrency string) Option {
	return func(a *Aggregator) {
		a.revenue = true
		if c := strings.ToUpper(strings.TrimSpace(defaultCurrency)); c != "" {
			a.defaultCurrency = c
		}
	}
}

func NewAggregator(topN int, opts ...Option) *Aggregator {
	if topN <= 0 {
		topN = DefaultTopN
	}
	a := &Aggregator{
		topN:            topN,
		defaultCurrency: DefaultCurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// tally accumulates quantities per product name, remembering first-seen order.
type tally struct {
	index map[string]int
	items []ProductQuantity
}

func newTally() *tally {
	return &tally{index: map[string]int{}}
}

func (t *tally) add(name string, qty float64) {
	if i, ok := t.index[name]; ok {
		t.items[i].Quantity = t.items[i].Quantity.plus(qty)
		return
	}
	t.index[name] = len(t.items)
	t.items = append(t.items, ProductQuantity{Name: name, Quantity: Quantity(qty)})
}

// top orders by quantity descending, then by name.
func (t *tally) top(n int) []ProductQuantity {
	out := slices.Clone(t.items)
	slices.SortStableFunc(out, func(a, b ProductQuantity) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Aggregate counts and revenue are deduplicated by order identifier; product
// quantities are summed over every record, duplicates included.
func (a *Aggregator) Aggregate(orders []idosell.Order) Result {
	allIDs := map[string]struct{}{}
	channelIDs := make([]map[string]struct{}, channelCount)
	products := make([]*tally, channelCount)
	for _, ch := range Channels() {
		channelIDs[ch] = map[string]struct{}{}
		products[ch] = newTally()
	}

	revenueIDs := map[string]struct{}{}
	revenue := decimal.Zero
	var currencies []string

	for _, order := range orders {
		id, hasID := order.ID()
		channel := Classify(order)

		if hasID {
			allIDs[id] = struct{}{}
			channelIDs[channel][id] = struct{}{}

			if _, counted := revenueIDs[id]; a.revenue && !counted {
				costs := order.Costs()
				revenue = revenue.Add(costs.Total())
				currency := costs.Currency
				if currency == "" {
					currency = a.defaultCurrency
				}
				if !slices.Contains(currencies, currency) {
					currencies = append(currencies, currency)
				}
				revenueIDs[id] = struct{}{}
			}
		}

		for _, line := range order.Products() {
			name := line.Name
			if name == "" {
				name = UnknownProduct
			}
			products[channel].add(name, line.Quantity)
		}
	}

	result := Result{
		OrdersTotal:    len(allIDs),
		Channels:       make(map[Channel]ChannelSummary, channelCount),
		RevenueEnabled: a.revenue,
	}
	for _, ch := range Channels() {
		result.Channels[ch] = ChannelSummary{
			Orders:      len(channelIDs[ch]),
			TopProducts: products[ch].top(a.topN),
		}
	}

	if a.revenue {
		slices.Sort(currencies)
		result.Revenue = revenue.Round(revenuePrecision)
		result.Currencies = currencies
		result.CurrencyNote = currencyNote(currencies, a.defaultCurrency)
	}

	return result
}

func currencyNote(currencies []string, defaultCurrency string) string {
	switch {
	case len(currencies) > 1:
		return "Uwaga: zamówienia w wielu walutach (" + strings.Join(currencies, ", ") + "), suma nie jest przeliczana."
	case len(currencies) == 1 && currencies[0] != defaultCurrency:
		return "Waluta: " + currencies[0]
	default:
		return ""
	}
}
