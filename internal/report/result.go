package report

import "github.com/shopspring/decimal"

type ProductQuantity struct {
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
}

type ChannelSummary struct {
	Orders      int               `json:"orders"`
	TopProducts []ProductQuantity `json:"top_products"`
}

// Result is the reduced view of one day of orders.
type Result struct {
	OrdersTotal int                        `json:"orders_total"`
	Channels    map[Channel]ChannelSummary `json:"channels"`

	RevenueEnabled bool            `json:"revenue_enabled"`
	Revenue        decimal.Decimal `json:"revenue"`
	Currencies     []string        `json:"currencies,omitempty"`
	CurrencyNote   string          `json:"currency_note,omitempty"`
}

func (r Result) OwnStore() ChannelSummary {
	return r.Channels[ChannelOwnStore]
}

func (r Result) Marketplace() ChannelSummary {
	return r.Channels[ChannelMarketplace]
}
