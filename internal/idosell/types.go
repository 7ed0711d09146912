package idosell

import "orders_report/internal/period"

// OrderStatuses are the statuses included in the daily report.
var OrderStatuses = []string{
	"new",
	"finished",
	"on_order",
	"packed",
	"ready",
	"payment_waiting",
	"delivery_waiting",
	"wait_for_dispatch",
}

const dateTypeAdded = "add"

type ordersRequest struct {
	Params ordersParams `json:"params"`
}

type ordersParams struct {
	OrdersStatuses []string    `json:"ordersStatuses"`
	OrdersRange    ordersRange `json:"ordersRange"`
	ResultsLimit   int         `json:"resultsLimit"`
	ResultsPage    int         `json:"resultsPage"`
}

type ordersRange struct {
	OrdersDateRange ordersDateRange `json:"ordersDateRange"`
}

type ordersDateRange struct {
	OrdersDateType  string `json:"ordersDateType"`
	OrdersDateBegin string `json:"ordersDateBegin"`
	OrdersDateEnd   string `json:"ordersDateEnd"`
}

func newOrdersRequest(window period.Window, limit int) *ordersRequest {
	statuses := make([]string, len(OrderStatuses))
	copy(statuses, OrderStatuses)

	return &ordersRequest{
		Params: ordersParams{
			OrdersStatuses: statuses,
			OrdersRange: ordersRange{
				OrdersDateRange: ordersDateRange{
					OrdersDateType:  dateTypeAdded,
					OrdersDateBegin: window.Begin(),
					OrdersDateEnd:   window.Finish(),
				},
			},
			ResultsLimit: limit,
		},
	}
}
