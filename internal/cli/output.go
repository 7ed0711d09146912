package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"orders_report/internal/report"
)

type jsonReport struct {
	Date       string        `json:"date"`
	Subject    string        `json:"subject"`
	Result     report.Result `json:"result"`
	Commentary string        `json:"commentary,omitempty"`
}

func writeJSON(w io.Writer, rep report.Report) error {
	payload := jsonReport{
		Date:       rep.Window.Label(),
		Subject:    rep.Subject,
		Result:     rep.Result,
		Commentary: rep.Commentary,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, rep report.Report) {
	res := rep.Result
	fmt.Fprintf(w, "Wysłano: %s\n", rep.Subject)
	fmt.Fprintf(w, "- zamówienia: %d (sklep %d, allegro %d)\n",
		res.OrdersTotal, res.OwnStore().Orders, res.Marketplace().Orders)
	if res.RevenueEnabled {
		fmt.Fprintf(w, "- wartość: %s\n", res.Revenue.StringFixed(2))
	}
	if res.CurrencyNote != "" {
		fmt.Fprintf(w, "- %s\n", res.CurrencyNote)
	}
}
