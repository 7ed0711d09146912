package report

import (
	"strings"
	"testing"
	"time"

	"orders_report/internal/idosell"
	"orders_report/internal/period"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htmlWindow(t *testing.T) period.Window {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	w, err := period.Parse("2024-03-14", loc)
	require.NoError(t, err)
	return w
}

func TestRenderHTML_EscapesProductNames(t *testing.T) {
	res := NewAggregator(10).Aggregate([]idosell.Order{
		newOrder("1", nil, line{`<script>alert("x")</script>`, 1}),
	})

	out, err := RenderHTML(htmlWindow(t), 10, res, "")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderHTML_EmptyChannels(t *testing.T) {
	res := NewAggregator(10).Aggregate(nil)

	out, err := RenderHTML(htmlWindow(t), 10, res, "")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Brak sprzedaży w tym kanale w danym dniu."))
	assert.Contains(t, out, "Raport zamówień — 2024-03-14")
	assert.Contains(t, out, "Europe/Warsaw")
	assert.NotContains(t, out, "Łączna wartość zamówień")
}

func TestRenderHTML_Quantities(t *testing.T) {
	res := NewAggregator(10).Aggregate([]idosell.Order{
		newOrder("1", nil, line{"Kubek", 3}, line{"Talerz", 3.5}),
	})

	out, err := RenderHTML(htmlWindow(t), 10, res, "")
	require.NoError(t, err)
	assert.Contains(t, out, ">3<")
	assert.Contains(t, out, ">3.5<")
}

func TestRenderHTML_RevenueAndNote(t *testing.T) {
	res := NewAggregator(10, WithRevenue("PLN")).Aggregate([]idosell.Order{
		withCosts(newOrder("1", nil, line{"Kubek", 1}), costs{currency: "EUR", products: "12.5"}),
		withCosts(newOrder("2", "allegro", line{"Kubek", 1}), costs{currency: "PLN", products: "7"}),
	})

	out, err := RenderHTML(htmlWindow(t), 10, res, "Komentarz <b>testowy</b>")
	require.NoError(t, err)
	assert.Contains(t, out, "Łączna wartość zamówień: <b>19.50</b>")
	assert.Contains(t, out, "w wielu walutach (EUR, PLN)")
	assert.Contains(t, out, "Komentarz &lt;b&gt;testowy&lt;/b&gt;")
}

func TestFormatRevenue_SingleCurrencySuffix(t *testing.T) {
	res := NewAggregator(10, WithRevenue("PLN")).Aggregate([]idosell.Order{
		withCosts(newOrder("1", nil, line{"Kubek", 1}), costs{currency: "pln", products: "10", delivery: "2.345"}),
	})
	assert.Equal(t, "12.35 PLN", formatRevenue(res))
}
