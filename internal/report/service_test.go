package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"orders_report/internal/idosell"
	"orders_report/internal/period"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type serviceMocks struct {
	orders      *MockOrderSource
	notifier    *MockNotifier
	commentator *MockCommentator
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		orders:      NewMockOrderSource(ctrl),
		notifier:    NewMockNotifier(ctrl),
		commentator: NewMockCommentator(ctrl),
	}
	return NewService(m.orders, m.notifier, m.commentator, zap.NewNop()), m
}

func serviceWindow() period.Window {
	return period.ForDay(time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC))
}

func TestService_Build(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()
	window := serviceWindow()

	orders := []idosell.Order{
		withCosts(newOrder("1", "allegro", line{"Kubek", 2}), costs{currency: "PLN", products: "10.00"}),
		withCosts(newOrder("2", nil, line{"Talerz", 1}), costs{currency: "PLN", products: "5.50"}),
	}
	m.orders.EXPECT().FetchAll(ctx, window).Return(orders, nil)
	m.commentator.EXPECT().Enabled().Return(true)
	m.commentator.EXPECT().Comment(ctx, window, gomock.Any()).Return("Dobry dzień.", nil)

	rep, err := svc.Build(ctx, window, Settings{TopN: 5, Revenue: true, DefaultCurrency: "PLN"})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Result.OrdersTotal)
	assert.Equal(t, "15.5", rep.Result.Revenue.String())
	assert.Equal(t, "Dobry dzień.", rep.Commentary)
	assert.Equal(t, "Raport zamówień — 2024-03-14", rep.Subject)
	assert.Contains(t, rep.HTML, "Top 5 sprzedanych towarów")
	assert.Contains(t, rep.HTML, "Dobry dzień.")
	assert.Contains(t, rep.HTML, "15.50 PLN")
}

func TestService_BuildPropagatesFetchError(t *testing.T) {
	svc, m := newTestService(t)
	upstream := &idosell.UpstreamError{StatusCode: 401, Status: "401 Unauthorized"}
	m.orders.EXPECT().FetchAll(gomock.Any(), gomock.Any()).Return(nil, upstream)

	_, err := svc.Build(context.Background(), serviceWindow(), Settings{TopN: 10})
	require.Error(t, err)

	var target *idosell.UpstreamError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 401, target.StatusCode)
}

func TestService_BuildDropsFailedCommentary(t *testing.T) {
	svc, m := newTestService(t)
	m.orders.EXPECT().FetchAll(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.commentator.EXPECT().Enabled().Return(true)
	m.commentator.EXPECT().Comment(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("model unavailable"))

	rep, err := svc.Build(context.Background(), serviceWindow(), Settings{TopN: 10})
	require.NoError(t, err)
	assert.Empty(t, rep.Commentary)
	assert.NotContains(t, rep.HTML, "Komentarz")
}

func TestService_BuildSkipsDisabledCommentator(t *testing.T) {
	svc, m := newTestService(t)
	m.orders.EXPECT().FetchAll(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.commentator.EXPECT().Enabled().Return(false)

	rep, err := svc.Build(context.Background(), serviceWindow(), Settings{TopN: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Result.OrdersTotal)
	assert.Empty(t, rep.Commentary)
}

func TestService_Deliver(t *testing.T) {
	svc, m := newTestService(t)
	rep := Report{Subject: "s", HTML: "<p>x</p>"}

	m.notifier.EXPECT().Send(gomock.Any(), "s", "<p>x</p>").Return(nil)
	require.NoError(t, svc.Deliver(context.Background(), rep))

	sendErr := errors.New("smtp down")
	m.notifier.EXPECT().Send(gomock.Any(), "s", "<p>x</p>").Return(sendErr)
	err := svc.Deliver(context.Background(), rep)
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
	assert.Contains(t, err.Error(), "deliver report")
}
