package report

import (
	"strings"

	"orders_report/internal/idosell"
)

// Channel is the sales origin of an order.
type Channel int

const (
	ChannelOwnStore Channel = iota
	ChannelMarketplace

	channelCount
)

// Channels lists every channel in report order.
func Channels() []Channel {
	return []Channel{ChannelOwnStore, ChannelMarketplace}
}

func (c Channel) String() string {
	switch c {
	case ChannelOwnStore:
		return "own_store"
	case ChannelMarketplace:
		return "marketplace"
	default:
		return "unknown"
	}
}

func (c Channel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// channelByService maps normalized auction service names to channels.
// Unlisted services belong to the own store.
var channelByService = map[string]Channel{
	"allegro": ChannelMarketplace,
}

// Classify derives the sales channel of an order.
func Classify(order idosell.Order) Channel {
	return ChannelForService(order.ServiceName())
}

func ChannelForService(name string) Channel {
	if ch, ok := channelByService[strings.ToLower(strings.TrimSpace(name))]; ok {
		return ch
	}
	return ChannelOwnStore
}
