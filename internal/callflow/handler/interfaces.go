package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ivr-server/internal/callflow/processor"
)

// CallFlow runs one step of the call flow
type CallFlow interface {
	HandleEvent(ctx context.Context, event processor.Event) (processor.Reply, error)
}

// ReplayCache answers retried recording callbacks
type ReplayCache interface {
	Lookup(ctx context.Context, recordingSid string) (string, bool)
	Remember(ctx context.Context, recordingSid, doc string)
}
