package output

import (
	"context"

	"dom-executor/internal/domain/entity"
)

// ChannelPort is the shared signaling surface between the executor and the
// external actor: a command slot, a response slot and one signal for each.
//
// A slot write must be visible to the other side before the signal that
// follows it fires.
type ChannelPort interface {
	WriteCommand(ctx context.Context, payload string) error
	RaiseCommand(ctx context.Context) error

	// ReadResponse returns "" when the response slot is empty.
	ReadResponse(ctx context.Context) (string, error)
	ClearCommand(ctx context.Context) error
	ClearResponse(ctx context.Context) error

	// OnResponse subscribes fn to the response signal. fn may be called on
	// any goroutine, including synchronously from inside RaiseCommand.
	OnResponse(fn func()) (unsubscribe func() error, err error)

	Probe(ctx context.Context) (entity.Availability, error)
}
