package input

import (
	"dom-executor/internal/domain/entity"
	"dom-executor/internal/domain/promise"
)

type CommandExecutor interface {
	// Execute issues cmd and returns immediately. The returned future
	// settles when the matching response arrives.
	Execute(cmd entity.Command) (*promise.Future[*entity.Response], error)
}
