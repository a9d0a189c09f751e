package output

import "dom-executor/internal/domain/entity"

// ResponseChecker classifies a decoded response envelope. It returns the
// success Response or a *entity.CommandError for checked failures.
type ResponseChecker interface {
	Check(envelope map[string]any) (*entity.Response, error)
}
