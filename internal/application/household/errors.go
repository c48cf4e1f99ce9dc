package household

import (
	stderrors "errors"

	"github.com/hearthhq/hearth/pkg/errors"
)

// translate maps a domain failure onto an AppError. AppErrors pass through,
// notFound becomes the error built by onNotFound, anything else is a
// validation failure.
func translate(err, notFound error, onNotFound func() error) error {
	var appErr *errors.AppError
	switch {
	case err == nil:
		return nil
	case stderrors.As(err, &appErr):
		return appErr
	case notFound != nil && stderrors.Is(err, notFound):
		return onNotFound()
	default:
		return errors.NewValidationError(err.Error())
	}
}
