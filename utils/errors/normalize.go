package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// ErrConflict is wrapped around the last storage error once lock-conflict retries are used up.
var ErrConflict = stderrors.New("transaction conflict")

// Normalize turns any error coming out of a use case into a CustomError. Storage failures are logged
// under op and hidden behind ErrInternal.
func Normalize(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	if stderrors.Is(err, ErrConflict) {
		logger.Warn(op+" gave up after lock conflicts", zap.String("error", err.Error()))
		return SetCustomError(constant.ErrConcurrentModification)
	}
	logger.Error(op+" failed", zap.String("error", err.Error()))
	return SetCustomError(constant.ErrInternal)
}
