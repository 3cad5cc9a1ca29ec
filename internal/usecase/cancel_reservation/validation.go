package cancel_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ReservationID) == "" {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}
