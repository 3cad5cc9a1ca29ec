package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClassID) == "" {
		return fmt.Errorf("%w: classID is required", ErrInvalidInput)
	}

	if req.PreferredLane != nil && *req.PreferredLane <= 0 {
		return fmt.Errorf("%w: preferredLane must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
