package assign_class

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClassID) == "" {
		return fmt.Errorf("%w: classID is required", ErrInvalidInput)
	}

	if req.LaneNumber != nil && *req.LaneNumber <= 0 {
		return fmt.Errorf("%w: laneNumber must be positive", ErrInvalidInput)
	}

	return nil
}
