package get_available_slots

import "fmt"

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if req.CenterID <= 0 {
		return fmt.Errorf("%w: centerId is required", ErrMissingFields)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingFields)
	}

	return nil
}
