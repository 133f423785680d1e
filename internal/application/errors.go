package application

import "stockmon-service/internal/domain"

func validationErr(field, reason string) error {
	return &domain.ValidationError{Field: field, Reason: reason}
}
