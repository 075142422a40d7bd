package interfaces

import "github.com/ternarybob/kbsheet/internal/models"

// ValidationService checks converted knowledge items before they are written
type ValidationService interface {
	Validate(items []models.KnowledgeItem) *models.ValidationReport
}
