package interfaces

import (
	"context"

	"github.com/ternarybob/kbsheet/internal/models"
)

// TransformService converts a loaded workbook into knowledge-base and FAQ documents
type TransformService interface {
	// Convert runs sheet selection and every row converter over the workbook.
	// The FAQ document is nil when the workbook has no FAQ sheet.
	Convert(ctx context.Context, workbook *models.Workbook) (*models.ConversionResult, error)
}
