package interfaces

import (
	"context"

	"github.com/ternarybob/kbsheet/internal/models"
)

// WorkbookLoader reads every sheet of a workbook into ordered rows
type WorkbookLoader interface {
	Load(ctx context.Context, path string) (*models.Workbook, error)
}

// DocumentWriter persists output documents
type DocumentWriter interface {
	// Write encodes a single document to path
	Write(path string, document interface{}) error

	// WriteAll writes every planned document or none of them
	WriteAll(plan []models.OutputFile) error
}
