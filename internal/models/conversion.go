package models

// ConversionResult is everything produced by one conversion pass
type ConversionResult struct {
	Selection SheetSelection
	Knowledge *KnowledgeDocument
	FAQ       *FaqDocument // nil when the workbook has no FAQ sheet
}

// OutputFile pairs a destination path with the document to encode there
type OutputFile struct {
	Path     string
	Document interface{}
}
