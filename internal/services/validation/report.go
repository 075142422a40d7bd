package validation

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ternarybob/kbsheet/internal/models"
)

// Markdown renders report as a markdown document
func Markdown(report *models.ValidationReport) string {
	var sb strings.Builder

	sb.WriteString("# Validation report\n\n")
	status := "PASSED"
	if !report.OK() {
		status = "FAILED"
	}
	fmt.Fprintf(&sb, "- Status: **%s**\n", status)
	fmt.Fprintf(&sb, "- Items: %d\n", report.Items)
	fmt.Fprintf(&sb, "- Errors: %d\n", len(report.Errors))
	fmt.Fprintf(&sb, "- Warnings: %d\n", len(report.Warnings))

	writeSection(&sb, "Errors", report.Errors)
	writeSection(&sb, "Warnings", report.Warnings)

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, issues []models.ValidationIssue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n## %s\n\n", title)
	sb.WriteString("| ID | Field | Message |\n")
	sb.WriteString("|----|-------|---------|\n")
	for _, i := range issues {
		fmt.Fprintf(sb, "| %s | %s | %s |\n", escapeCell(i.ItemID), i.Field, escapeCell(i.Message))
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// RenderHTML converts a markdown report to a standalone HTML page
func RenderHTML(markdown string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Validation report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
