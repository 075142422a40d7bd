package transform

import (
	"strings"

	"github.com/ternarybob/kbsheet/internal/models"
)

const imageMarker = "이미지:"

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// SplitList splits a comma separated cell into trimmed tokens, dropping empty
// and placeholder tokens. A blank or placeholder cell yields an empty, non-nil slice.
func SplitList(cell string) []string {
	out := []string{}
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || trimmed == models.PlaceholderToken {
		return out
	}
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" || token == models.PlaceholderToken {
			continue
		}
		out = append(out, token)
	}
	return out
}

// ParseGuides reads newline separated "title|url|icon" entries. Lines with
// fewer than two parts are dropped; a missing or blank icon becomes defaultIcon.
func ParseGuides(cell, defaultIcon string) []models.Guide {
	guides := []models.Guide{}
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || trimmed == models.PlaceholderToken {
		return guides
	}

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == models.PlaceholderToken {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}

		guide := models.Guide{
			Title: strings.TrimSpace(parts[0]),
			URL:   strings.TrimSpace(parts[1]),
			Icon:  defaultIcon,
		}
		if len(parts) >= 3 {
			if icon := strings.TrimSpace(parts[2]); icon != "" {
				guide.Icon = icon
			}
		}
		guides = append(guides, guide)
	}
	return guides
}

// imagePath reports whether a content line references an image and returns
// the path with the marker removed.
func imagePath(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	if !strings.HasPrefix(line, imageMarker) && !hasImageExtension(line) {
		return "", false
	}
	path := strings.TrimSpace(strings.ReplaceAll(line, imageMarker, ""))
	return path, path != ""
}

func hasImageExtension(s string) bool {
	lower := strings.ToLower(s)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// resolveImageSrc roots a relative image path under basePath
func resolveImageSrc(path, basePath string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	if basePath == "" {
		return path
	}
	return strings.TrimRight(basePath, "/") + "/" + path
}

// truncate shortens s to n runes for log output
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
