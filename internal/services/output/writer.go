package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/kbsheet/internal/models"
)

// Writer encodes documents as indented UTF-8 JSON with non-ASCII text unescaped
type Writer struct {
	logger arbor.ILogger
}

// NewWriter creates a JSON document writer
func NewWriter(logger arbor.ILogger) *Writer {
	return &Writer{logger: logger}
}

// Encode returns the JSON bytes written for document
func Encode(document interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes document to path
func (w *Writer) Write(path string, document interface{}) error {
	return w.WriteAll([]models.OutputFile{{Path: path, Document: document}})
}

// WriteAll encodes every document to a temporary file beside its destination
// and renames them into place only after all of them were written.
func (w *Writer) WriteAll(plan []models.OutputFile) error {
	temps := make([]string, 0, len(plan))
	cleanup := func() {
		for _, tmp := range temps {
			os.Remove(tmp)
		}
	}

	for _, file := range plan {
		data, err := Encode(file.Document)
		if err != nil {
			cleanup()
			return fmt.Errorf("%w: %s: %v", models.ErrWriteOutput, file.Path, err)
		}

		tmp, err := writeTemp(file.Path, data)
		if err != nil {
			cleanup()
			return fmt.Errorf("%w: %s: %v", models.ErrWriteOutput, file.Path, err)
		}
		temps = append(temps, tmp)
	}

	for i, file := range plan {
		if err := os.Rename(temps[i], file.Path); err != nil {
			cleanup()
			return fmt.Errorf("%w: %s: %v", models.ErrWriteOutput, file.Path, err)
		}
		w.logger.Info().Str("path", file.Path).Msg("JSON file saved")
	}
	return nil
}

func writeTemp(dest string, data []byte) (string, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// FaqPath returns override when set, otherwise the knowledge path with suffix
// inserted before the extension: out/kb.json -> out/kb-faq.json
func FaqPath(mainPath, override, suffix string) string {
	if override != "" {
		return override
	}
	dir := filepath.Dir(mainPath)
	base := filepath.Base(mainPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+suffix+".json")
}
