package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is picked up from the working directory when no -config flag is given
const DefaultConfigFile = "kbsheet.toml"

// Config represents the converter configuration
type Config struct {
	Logging    LoggingConfig    `toml:"logging"`
	Output     OutputConfig     `toml:"output"`
	Metadata   MetadataConfig   `toml:"metadata"`
	Sheets     SheetsConfig     `toml:"sheets"`
	Mapping    MappingConfig    `toml:"mapping"`
	Validation ValidationConfig `toml:"validation"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type OutputConfig struct {
	Pretty        bool   `toml:"pretty"`          // set by --pretty; output is always indented
	FaqSuffix     string `toml:"faq_suffix"`      // appended to the knowledge file stem (default: "-faq")
	ImageBasePath string `toml:"image_base_path"` // prefix for relative FAQ image paths (default: "/faq-images/")
}

// MetadataConfig carries the descriptive strings written into document metadata
type MetadataConfig struct {
	KnowledgeVersion     string `toml:"kb_version"`
	KnowledgeDescription string `toml:"kb_description"`
	FaqVersion           string `toml:"faq_version"`
	FaqDescription       string `toml:"faq_description"`
	GeneratedBy          string `toml:"generated_by"`
}

// SheetsConfig holds the substrings used to assign sheet roles (case-insensitive)
type SheetsConfig struct {
	MainMarkers    []string `toml:"main_markers"`
	SynonymMarkers []string `toml:"synonym_markers"`
	FaqMarkers     []string `toml:"faq_markers"`
}

// MappingConfig controls row-to-item normalisation
type MappingConfig struct {
	Types           map[string]string `toml:"types"`         // 구분 code -> item type
	TruthyTokens    []string          `toml:"truthy_tokens"` // upper-cased tokens meaning "yes"
	DefaultIcon     string            `toml:"default_icon"`
	DefaultCategory string            `toml:"default_category"`
	DefaultPriority int               `toml:"default_priority"`
	StrictPriority  bool              `toml:"strict_priority"` // fail the run on non-numeric priority instead of defaulting
}

type ValidationConfig struct {
	MinResponseLength int `toml:"min_response_length"`
	PriorityMin       int `toml:"priority_min"`
	PriorityMax       int `toml:"priority_max"`
}

// NewDefaultConfig returns the configuration used when no file overrides it
func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Output: OutputConfig{
			Pretty:        true,
			FaqSuffix:     "-faq",
			ImageBasePath: "/faq-images/",
		},
		Metadata: MetadataConfig{
			KnowledgeVersion:     "2.0.0",
			KnowledgeDescription: "바로빌 AI 통합 지식베이스 - 세금계산서 전문",
			FaqVersion:           "1.0.0",
			FaqDescription:       "바로빌 자주묻는질문 (FAQ)",
			GeneratedBy:          "Excel to JSON Converter",
		},
		Sheets: SheetsConfig{
			MainMarkers:    []string{"질문", "main"},
			SynonymMarkers: []string{"동의어"},
			FaqMarkers:     []string{"faq", "자주묻는질문"},
		},
		Mapping: MappingConfig{
			Types: map[string]string{
				"인사":    "intent",
				"개념":    "knowledge",
				"문제해결":  "case",
				"실무가이드": "knowledge",
				"실무노하우": "knowledge",
				"Case":  "case",
			},
			TruthyTokens:    []string{"Y", "YES", "TRUE", "1", "예", "O"},
			DefaultIcon:     "📘",
			DefaultCategory: "기타",
			DefaultPriority: 5,
		},
		Validation: ValidationConfig{
			MinResponseLength: 20,
			PriorityMin:       1,
			PriorityMax:       10,
		},
	}
}

// LoadFromFiles loads configuration with priority: default -> file1 -> file2 -> ... -> env
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Later files override earlier ones field by field
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// DiscoverConfigFiles returns the default config file when it exists in the working directory
func DiscoverConfigFiles() []string {
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return []string{DefaultConfigFile}
	}
	return nil
}

func applyEnvOverrides(config *Config) {
	if level := os.Getenv("KBSHEET_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("KBSHEET_LOG_OUTPUT"); output != "" {
		config.Logging.Output = splitList(output)
	}
	if suffix := os.Getenv("KBSHEET_FAQ_SUFFIX"); suffix != "" {
		config.Output.FaqSuffix = suffix
	}
	if base := os.Getenv("KBSHEET_IMAGE_BASE_PATH"); base != "" {
		config.Output.ImageBasePath = base
	}
	if strict := os.Getenv("KBSHEET_STRICT_PRIORITY"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			config.Mapping.StrictPriority = b
		}
	}
	if minLen := os.Getenv("KBSHEET_MIN_RESPONSE_LENGTH"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			config.Validation.MinResponseLength = n
		}
	}
}

// ApplyFlagOverrides applies command-line values, which take precedence over files and env
func ApplyFlagOverrides(config *Config, logLevel string) {
	if logLevel != "" {
		config.Logging.Level = logLevel
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
