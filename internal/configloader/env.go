package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/gomoyu/pkg/config"
)

// envVarPrefix is the prefix for all gomoyu environment variables.
const envVarPrefix = "GOMOYU_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ENCODING":              {"encoding", envTypeString, "Source encoding, e.g. gbk, big5, shift_jis"},
	"LANGUAGE":              {"language", envTypeString, "Target language: javascript or typescript"},
	"SOURCE_EXT":            {"source_ext", envTypeString, "Source file extension used for bookmarks"},
	"SOURCE_FORMAT":         {"source_format", envTypeString, "Source format: auto, text, or markdown"},
	"WRAP_WIDTH":            {"wrap_width", envTypeInt, "Maximum characters per comment line"},
	"METHOD_PERIOD":         {"method_period", envTypeInt, "Source lines per generated method"},
	"INDENT":                {"indent", envTypeString, "One level of indentation"},
	"LEGACY_TRAILING_CLOSE": {"legacy_trailing_close", envTypeBool, "Always emit the final method close: true or false"},
	"BACKUPS_ENABLED":       {"backups.enabled", envTypeBool, "Back up existing output before overwriting: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMOYU_ (e.g., GOMOYU_ENCODING).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := os.LookupEnv(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{
				Field:   envVar,
				Value:   value,
				Message: "invalid boolean (expected true/false/1/0)",
			}
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return &ValidationError{Field: envVar, Value: value, Message: "invalid integer"}
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "encoding":
		cfg.Encoding = value
	case "language":
		cfg.Language = value
	case "source_ext":
		cfg.SourceExt = value
	case "source_format":
		cfg.SourceFormat = config.SourceFormat(value)
	case "indent":
		cfg.Indent = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "legacy_trailing_close":
		cfg.LegacyTrailingClose = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "wrap_width":
		cfg.WrapWidth = value
	case "method_period":
		cfg.MethodPeriod = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
