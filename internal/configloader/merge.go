package configloader

import "github.com/yaklabco/gomoyu/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: only true in override is visible, so a later layer cannot unset
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Encoding != "" {
		result.Encoding = override.Encoding
	}
	if override.Language != "" {
		result.Language = override.Language
	}
	if override.SourceExt != "" {
		result.SourceExt = override.SourceExt
	}
	if override.SourceFormat != "" {
		result.SourceFormat = override.SourceFormat
	}
	if override.WrapWidth != 0 {
		result.WrapWidth = override.WrapWidth
	}
	if override.MethodPeriod != 0 {
		result.MethodPeriod = override.MethodPeriod
	}
	if override.Indent != "" {
		result.Indent = override.Indent
	}

	if override.LegacyTrailingClose {
		result.LegacyTrailingClose = true
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	// CLI-only fields.
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Seed != nil {
		seed := *override.Seed
		result.Seed = &seed
	}
	if override.Preview != 0 {
		result.Preview = override.Preview
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
