package catalog

// ==================== Configuration File Names ====================

// ConfigFileName is the conventional name of an inventory file
const ConfigFileName = "inventory.json"

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read inventory file: %w"
	ErrMsgParseConfigFailed    = "failed to parse inventory: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Error format strings for entry validation
const (
	ErrFmtEntryInvalid = "%w: item at index %d: %s"
	ErrFmtFieldFailed  = "%s failed %q"
)

// ValidationTagCategory is the struct tag registered for category names
const ValidationTagCategory = "category"
