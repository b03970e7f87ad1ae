package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	// Hint is the default suggestion attached by New.
	Hint string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Attribute contract violations (E201-E209)
	// ============================================

	"E201": {
		Category: CategoryContract,
		Message:  "Attribute read with a different type than it was stored with",
		Hint:     "Use the same attr.Key for every read and write of an attribute name",
	},
	"E202": {
		Category: CategoryContract,
		Message:  "Attribute overwritten with a different type than it was stored with",
		Hint:     "Use the same attr.Key for every read and write of an attribute name",
	},
	"E203": {
		Category: CategoryContract,
		Message:  "Attribute merged with a different type than it was stored with",
		Hint:     "Use the same attr.Key for every read and write of an attribute name",
	},

	// ============================================
	// Descriptor errors (E210-E219)
	// ============================================

	"E210": {
		Category: CategoryDescriptor,
		Message:  "Unknown element kind",
		Hint:     `Use one of "div", "header", "p" or "canvas"`,
	},
	"E211": {
		Category: CategoryDescriptor,
		Message:  "Attribute not supported by element kind",
		Hint:     `Only "canvas" elements accept width and height`,
	},
	"E212": {
		Category: CategoryDescriptor,
		Message:  "Cannot diff elements of different kinds",
		Hint:     "Attributes are only compared between two elements of the same kind",
	},
	"E213": {
		Category: CategoryDescriptor,
		Message:  "Invalid element descriptor",
		Hint:     "Check that the descriptor is valid JSON",
	},
	"E214": {
		Category: CategoryDescriptor,
		Message:  "Cannot read element descriptor",
		Hint:     "Check the file path, or the bucket, key and credentials of an s3:// URI",
	},

	// ============================================
	// Config errors (E220-E229)
	// ============================================

	"E220": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Hint:     "Check that elattr.json is valid JSON",
	},
	"E221": {
		Category: CategoryConfig,
		Message:  "Invalid log configuration",
		Hint:     `log.level is one of debug, info, warn, error; log.format is text or json`,
	},
	"E222": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},

	// ============================================
	// CLI errors (E230-E239)
	// ============================================

	"E230": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
		Hint:     "Run 'elattr help' for usage",
	},
}
