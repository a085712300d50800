package constvars

// CustomValidationErrorMessages maps validator tags to the message appended
// after the offending field name.
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email address",
	"min":         "must be at least %s",
	"max":         "must be at most %s",
	"date_string": "must be a date in YYYY-MM-DD format",
}

// TagsWithParams marks tags whose message carries the tag parameter.
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}
