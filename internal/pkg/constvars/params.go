package constvars

const (
	QueryParamLimit = "limit"

	DefaultListLimit int64 = 100
)
