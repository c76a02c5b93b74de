package constant

const (
	DefaultCandleLimit = 100
	MinCandleLimit     = 1
	MaxCandleLimit     = 1000
)
