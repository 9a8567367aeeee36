package constants

const (
	AppName           = "habitgrid"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/habitgrid/habitgrid.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the format for addressing a whole month (YYYY-MM)
	MonthFormat = "2006-01"

	// TrendDays is the length of the rolling trend window, ending today
	TrendDays = 30
)
