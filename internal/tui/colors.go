package tui

// Color constants for the TimeMate TUI theme
const (
	ColorBorder = "#2E4057" // Slate blue-grey

	// Text Colors
	ColorPrimaryText   = "#E8F0F2" // Primary text (labels, titles)
	ColorSecondaryText = "#9DB2BF" // Secondary text
	ColorDisabledText  = "#5C6B73" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (teal theme)
	ColorAccentMain   = "#14B8A6" // Accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, the running clock

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Success, paused totals
	ColorWarning = "#F59E0B" // Warnings, running state
)
