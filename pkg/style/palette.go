package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colours pick the Light or Dark value from the terminal
// background.
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#495057", Dark: "#E9ECEF"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	BorderColor  = lipgloss.AdaptiveColor{Light: "#DEE2E6", Dark: "#3B3C4F"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
)

// Script family colours, one per directory group under scripts/.
var (
	PlayerColor  = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"}
	AIColor      = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
	VehicleColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	InputColor   = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"}
)
