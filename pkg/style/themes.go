package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}

	// MatchColor backs highlighted query occurrences
	MatchColor = lipgloss.AdaptiveColor{
		Light: "#FFE066", // Marker yellow
		Dark:  "#B8860B",
	}
)
