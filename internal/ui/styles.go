package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color scheme
	colorGreen   = lipgloss.Color("#00FF00")
	colorGray    = lipgloss.Color("#888888")
	colorCyan    = lipgloss.Color("#00FFFF")
	colorYellow  = lipgloss.Color("#FFFF00")
	colorBlue    = lipgloss.Color("#0088FF")
	colorRed     = lipgloss.Color("#FF0000")
	colorWhite   = lipgloss.Color("#FFFFFF")
	colorBgLight = lipgloss.Color("#333333")

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	// Separator style
	separatorStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Model tab styles
	tabStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorBlue).
			Padding(0, 1)

	// Section heading style
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	costStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Italic(true)

	chatTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	// Selected row style
	selectedRowStyle = lipgloss.NewStyle().
				Background(colorBgLight)

	// Help bar style
	helpBarStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			MarginTop(1)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	// Loading style
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
