package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorStar      = lipgloss.Color("220") // Gold
)

// TitleBar style for the application header.
var TitleBar = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// PaneLabel style for the label in front of each input pane.
var PaneLabel = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Width(8)

// FocusedPaneLabel style for the label of the focused pane.
var FocusedPaneLabel = PaneLabel.
	Foreground(colorHighlight).
	Bold(true)

// Chip style for an unselected genre chip.
var Chip = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("236")).
	Padding(0, 1).
	MarginRight(1)

// SelectedChip style for a selected genre chip.
var SelectedChip = Chip.
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Bold(true)

// ChipCursor style marks the chip under the cursor.
var ChipCursor = lipgloss.NewStyle().
	Underline(true)

// SummaryStyle for the result summary line.
var SummaryStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true).
	Padding(0, 1)

// CardTitle style for a movie card title.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// SelectedCardTitle style for the highlighted card.
var SelectedCardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary)

// CardMeta style for year and rating.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorSecondary)

// CardText style for descriptions.
var CardText = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250"))

// Tag style for genre tags on cards.
var Tag = lipgloss.NewStyle().
	Foreground(colorHighlight)

// Stars style for the rating stars.
var Stars = lipgloss.NewStyle().
	Foreground(colorStar)

// DetailPanel style wraps the movie detail.
var DetailPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// NoticeStyle for validation notices.
var NoticeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)
