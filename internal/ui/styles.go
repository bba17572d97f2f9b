package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dark shelf, bright labels
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Gold    = lipgloss.Color("#F4D03F") // Favorites
	Amber   = lipgloss.Color("#E59866") // Pins
	Copper  = lipgloss.Color("#DC7633") // Warnings
	Purple  = lipgloss.Color("#9B59B6") // Skill badge
	Blue    = lipgloss.Color("#5DADE2") // Info
	Cyan    = lipgloss.Color("#76D7C4") // Commands and hints
	Green   = lipgloss.Color("#58D68D") // Translated
	Pink    = lipgloss.Color("#FF6B9D") // Errors
	Magenta = lipgloss.Color("#E91E8C")

	// Neutrals
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
	Black    = lipgloss.Color("#1C2833")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	Subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Error = lipgloss.NewStyle().
		Foreground(Pink).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Copper)

	Info = lipgloss.NewStyle().
		Foreground(Blue)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Name of a skill in lists
	Name = lipgloss.NewStyle().
		Foreground(White).
		Bold(true)

	// Code/command style
	Code = lipgloss.NewStyle().
		Foreground(Magenta)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES & MARKS
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// SkillBadge returns the skill badge
func SkillBadge() string {
	if !IsTTY {
		return "[SKILL]"
	}
	return baseBadge.Background(Purple).Foreground(White).Render("✦ SKILL")
}

// FavoriteMark returns the favorite star, filled or hollow
func FavoriteMark(on bool) string {
	if !IsTTY {
		if on {
			return "*"
		}
		return " "
	}
	if on {
		return lipgloss.NewStyle().Foreground(Gold).Render("★")
	}
	return lipgloss.NewStyle().Foreground(DarkGray).Render("☆")
}

// PinnedMark returns the pin marker, or "" when not pinned
func PinnedMark(on bool) string {
	if !on {
		return ""
	}
	if !IsTTY {
		return "[pinned]"
	}
	return lipgloss.NewStyle().Foreground(Amber).Render("📌")
}

// TranslatedMark returns the translated tag, or "" when not translated
func TranslatedMark(on bool) string {
	if !on {
		return ""
	}
	if !IsTTY {
		return "[translated]"
	}
	return lipgloss.NewStyle().Foreground(Green).Render("✓ 已翻译")
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// Divider returns a horizontal divider
func Divider(width int) string {
	return lipgloss.NewStyle().
		Foreground(DarkGray).
		Render(strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	// Use terminal width, capped at 80
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 {
		padLeft = 0
	}
	if padRight < 0 {
		padRight = 0
	}

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// PageFooter creates a consistent page footer matching the header width
func PageFooter() string {
	if !IsTTY {
		return "\n"
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	padSide := (width - 5) / 2 // 5 = " ✦ " with spaces
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	line := lipgloss.NewStyle().Foreground(DarkGray).Render(left + " ✦ " + right)
	return "\n" + line + "\n"
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINES
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Pink)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Copper)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Blue)
}

// ═══════════════════════════════════════════════════════════════════════════════
// EMPTY STATES
// ═══════════════════════════════════════════════════════════════════════════════

// EmptyShelf returns the message shown when no skills were found in dir
func EmptyShelf(dir string) string {
	if !IsTTY {
		return fmt.Sprintf("\n  No skills found in %s\n", dir)
	}

	box := lipgloss.NewStyle().Foreground(DarkGray).Render(`
      ┌──────────────┐
      │  (no skills) │
      └──────────────┘`)
	message := lipgloss.NewStyle().Foreground(Gray).Render("No skills found in")
	path := lipgloss.NewStyle().Foreground(Cyan).Render(dir)

	return fmt.Sprintf("%s\n\n  %s %s\n", box, message, path)
}

// NoResults returns a friendly no-results state
func NoResults(query string) string {
	if !IsTTY {
		return fmt.Sprintf("\n  No skills match \"%s\"\n", query)
	}
	message := lipgloss.NewStyle().Foreground(Gray).Render(fmt.Sprintf("No skills match \"%s\"", query))
	hint := lipgloss.NewStyle().Foreground(Cyan).Render("Try broader search terms")
	return fmt.Sprintf("\n  %s\n  %s\n", message, hint)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Truncate cuts text to max display characters, ending with an ellipsis
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// FirstLine returns text up to the first newline
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return strings.TrimSpace(text)
}

// WrapText wraps text to fit within maxWidth, returning multiple lines.
// Widths are measured in terminal cells, so wide characters count double.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var words []string
	for _, word := range strings.Fields(text) {
		// Unspaced text such as CJK is one "word"; split it by cells.
		if lipgloss.Width(word) > maxWidth {
			words = append(words, strings.Split(ansi.Hardwrap(word, maxWidth, true), "\n")...)
			continue
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current strings.Builder
	width := 0

	for _, word := range words {
		w := lipgloss.Width(word)
		switch {
		case width == 0:
			current.WriteString(word)
			width = w
		case width+1+w <= maxWidth:
			current.WriteString(" ")
			current.WriteString(word)
			width += 1 + w
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			width = w
		}
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// DescriptionWidth returns the recommended width for descriptions based on terminal size
func DescriptionWidth() int {
	w := TerminalWidth()
	// Account for indentation (4 chars) and some margin
	desc := w - 8
	if desc < 40 {
		return 40
	}
	return desc
}
