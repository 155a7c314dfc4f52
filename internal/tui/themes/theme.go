package themes

import (
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Selected    lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Code        lipgloss.Style
	Link        lipgloss.Style
	Highlighted lipgloss.Style
	RoundedBox  lipgloss.Style
	Card        lipgloss.Style
	Badge       lipgloss.Style
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	Info        lipgloss.Color
	Error       lipgloss.Color
	Warning     lipgloss.Color
	Success     lipgloss.Color
	Purple      lipgloss.Color
	Orange      lipgloss.Color
	Gray        lipgloss.Color
}

// Default is the paydece brand theme.
var Default = newTheme(palette{
	primary:    "#1f4ee0",
	secondary:  "#7aa2ff",
	success:    "#16a34a",
	warning:    "#eab308",
	errorColor: "#dc2626",
	info:       "#2563eb",
	purple:     "#9333ea",
	orange:     "#ea580c",
	gray:       "#6b7280",
	foreground: "#fafafa",
	border:     "#404040",
	muted:      "#737373",
	subtle:     "#a3a3a3",
	code:       "#262626",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#89b4fa",
	secondary:  "#b4befe",
	success:    "#a6e3a1",
	warning:    "#f9e2af",
	errorColor: "#f38ba8",
	info:       "#89dceb",
	purple:     "#cba6f7",
	orange:     "#fab387",
	gray:       "#9399b2",
	foreground: "#cdd6f4",
	border:     "#45475a",
	muted:      "#6c7086",
	subtle:     "#a6adc8",
	code:       "#313244",
})

type palette struct {
	primary, secondary, success, warning, errorColor, info string
	purple, orange, gray                                   string
	foreground, border, muted, subtle, code                string
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Success:    lipgloss.Color(p.success),
		Warning:    lipgloss.Color(p.warning),
		Error:      lipgloss.Color(p.errorColor),
		Info:       lipgloss.Color(p.info),
		Purple:     lipgloss.Color(p.purple),
		Orange:     lipgloss.Color(p.orange),
		Gray:       lipgloss.Color(p.gray),
		Foreground: lipgloss.Color(p.foreground),
		Border:     lipgloss.Color(p.border),
		Muted:      lipgloss.Color(p.muted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)),
		Code: lipgloss.NewStyle().
			Background(lipgloss.Color(p.code)).
			Foreground(lipgloss.Color(p.foreground)).
			Padding(0, 1),
		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(p.secondary)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color("#fafafa")).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(lipgloss.Color(p.border)).
			Foreground(lipgloss.Color(p.foreground)),

		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Bold(true),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// Names lists the selectable themes.
func Names() []string {
	return []string{"default", "catppuccin-mocha"}
}

// StatusColor returns the badge color for a status.
func (t Theme) StatusColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusStarted, model.StatusTransferred:
		return t.Info
	case model.StatusEscrow:
		return t.Orange
	case model.StatusPaid, model.StatusCompleted:
		return t.Success
	case model.StatusCancelled:
		return t.Error
	case model.StatusRefunded:
		return t.Purple
	case model.StatusDisputed:
		return t.Warning
	default:
		if s.Label() == model.StatusEscrow.Label() {
			return t.Orange
		}
		return t.Gray
	}
}

// StatusBadge renders the status label in its color.
func (t Theme) StatusBadge(s model.Status) string {
	return t.Badge.Foreground(t.StatusColor(s)).Render(s.Label())
}

// OperationBadge renders compra in green and venta in blue.
func (t Theme) OperationBadge(o model.Operation) string {
	color := t.Gray
	switch o {
	case model.OperationPurchase:
		color = t.Success
	case model.OperationSale:
		color = t.Info
	}
	return t.Badge.Foreground(color).Render(o.Label())
}
