// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconHistory = "\uf1da" // history
	IconSearch  = "\uf002" // search
	IconArrow   = "\uf061" // arrow right
	IconCursor  = "\uf054" // chevron-right
	IconScript  = "\uf0e8" // sitemap
)
