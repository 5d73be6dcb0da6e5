package parameter

// Terminal viewer layout
const (
	// SidebarWidth holds the roster panel right of the field, border included
	SidebarWidth = 28

	// HealthBarWidth is the cell count of one health bar
	HealthBarWidth = 10

	// MinFieldCols and MinFieldRows below which the viewer asks for a bigger terminal
	MinFieldCols = 20
	MinFieldRows = 8
)

// Glyphs
const (
	GlyphDead       = 'x'
	GlyphBarFull    = '#'
	GlyphBarEmpty   = '-'
	GlyphBorderH    = '-'
	GlyphBorderV    = '|'
	GlyphBorderEdge = '+'
)
