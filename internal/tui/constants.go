package tui

const (
	// Column bounds for the preview
	MinColumns = 1
	MaxColumns = 200

	// Indent bounds; negative values are hanging indents
	MinIndent = -20
	MaxIndent = 20

	MaxPadding = 10

	// Horizontal padding around the preview panel
	DefaultPaddingX = 1
	DefaultPaddingY = 0

	PanelTitle = "areatext preview"
)
