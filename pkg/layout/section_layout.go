package layout

// SmallestNormalSpacing is the smallest positive normal float64. Renderers
// that treat zero spacing as "use platform default" get an effectively-zero
// value instead.
const SmallestNormalSpacing = 0x1p-1022

// SectionLayout is the layout metadata attached to a section.
type SectionLayout struct {
	// Inset is the padding around the section's items.
	Inset EdgeInsets `yaml:"inset"`
	// MinimumInterItemSpacing is the minimum gap between items on one line.
	MinimumInterItemSpacing float64 `yaml:"minimum_inter_item_spacing"`
	// LineSpacing is the gap between lines of items.
	LineSpacing float64 `yaml:"line_spacing"`
}

// DefaultSectionLayout returns the layout a section starts with.
func DefaultSectionLayout() SectionLayout {
	return SectionLayout{MinimumInterItemSpacing: SmallestNormalSpacing}
}
