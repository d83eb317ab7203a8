package docfrag

import (
	"fmt"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// SectionBreak selects how a section begins.
type SectionBreak string

// Section break kinds.
const (
	BreakNextPage   SectionBreak = "nextPage"
	BreakNextColumn SectionBreak = "nextColumn"
	BreakContinuous SectionBreak = "continuous"
	BreakEvenPage   SectionBreak = "evenPage"
	BreakOddPage    SectionBreak = "oddPage"
)

func (b SectionBreak) mark() (wml.ST_SectionMark, error) {
	switch b {
	case "", BreakNextPage:
		return wml.ST_SectionMarkNextPage, nil
	case BreakNextColumn:
		return wml.ST_SectionMarkNextColumn, nil
	case BreakContinuous:
		return wml.ST_SectionMarkContinuous, nil
	case BreakEvenPage:
		return wml.ST_SectionMarkEvenPage, nil
	case BreakOddPage:
		return wml.ST_SectionMarkOddPage, nil
	}
	return wml.ST_SectionMarkUnset, NewInvalidArgumentError("break",
		fmt.Sprintf("unknown section break %q", string(b)))
}

// PageMargins holds the six margin distances of a section.
type PageMargins struct {
	Top    measurement.Distance
	Bottom measurement.Distance
	Left   measurement.Distance
	Right  measurement.Distance
	Header measurement.Distance
	Footer measurement.Distance
}

// PageLayout describes the page geometry of a section: size, orientation,
// section break kind and margins.  It is a plain value; nothing happens until
// Apply writes it onto a section.
type PageLayout struct {
	Width  measurement.Distance
	Height measurement.Distance
	// Orientation is "portrait" or "landscape".  Empty means portrait.
	Orientation string
	Break       SectionBreak
	Margins     PageMargins
}

// Standard paper dimensions in inches.
const (
	a3WidthInches  = 11.7
	a3HeightInches = 16.5
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	b5WidthInches  = 6.93
	b5HeightInches = 9.84
)

// NewPageLayout returns a portrait, new-page layout of the given dimensions
// with zero margins.
func NewPageLayout(width, height measurement.Distance) PageLayout {
	return PageLayout{Width: width, Height: height, Orientation: "portrait", Break: BreakNextPage}
}

// A3Layout returns the layout for A3 paper (11.7in × 16.5in).
func A3Layout() PageLayout {
	return NewPageLayout(a3WidthInches*measurement.Inch, a3HeightInches*measurement.Inch)
}

// A4Layout returns the layout for A4 paper (8.27in × 11.69in).
func A4Layout() PageLayout {
	return NewPageLayout(a4WidthInches*measurement.Inch, a4HeightInches*measurement.Inch)
}

// B5Layout returns the layout for B5 paper (6.93in × 9.84in).
func B5Layout() PageLayout {
	return NewPageLayout(b5WidthInches*measurement.Inch, b5HeightInches*measurement.Inch)
}

// Apply writes the layout onto a document section.  Dimensions are not
// checked for physical plausibility; negative or zero sizes pass through
// unchanged.
func (l PageLayout) Apply(sec document.Section) error {
	orient := wml.ST_PageOrientationPortrait
	switch l.Orientation {
	case "", "portrait":
	case "landscape":
		orient = wml.ST_PageOrientationLandscape
	default:
		return NewInvalidArgumentError("orientation",
			fmt.Sprintf("unknown orientation %q, valid values are: portrait, landscape", l.Orientation))
	}
	mark, err := l.Break.mark()
	if err != nil {
		return err
	}

	sp := sec.X()
	if sp.PgSz == nil {
		sp.PgSz = wml.NewCT_PageSz()
	}
	sp.PgSz.OrientAttr = orient
	w, h := l.Width, l.Height
	if orient == wml.ST_PageOrientationLandscape {
		w, h = h, w
	}
	sp.PgSz.WAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: unioffice.Uint64(uint64(w / measurement.Twips))}
	sp.PgSz.HAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: unioffice.Uint64(uint64(h / measurement.Twips))}

	m := l.Margins
	sec.SetPageMargins(m.Top, m.Right, m.Bottom, m.Left, m.Header, m.Footer, 0)
	if sp.Type == nil {
		sp.Type = wml.NewCT_SectType()
	}
	sp.Type.ValAttr = mark
	return nil
}
