package docfrag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// Padding describes four-sided spacing around a block of content.
type Padding struct {
	Top    measurement.Distance
	Bottom measurement.Distance
	Left   measurement.Distance
	Right  measurement.Distance
}

// broadcast normalizes a per-segment styling parameter to exactly n values.
// An empty slice yields n copies of def, a single value is repeated for every
// segment, and a slice of length n is used as-is.  Any other length is a
// contract violation.
func broadcast[T any](vals []T, n int, def T, arg string) ([]T, error) {
	switch len(vals) {
	case 0:
		out := make([]T, n)
		for i := range out {
			out[i] = def
		}
		return out, nil
	case 1:
		out := make([]T, n)
		for i := range out {
			out[i] = vals[0]
		}
		return out, nil
	case n:
		return vals, nil
	}
	return nil, NewInvalidArgumentError(arg, fmt.Sprintf("got %d values for %d segments", len(vals), n))
}

// indexSet converts a list of 1-based segment indices into a per-segment
// boolean slice.  Unlisted segments stay false.
func indexSet(indices []int, n int, arg string) ([]bool, error) {
	flags := make([]bool, n)
	for _, idx := range indices {
		if idx < 1 || idx > n {
			return nil, NewInvalidArgumentError(arg, fmt.Sprintf("index %d out of range 1..%d", idx, n))
		}
		flags[idx-1] = true
	}
	return flags, nil
}

// parseAlignment maps an alignment name to its justification value.  The
// empty string means "left".
func parseAlignment(name, arg string) (wml.ST_Jc, error) {
	switch name {
	case "", "left":
		return wml.ST_JcLeft, nil
	case "center":
		return wml.ST_JcCenter, nil
	case "right":
		return wml.ST_JcRight, nil
	case "justify":
		return wml.ST_JcBoth, nil
	}
	return wml.ST_JcUnset, NewInvalidArgumentError(arg,
		fmt.Sprintf("unknown alignment %q, valid values are: left, center, right, justify", name))
}

// parseVerticalAlign maps a run vertical-alignment name.  The empty string
// means "baseline".
func parseVerticalAlign(name, arg string) (sharedTypes.ST_VerticalAlignRun, error) {
	switch name {
	case "", "baseline":
		return sharedTypes.ST_VerticalAlignRunBaseline, nil
	case "subscript":
		return sharedTypes.ST_VerticalAlignRunSubscript, nil
	case "superscript":
		return sharedTypes.ST_VerticalAlignRunSuperscript, nil
	}
	return sharedTypes.ST_VerticalAlignRunUnset, NewInvalidArgumentError(arg,
		fmt.Sprintf("unknown vertical alignment %q, valid values are: baseline, subscript, superscript", name))
}

// parseHexColor converts an "RRGGBB" string (a leading '#' is tolerated) to a
// color.  The empty string reports ok=false, meaning "leave unset".
func parseHexColor(s, arg string) (c color.Color, ok bool, err error) {
	if s == "" {
		return color.Color{}, false, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.Color{}, false, NewInvalidArgumentError(arg, fmt.Sprintf("%q is not an RRGGBB color", s))
	}
	v, perr := strconv.ParseUint(h, 16, 32)
	if perr != nil {
		return color.Color{}, false, NewInvalidArgumentError(arg, fmt.Sprintf("%q is not an RRGGBB color", s))
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true, nil
}

// parseHexColors parses a slice of "RRGGBB" strings in one pass, so builders
// can validate every color before mutating the document.
func parseHexColors(ss []string, arg string) ([]color.Color, []bool, error) {
	colors := make([]color.Color, len(ss))
	set := make([]bool, len(ss))
	for i, s := range ss {
		c, ok, err := parseHexColor(s, arg)
		if err != nil {
			return nil, nil, err
		}
		colors[i] = c
		set[i] = ok
	}
	return colors, set, nil
}

// setRunFonts assigns per-script font families.  The high-level
// SetFontFamily writes one name into every script slot, so the slots are set
// directly instead.  An empty Western family falls back to the East Asian
// one.
func setRunFonts(rp document.RunProperties, eastAsia, western, complexScript string) {
	if eastAsia == "" && western == "" && complexScript == "" {
		return
	}
	rpr := rp.X()
	if rpr.RFonts == nil {
		rpr.RFonts = wml.NewCT_Fonts()
	}
	if western == "" {
		western = eastAsia
	}
	if western != "" {
		rpr.RFonts.AsciiAttr = unioffice.String(western)
		rpr.RFonts.HAnsiAttr = unioffice.String(western)
	}
	if eastAsia != "" {
		rpr.RFonts.EastAsiaAttr = unioffice.String(eastAsia)
	}
	if complexScript != "" {
		rpr.RFonts.CsAttr = unioffice.String(complexScript)
	}
}

// setRunShading writes a plain character-shading fill, which the document API
// has no setter for.
func setRunShading(rp document.RunProperties, fill color.Color) {
	shd := wml.NewCT_Shd()
	shd.ValAttr = wml.ST_ShdClear
	shd.FillAttr = &wml.ST_HexColor{ST_HexColorRGB: fill.AsRGBString()}
	rp.X().Shd = shd
}

// setParagraphIndent writes left/right paragraph indents in twips.  Zero
// distances leave the corresponding side unset.
func setParagraphIndent(pp document.ParagraphProperties, left, right measurement.Distance) {
	if left == 0 && right == 0 {
		return
	}
	ppr := pp.X()
	if ppr.Ind == nil {
		ppr.Ind = wml.NewCT_Ind()
	}
	if left != 0 {
		ppr.Ind.LeftAttr = &wml.ST_SignedTwipsMeasure{Int64: unioffice.Int64(int64(left / measurement.Twips))}
	}
	if right != 0 {
		ppr.Ind.RightAttr = &wml.ST_SignedTwipsMeasure{Int64: unioffice.Int64(int64(right / measurement.Twips))}
	}
}

// setTableLayoutFixed switches the table to fixed layout so explicit widths
// are respected.
func setTableLayoutFixed(tbl document.Table) {
	tblPr := tbl.X().TblPr
	if tblPr == nil {
		tblPr = wml.NewCT_TblPr()
		tbl.X().TblPr = tblPr
	}
	if tblPr.TblLayout == nil {
		tblPr.TblLayout = wml.NewCT_TblLayoutType()
	}
	tblPr.TblLayout.TypeAttr = wml.ST_TblLayoutTypeFixed
}

// setRowHeight writes a minimum row height in twips.
func setRowHeight(row document.Row, h measurement.Distance) {
	tr := row.X()
	if tr.TrPr == nil {
		tr.TrPr = wml.NewCT_TrPr()
	}
	ht := wml.NewCT_Height()
	ht.HRuleAttr = wml.ST_HeightRuleAtLeast
	ht.ValAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: unioffice.Uint64(uint64(h / measurement.Twips))}
	tr.TrPr.TrHeight = []*wml.CT_Height{ht}
}

func cellPr(cell document.Cell) *wml.CT_TcPr {
	tc := cell.X()
	if tc.TcPr == nil {
		tc.TcPr = wml.NewCT_TcPr()
	}
	return tc.TcPr
}

func borderNone() *wml.CT_Border {
	return &wml.CT_Border{ValAttr: wml.ST_BorderNone}
}

// clearCellBorders pins every cell border to none so later overrides start
// from a known style.
func clearCellBorders(cell document.Cell) {
	cellPr(cell).TcBorders = &wml.CT_TcBorders{
		Top:    borderNone(),
		Bottom: borderNone(),
		Left:   borderNone(),
		Right:  borderNone(),
	}
}

// setCellBottomBorder draws a single rule under the cell.  Thickness is
// stored in eighths of a point.
func setCellBottomBorder(cell document.Cell, c color.Color, thickness measurement.Distance) {
	pr := cellPr(cell)
	if pr.TcBorders == nil {
		pr.TcBorders = &wml.CT_TcBorders{}
	}
	pr.TcBorders.Bottom = &wml.CT_Border{
		ValAttr:   wml.ST_BorderSingle,
		SzAttr:    unioffice.Uint64(uint64(thickness / measurement.Point * 8)),
		ColorAttr: &wml.ST_HexColor{ST_HexColorRGB: c.AsRGBString()},
	}
}

// dxaWidth expresses a distance as a table-width value in twips.
func dxaWidth(d measurement.Distance) *wml.CT_TblWidth {
	w := wml.NewCT_TblWidth()
	w.TypeAttr = wml.ST_TblWidthDxa
	w.WAttr = &wml.ST_MeasurementOrPercent{
		ST_DecimalNumberOrPercent: &wml.ST_DecimalNumberOrPercent{
			ST_UnqualifiedPercentage: unioffice.Int64(int64(d / measurement.Twips)),
		},
	}
	return w
}

// setCellPadding applies four-sided cell margins, skipping zero sides.
func setCellPadding(cell document.Cell, p Padding) {
	if p == (Padding{}) {
		return
	}
	pr := cellPr(cell)
	if pr.TcMar == nil {
		pr.TcMar = wml.NewCT_TcMar()
	}
	if p.Top != 0 {
		pr.TcMar.Top = dxaWidth(p.Top)
	}
	if p.Bottom != 0 {
		pr.TcMar.Bottom = dxaWidth(p.Bottom)
	}
	if p.Left != 0 {
		pr.TcMar.Left = dxaWidth(p.Left)
	}
	if p.Right != 0 {
		pr.TcMar.Right = dxaWidth(p.Right)
	}
}
