package docfrag

import (
	"fmt"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// BannerOptions configures AddBannerTable.
type BannerOptions struct {
	// Background is the "RRGGBB" fill behind the banner text.  Empty leaves
	// the cell unfilled.
	Background string
	// Color is the "RRGGBB" text color.
	Color string
	// EastAsiaFont and WesternFont name the banner font families.  An empty
	// Western family falls back to the East Asian one.
	EastAsiaFont string
	WesternFont  string
	// FontSize is a specifier resolved through ResolveFontSize.  Nil keeps
	// the document default.
	FontSize interface{}
	// Bold flags every banner line bold.
	Bold bool
	// Alignment of the banner text.  Empty means "center".
	Alignment string
	// Width and Height give the explicit cell geometry.  Zero leaves the
	// corresponding dimension automatic.
	Width  measurement.Distance
	Height measurement.Distance
	// Padding is the four-sided cell padding.
	Padding Padding
}

// AddBannerTable appends a single-row, single-column table displaying one
// paragraph per line over a uniform background.  The table starts from a
// clean slate: all borders are removed before any styling is applied, and
// there is no header row.
func AddBannerTable(doc *document.Document, lines []string, opts BannerOptions) (document.Table, error) {
	if doc == nil {
		return document.Table{}, NewInvalidArgumentError("doc", "document is nil")
	}
	if len(lines) == 0 {
		return document.Table{}, NewInvalidArgumentError("lines", "at least one line is required")
	}
	var pt float64
	var err error
	if opts.FontSize != nil {
		if pt, err = ResolveFontSize(opts.FontSize); err != nil {
			return document.Table{}, err
		}
	}
	bg, bgSet, err := parseHexColor(opts.Background, "background")
	if err != nil {
		return document.Table{}, err
	}
	fg, fgSet, err := parseHexColor(opts.Color, "color")
	if err != nil {
		return document.Table{}, err
	}
	alignName := opts.Alignment
	if alignName == "" {
		alignName = "center"
	}
	align, err := parseAlignment(alignName, "alignment")
	if err != nil {
		return document.Table{}, err
	}

	tbl := doc.AddTable()
	tbl.Properties().Borders().SetAll(wml.ST_BorderNone, color.Auto, 0)
	if opts.Width != 0 {
		tbl.Properties().SetWidth(opts.Width)
		setTableLayoutFixed(tbl)
	}

	row := tbl.AddRow()
	if opts.Height != 0 {
		setRowHeight(row, opts.Height)
	}
	cell := row.AddCell()
	cp := cell.Properties()
	clearCellBorders(cell)
	cp.SetVerticalAlignment(wml.ST_VerticalJcCenter)
	if opts.Width != 0 {
		cp.SetWidth(opts.Width)
	}
	if bgSet {
		cp.SetShading(wml.ST_ShdClear, color.Auto, bg)
	}
	setCellPadding(cell, opts.Padding)

	for _, line := range lines {
		p := cell.AddParagraph()
		p.Properties().SetAlignment(align)
		run := p.AddRun()
		rp := run.Properties()
		setRunFonts(rp, opts.EastAsiaFont, opts.WesternFont, "")
		if pt > 0 {
			rp.SetSize(measurement.Distance(pt) * measurement.Point)
		}
		if fgSet {
			rp.SetColor(fg)
		}
		rp.SetBold(opts.Bold)
		run.AddText(line)
	}
	return tbl, nil
}

// InfoTableOptions configures AddInfoTable.
type InfoTableOptions struct {
	// LabelAlignment and ValueAlignment set per-column justification.
	// Empty means "left".
	LabelAlignment string
	ValueAlignment string
	// LabelFontSize and ValueFontSize are specifiers resolved through
	// ResolveFontSize.  Nil keeps the document default.
	LabelFontSize interface{}
	ValueFontSize interface{}
	// EastAsiaFont and WesternFont apply to every cell.
	EastAsiaFont string
	WesternFont  string
	// Color is the "RRGGBB" text color for every cell.
	Color string
	// Bold flags the label column bold.
	Bold bool
	// LabelWidth and ValueWidth are the column widths.  Zero leaves a column
	// automatic.
	LabelWidth measurement.Distance
	ValueWidth measurement.Distance
	// RowHeights sets per-row minimum heights: a single value is broadcast
	// to every row, otherwise one value per row is required.  A zero height
	// leaves the row automatic.
	RowHeights []measurement.Distance
	// Padding is the uniform cell padding.
	Padding Padding
	// BorderColor and BorderWidth style the rule drawn under each value
	// cell.  Defaults: black, half a point.
	BorderColor string
	BorderWidth measurement.Distance
}

// AddInfoTable appends a two-column table pairing each label with its value.
// The label and value slices must have equal length; the table gets exactly
// one body row per pair and no header row.  All borders are removed up front
// and a bottom border is drawn only under the value column.
func AddInfoTable(doc *document.Document, labels, values []string, opts InfoTableOptions) (document.Table, error) {
	if doc == nil {
		return document.Table{}, NewInvalidArgumentError("doc", "document is nil")
	}
	n := len(labels)
	if len(values) != n {
		return document.Table{}, NewInvalidArgumentError("values",
			fmt.Sprintf("got %d values for %d labels", len(values), n))
	}
	heights, err := broadcast(opts.RowHeights, n, 0, "rowHeights")
	if err != nil {
		return document.Table{}, err
	}
	var labelPt, valuePt float64
	if opts.LabelFontSize != nil {
		if labelPt, err = ResolveFontSize(opts.LabelFontSize); err != nil {
			return document.Table{}, err
		}
	}
	if opts.ValueFontSize != nil {
		if valuePt, err = ResolveFontSize(opts.ValueFontSize); err != nil {
			return document.Table{}, err
		}
	}
	labelAlign, err := parseAlignment(opts.LabelAlignment, "labelAlignment")
	if err != nil {
		return document.Table{}, err
	}
	valueAlign, err := parseAlignment(opts.ValueAlignment, "valueAlignment")
	if err != nil {
		return document.Table{}, err
	}
	fg, fgSet, err := parseHexColor(opts.Color, "color")
	if err != nil {
		return document.Table{}, err
	}
	borderColor := color.Black
	if opts.BorderColor != "" {
		bc, _, err := parseHexColor(opts.BorderColor, "borderColor")
		if err != nil {
			return document.Table{}, err
		}
		borderColor = bc
	}
	borderWidth := opts.BorderWidth
	if borderWidth == 0 {
		borderWidth = measurement.Point / 2
	}

	tbl := doc.AddTable()
	tbl.Properties().Borders().SetAll(wml.ST_BorderNone, color.Auto, 0)
	if opts.LabelWidth != 0 && opts.ValueWidth != 0 {
		tbl.Properties().SetWidth(opts.LabelWidth + opts.ValueWidth)
		setTableLayoutFixed(tbl)
	}

	addCell := func(row document.Row, text string, width measurement.Distance, align wml.ST_Jc, pt float64, bold bool) document.Cell {
		cell := row.AddCell()
		cp := cell.Properties()
		clearCellBorders(cell)
		cp.SetVerticalAlignment(wml.ST_VerticalJcCenter)
		if width != 0 {
			cp.SetWidth(width)
		}
		setCellPadding(cell, opts.Padding)
		p := cell.AddParagraph()
		p.Properties().SetAlignment(align)
		run := p.AddRun()
		rp := run.Properties()
		setRunFonts(rp, opts.EastAsiaFont, opts.WesternFont, "")
		if pt > 0 {
			rp.SetSize(measurement.Distance(pt) * measurement.Point)
		}
		if fgSet {
			rp.SetColor(fg)
		}
		rp.SetBold(bold)
		run.AddText(text)
		return cell
	}

	for i := 0; i < n; i++ {
		row := tbl.AddRow()
		if heights[i] != 0 {
			setRowHeight(row, heights[i])
		}
		addCell(row, labels[i], opts.LabelWidth, labelAlign, labelPt, opts.Bold)
		valueCell := addCell(row, values[i], opts.ValueWidth, valueAlign, valuePt, false)
		setCellBottomBorder(valueCell, borderColor, borderWidth)
	}
	return tbl, nil
}
