package docfrag

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// ParagraphOptions configures AddFormattedParagraph.  The per-segment slice
// fields accept no values (the zero-value default applies everywhere), a
// single value applied to every segment, or exactly one value per segment;
// any other length fails validation.
type ParagraphOptions struct {
	// FontSizes are font-size specifiers resolved through ResolveFontSize:
	// numbers, numeric strings, or named type sizes.  A nil specifier leaves
	// the segment on the document default size.
	FontSizes []interface{}
	// EastAsiaFonts name the font family used for Chinese-script text.
	EastAsiaFonts []string
	// WesternFonts name the font family used for Latin-script text.  An
	// empty name falls back to the segment's East Asian family.
	WesternFonts []string
	// ComplexFonts name the font family used for complex scripts.
	ComplexFonts []string
	// Colors are "RRGGBB" text colors.  Empty leaves a segment on the
	// document default.
	Colors []string
	// VerticalAligns position segments on the baseline or as subscript or
	// superscript.  Values: "baseline", "subscript", "superscript".
	VerticalAligns []string
	// Shadings are "RRGGBB" character-shading fills; empty disables shading
	// for the segment.
	Shadings []string

	// Bold, Italic and Underline select segments by index, 1-based.
	// Unlisted segments are left unflagged.
	Bold      []int
	Italic    []int
	Underline []int

	// Alignment is the paragraph justification: "left", "center", "right" or
	// "justify".  Empty means "left".
	Alignment string
	// Padding is applied around the whole paragraph: top and bottom become
	// spacing before/after, left and right become indents.
	Padding Padding
	// LineSpacing is a multiple of single line spacing.  Zero keeps the
	// document default.
	LineSpacing float64

	// TabIndent is repeated TabCount times and prepended to the first
	// segment only.
	TabIndent string
	TabCount  int
}

// AddFormattedParagraph appends a paragraph made of one styled run per text
// segment.  All arguments are validated before the document is touched; on
// error the document is unchanged and no partial paragraph is exposed.
func AddFormattedParagraph(doc *document.Document, texts []string, opts ParagraphOptions) (document.Paragraph, error) {
	if doc == nil {
		return document.Paragraph{}, NewInvalidArgumentError("doc", "document is nil")
	}
	n := len(texts)
	if n == 0 {
		return document.Paragraph{}, NewInvalidArgumentError("texts", "at least one text segment is required")
	}
	if opts.TabCount < 0 {
		return document.Paragraph{}, NewInvalidArgumentError("tabCount", fmt.Sprintf("count %d is negative", opts.TabCount))
	}

	sizes, err := broadcast(opts.FontSizes, n, nil, "fontSizes")
	if err != nil {
		return document.Paragraph{}, err
	}
	pts := make([]float64, n)
	for i, s := range sizes {
		if s == nil {
			continue
		}
		if pts[i], err = ResolveFontSize(s); err != nil {
			return document.Paragraph{}, err
		}
	}
	eastAsia, err := broadcast(opts.EastAsiaFonts, n, "", "eastAsiaFonts")
	if err != nil {
		return document.Paragraph{}, err
	}
	western, err := broadcast(opts.WesternFonts, n, "", "westernFonts")
	if err != nil {
		return document.Paragraph{}, err
	}
	complexScript, err := broadcast(opts.ComplexFonts, n, "", "complexFonts")
	if err != nil {
		return document.Paragraph{}, err
	}
	colorNames, err := broadcast(opts.Colors, n, "", "colors")
	if err != nil {
		return document.Paragraph{}, err
	}
	colors, colorSet, err := parseHexColors(colorNames, "colors")
	if err != nil {
		return document.Paragraph{}, err
	}
	valignNames, err := broadcast(opts.VerticalAligns, n, "", "verticalAligns")
	if err != nil {
		return document.Paragraph{}, err
	}
	valigns := make([]sharedTypes.ST_VerticalAlignRun, n)
	for i, name := range valignNames {
		if valigns[i], err = parseVerticalAlign(name, "verticalAligns"); err != nil {
			return document.Paragraph{}, err
		}
	}
	shadeNames, err := broadcast(opts.Shadings, n, "", "shadings")
	if err != nil {
		return document.Paragraph{}, err
	}
	shades, shadeSet, err := parseHexColors(shadeNames, "shadings")
	if err != nil {
		return document.Paragraph{}, err
	}
	bold, err := indexSet(opts.Bold, n, "bold")
	if err != nil {
		return document.Paragraph{}, err
	}
	italic, err := indexSet(opts.Italic, n, "italic")
	if err != nil {
		return document.Paragraph{}, err
	}
	underline, err := indexSet(opts.Underline, n, "underline")
	if err != nil {
		return document.Paragraph{}, err
	}
	align, err := parseAlignment(opts.Alignment, "alignment")
	if err != nil {
		return document.Paragraph{}, err
	}

	para := doc.AddParagraph()
	pp := para.Properties()
	pp.SetAlignment(align)
	if opts.LineSpacing > 0 {
		// Word stores automatic line spacing in 240ths of a line.
		pp.Spacing().SetLineSpacing(measurement.Distance(opts.LineSpacing*240)*measurement.Twips, wml.ST_LineSpacingRuleAuto)
	}
	if opts.Padding.Top != 0 {
		pp.Spacing().SetBefore(opts.Padding.Top)
	}
	if opts.Padding.Bottom != 0 {
		pp.Spacing().SetAfter(opts.Padding.Bottom)
	}
	setParagraphIndent(pp, opts.Padding.Left, opts.Padding.Right)

	for i, text := range texts {
		if i == 0 && opts.TabCount > 0 {
			text = strings.Repeat(opts.TabIndent, opts.TabCount) + text
		}
		run := para.AddRun()
		rp := run.Properties()
		setRunFonts(rp, eastAsia[i], western[i], complexScript[i])
		if pts[i] > 0 {
			rp.SetSize(measurement.Distance(pts[i]) * measurement.Point)
		}
		if colorSet[i] {
			rp.SetColor(colors[i])
		}
		rp.SetBold(bold[i])
		rp.SetItalic(italic[i])
		if underline[i] {
			rp.SetUnderline(wml.ST_UnderlineSingle, color.Auto)
		}
		if valigns[i] != sharedTypes.ST_VerticalAlignRunBaseline {
			rp.SetVerticalAlignment(valigns[i])
		}
		if shadeSet[i] {
			setRunShading(rp, shades[i])
		}
		run.AddText(text)
	}
	return para, nil
}
