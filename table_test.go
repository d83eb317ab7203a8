package docfrag

import (
	"errors"
	"strings"
	"testing"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

func TestAddBannerTable(t *testing.T) {
	doc := document.New()
	lines := []string{"检测报告", "Assessment Report"}
	tbl, err := AddBannerTable(doc, lines, BannerOptions{
		Background:   "1F4E79",
		Color:        "FFFFFF",
		EastAsiaFont: "黑体",
		FontSize:     "小初",
		Bold:         true,
		Width:        6 * measurement.Inch,
		Height:       1.2 * measurement.Inch,
	})
	if err != nil {
		t.Fatalf("AddBannerTable returned error: %v", err)
	}
	rows := tbl.Rows()
	if len(rows) != 1 {
		t.Fatalf("banner has %d rows, want 1", len(rows))
	}
	cells := rows[0].Cells()
	if len(cells) != 1 {
		t.Fatalf("banner has %d cells, want 1", len(cells))
	}
	paras := cells[0].Paragraphs()
	if len(paras) != len(lines) {
		t.Fatalf("banner cell has %d paragraphs, want %d", len(paras), len(lines))
	}
	for i, p := range paras {
		runs := p.Runs()
		if len(runs) != 1 {
			t.Fatalf("banner paragraph %d has %d runs, want 1", i, len(runs))
		}
		if got := runs[0].Text(); got != lines[i] {
			t.Errorf("banner line %d = %q, want %q", i, got, lines[i])
		}
		if !runs[0].Properties().IsBold() {
			t.Errorf("banner line %d is not bold", i)
		}
	}

	tcPr := cells[0].X().TcPr
	if tcPr == nil || tcPr.Shd == nil || tcPr.Shd.FillAttr == nil || tcPr.Shd.FillAttr.ST_HexColorRGB == nil {
		t.Fatal("banner cell has no background fill")
	}
	if got := *tcPr.Shd.FillAttr.ST_HexColorRGB; !strings.EqualFold(got, "1F4E79") {
		t.Errorf("banner fill = %q, want 1F4E79", got)
	}
}

func TestAddBannerTableClearsBorders(t *testing.T) {
	doc := document.New()
	tbl, err := AddBannerTable(doc, []string{"title"}, BannerOptions{})
	if err != nil {
		t.Fatalf("AddBannerTable returned error: %v", err)
	}
	borders := tbl.X().TblPr.TblBorders
	if borders == nil {
		t.Fatal("banner table has no explicit border reset")
	}
	for name, b := range map[string]*wml.CT_Border{
		"top": borders.Top, "bottom": borders.Bottom,
		"left": borders.Left, "right": borders.Right,
		"insideH": borders.InsideH, "insideV": borders.InsideV,
	} {
		if b == nil || b.ValAttr != wml.ST_BorderNone {
			t.Errorf("border %s is not reset to none", name)
		}
	}
}

func TestAddBannerTableInvalid(t *testing.T) {
	doc := document.New()
	if _, err := AddBannerTable(doc, nil, BannerOptions{}); err == nil {
		t.Error("expected error for empty line list")
	}
	_, err := AddBannerTable(doc, []string{"x"}, BannerOptions{Background: "navy"})
	var invArg *InvalidArgumentError
	if !errors.As(err, &invArg) {
		t.Errorf("got %v, want *InvalidArgumentError", err)
	}
}

func TestAddInfoTableLengthMismatch(t *testing.T) {
	doc := document.New()
	_, err := AddInfoTable(doc,
		[]string{"a", "b", "c", "d"},
		[]string{"1", "2", "3"},
		InfoTableOptions{})
	var invArg *InvalidArgumentError
	if !errors.As(err, &invArg) {
		t.Fatalf("AddInfoTable returned %v, want *InvalidArgumentError", err)
	}
}

func TestAddInfoTableRows(t *testing.T) {
	doc := document.New()
	labels := []string{"委托单位", "报告日期", "报告编号"}
	values := []string{"示例公司", "2026-08-30", "DF-0001"}
	tbl, err := AddInfoTable(doc, labels, values, InfoTableOptions{
		LabelFontSize: "四号",
		ValueFontSize: 12,
		Bold:          true,
	})
	if err != nil {
		t.Fatalf("AddInfoTable returned error: %v", err)
	}
	rows := tbl.Rows()
	if len(rows) != len(labels) {
		t.Fatalf("info table has %d rows, want %d body rows and no header", len(rows), len(labels))
	}
	for i, row := range rows {
		cells := row.Cells()
		if len(cells) != 2 {
			t.Fatalf("row %d has %d cells, want 2", i, len(cells))
		}
		labelRun := cells[0].Paragraphs()[0].Runs()[0]
		valueRun := cells[1].Paragraphs()[0].Runs()[0]
		if got := labelRun.Text(); got != labels[i] {
			t.Errorf("row %d label = %q, want %q", i, got, labels[i])
		}
		if got := valueRun.Text(); got != values[i] {
			t.Errorf("row %d value = %q, want %q", i, got, values[i])
		}
		if !labelRun.Properties().IsBold() {
			t.Errorf("row %d label is not bold", i)
		}
		if valueRun.Properties().IsBold() {
			t.Errorf("row %d value is bold, label-only bold expected", i)
		}
	}
}

func TestAddInfoTableValueColumnBottomBorder(t *testing.T) {
	doc := document.New()
	tbl, err := AddInfoTable(doc, []string{"a"}, []string{"1"}, InfoTableOptions{})
	if err != nil {
		t.Fatalf("AddInfoTable returned error: %v", err)
	}
	cells := tbl.Rows()[0].Cells()

	labelBorders := cells[0].X().TcPr.TcBorders
	if labelBorders != nil && labelBorders.Bottom != nil && labelBorders.Bottom.ValAttr == wml.ST_BorderSingle {
		t.Error("label cell has a bottom rule, value column only expected")
	}
	valueBorders := cells[1].X().TcPr.TcBorders
	if valueBorders == nil || valueBorders.Bottom == nil || valueBorders.Bottom.ValAttr != wml.ST_BorderSingle {
		t.Error("value cell is missing its bottom rule")
	}
}

func TestAddInfoTableRowHeights(t *testing.T) {
	doc := document.New()
	tbl, err := AddInfoTable(doc,
		[]string{"a", "b"},
		[]string{"1", "2"},
		InfoTableOptions{RowHeights: []measurement.Distance{0.5 * measurement.Inch}})
	if err != nil {
		t.Fatalf("AddInfoTable returned error: %v", err)
	}
	for i, row := range tbl.Rows() {
		trPr := row.X().TrPr
		if trPr == nil || len(trPr.TrHeight) == 0 {
			t.Errorf("row %d has no height set", i)
			continue
		}
		h := trPr.TrHeight[0]
		if h.ValAttr == nil || h.ValAttr.ST_UnsignedDecimalNumber == nil {
			t.Errorf("row %d height has no value", i)
			continue
		}
		want := uint64(0.5 * measurement.Inch / measurement.Twips)
		if got := *h.ValAttr.ST_UnsignedDecimalNumber; got != want {
			t.Errorf("row %d height = %d twips, want %d", i, got, want)
		}
	}
}

func TestAddInfoTableRowHeightMismatch(t *testing.T) {
	doc := document.New()
	_, err := AddInfoTable(doc,
		[]string{"a", "b", "c"},
		[]string{"1", "2", "3"},
		InfoTableOptions{RowHeights: []measurement.Distance{measurement.Inch, measurement.Inch}})
	var invArg *InvalidArgumentError
	if !errors.As(err, &invArg) {
		t.Fatalf("AddInfoTable returned %v, want *InvalidArgumentError", err)
	}
}
