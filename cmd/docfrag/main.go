// Command docfrag generates a sample document exercising every builder in
// the library.  Useful for eyeballing the output in Word.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"

	"github.com/aerissecure/docfrag"
)

func main() {
	out := pflag.StringP("out", "o", "sample.docx", "output path for the generated document")
	paper := pflag.String("paper", "a4", "paper size: a3, a4 or b5")
	landscape := pflag.Bool("landscape", false, "use landscape orientation")
	pflag.Parse()

	if err := run(*out, *paper, *landscape); err != nil {
		fmt.Fprintln(os.Stderr, "docfrag:", err)
		os.Exit(1)
	}
}

func run(out, paper string, landscape bool) error {
	doc := document.New()

	var layout docfrag.PageLayout
	switch paper {
	case "a3":
		layout = docfrag.A3Layout()
	case "a4":
		layout = docfrag.A4Layout()
	case "b5":
		layout = docfrag.B5Layout()
	default:
		return fmt.Errorf("unknown paper size %q", paper)
	}
	layout.Margins = docfrag.PageMargins{
		Top:    measurement.Inch,
		Bottom: measurement.Inch,
		Left:   1.25 * measurement.Inch,
		Right:  1.25 * measurement.Inch,
		Header: 0.5 * measurement.Inch,
		Footer: 0.5 * measurement.Inch,
	}
	if landscape {
		layout.Orientation = "landscape"
	}
	if err := layout.Apply(doc.BodySection()); err != nil {
		return err
	}

	if _, err := docfrag.AddBannerTable(doc, []string{"检测报告", "Assessment Report"}, docfrag.BannerOptions{
		Background:   "1F4E79",
		Color:        "FFFFFF",
		EastAsiaFont: "黑体",
		WesternFont:  "Arial",
		FontSize:     "小初",
		Bold:         true,
		Width:        6 * measurement.Inch,
		Height:       1.2 * measurement.Inch,
		Padding:      docfrag.Padding{Top: 6 * measurement.Point, Bottom: 6 * measurement.Point},
	}); err != nil {
		return err
	}

	if err := docfrag.AddBlankLines(doc, 2); err != nil {
		return err
	}

	if _, err := docfrag.AddFormattedParagraph(doc, []string{"项目名称：", "示例系统安全评估"}, docfrag.ParagraphOptions{
		FontSizes:     []interface{}{"三号"},
		EastAsiaFonts: []string{"宋体"},
		WesternFonts:  []string{"Times New Roman"},
		Bold:          []int{1},
		Alignment:     "center",
		LineSpacing:   1.5,
	}); err != nil {
		return err
	}

	if err := docfrag.AddBlankLines(doc, 1); err != nil {
		return err
	}

	if _, err := docfrag.AddInfoTable(doc,
		[]string{"委托单位", "报告日期", "报告编号"},
		[]string{"示例科技有限公司", "2026-08-30", "DF-2026-0001"},
		docfrag.InfoTableOptions{
			LabelAlignment: "right",
			ValueAlignment: "center",
			LabelFontSize:  "四号",
			ValueFontSize:  "四号",
			EastAsiaFont:   "宋体",
			WesternFont:    "Times New Roman",
			Bold:           true,
			LabelWidth:     1.6 * measurement.Inch,
			ValueWidth:     3 * measurement.Inch,
			RowHeights:     []measurement.Distance{0.4 * measurement.Inch},
			Padding:        docfrag.Padding{Left: 8 * measurement.Point, Right: 8 * measurement.Point},
		}); err != nil {
		return err
	}

	if err := doc.SaveToFile(out); err != nil {
		return err
	}
	fmt.Println("wrote", out)
	return nil
}
