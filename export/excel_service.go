package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"respring/apperr"
	"respring/deck"
)

// ErrNoTables is returned when a document has no table to export.
var ErrNoTables = errors.New("no table data to export")

// ExcelExportService writes the tables of a deck to a workbook using excelize
type ExcelExportService struct{}

// NewExcelExportService creates a new Excel export service
func NewExcelExportService() *ExcelExportService {
	return &ExcelExportService{}
}

const maxSheetName = 31

// SheetName derives a worksheet name from a slide: its two-digit number
// and title, without the characters Excel forbids, at most 31 runes.
func SheetName(slide deck.Slide, index int) string {
	title := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, slide.Title)
	name := fmt.Sprintf("%02d %s", slide.Number, strings.Join(strings.Fields(title), " "))
	suffix := ""
	if index > 0 {
		suffix = fmt.Sprintf(" (%d)", index+1)
	}
	limit := maxSheetName - utf8.RuneCountInString(suffix)
	if utf8.RuneCountInString(name) > limit {
		name = strings.TrimSpace(string([]rune(name)[:limit]))
	}
	return name + suffix
}

// ExportTables writes every table of doc to its own sheet, header row
// styled, in slide order.
func (s *ExcelExportService) ExportTables(doc *deck.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{deck.Navy.Hex()},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "FFFFFF", Style: 1},
			{Type: "top", Color: "FFFFFF", Style: 1},
			{Type: "bottom", Color: "FFFFFF", Style: 1},
			{Type: "right", Color: "FFFFFF", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "D9D9D9", Style: 1},
			{Type: "top", Color: "D9D9D9", Style: 1},
			{Type: "bottom", Color: "D9D9D9", Style: 1},
			{Type: "right", Color: "D9D9D9", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create data style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "D9D9D9", Style: 1},
			{Type: "top", Color: "D9D9D9", Style: 1},
			{Type: "bottom", Color: "D9D9D9", Style: 1},
			{Type: "right", Color: "D9D9D9", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create data style: %w", err)
	}

	sheets := 0
	for _, slide := range doc.Slides {
		for ti, t := range slide.Tables() {
			name := SheetName(slide, ti)
			index, err := f.NewSheet(name)
			if err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
			}
			if sheets == 0 {
				f.SetActiveSheet(index)
			}
			sheets++
			if err := writeTable(f, name, t, headerStyle, dataStyle, boldStyle); err != nil {
				return nil, fmt.Errorf("sheet %s: %w", name, err)
			}
		}
	}
	if sheets == 0 {
		return nil, ErrNoTables
	}
	f.DeleteSheet("Sheet1")

	// no timestamps, so the workbook is reproducible
	f.SetDocProps(&excelize.DocProperties{
		Category:       "사업계획서",
		ContentStatus:  "Final",
		Creator:        doc.Author,
		LastModifiedBy: doc.Author,
		Identifier:     "xlsx",
		Revision:       "1",
		Subject:        "표 데이터",
		Title:          doc.Title,
		Language:       "ko-KR",
		Version:        "1.0",
	})

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, t *deck.Table, headerStyle, dataStyle, boldStyle int) error {
	widths := make([]int, t.NumCols())
	for r, row := range t.Rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, name, cell.Text); err != nil {
				return err
			}
			style := dataStyle
			switch {
			case r == 0:
				style = headerStyle
			case cell.Style.Bold:
				style = boldStyle
			}
			if err := f.SetCellStyle(sheet, name, name, style); err != nil {
				return err
			}
			// wide runes take two character widths
			if w := displayWidth(cell.Text); w > widths[c] {
				widths[c] = w
			}
		}
	}
	for c, w := range widths {
		width := float64(w) * 1.2
		if width < 10 {
			width = 10
		}
		if width > 50 {
			width = 50
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	if err := f.SetRowHeight(sheet, 1, 25); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func displayWidth(s string) int {
	return int(deck.TextWidth(s, 72) * 2)
}

// SaveTables exports the tables of doc and writes the workbook to path.
func (s *ExcelExportService) SaveTables(ctx context.Context, doc *deck.Document, path string) error {
	data, err := s.ExportTables(doc)
	if err != nil {
		return apperr.WrapError("ExcelExport", "ExportTables", err)
	}
	if err := WriteFileAtomic(ctx, path, data); err != nil {
		return apperr.WrapError("ExcelExport", "SaveTables", err)
	}
	return nil
}
