package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// docTimestamp pins the workbook properties so repeated exports of the same
// snapshot carry the same metadata.
const docTimestamp = "2000-01-01T00:00:00Z"

// EncodeXLSX writes the book as an Office Open XML workbook.
func EncodeXLSX(book *Book) ([]byte, error) {
	if book == nil || len(book.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	styles := make(map[string]int)
	styleFor := func(format string) (int, error) {
		if id, ok := styles[format]; ok {
			return id, nil
		}
		numFmt := format
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			return 0, fmt.Errorf("creating style %q: %w", format, err)
		}
		styles[format] = id
		return id, nil
	}

	for i, sh := range book.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.Name); err != nil {
				return nil, fmt.Errorf("naming sheet %q: %w", sh.Name, err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return nil, fmt.Errorf("adding sheet %q: %w", sh.Name, err)
		}

		if err := writeSheet(f, sh, styleFor); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:        "campaign-dashboard",
		LastModifiedBy: "campaign-dashboard",
		Created:        docTimestamp,
		Modified:       docTimestamp,
	}); err != nil {
		return nil, fmt.Errorf("setting document properties: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sh Sheet, styleFor func(string) (int, error)) error {
	for r, row := range sh.Rows {
		for c, cell := range row {
			if cell.Kind == CellEmpty {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", sh.Name, err)
			}

			switch cell.Kind {
			case CellText:
				err = f.SetCellStr(sh.Name, ref, cell.Text)
			case CellNumber:
				err = f.SetCellFloat(sh.Name, ref, cell.Number, -1, 64)
			}
			if err != nil {
				return fmt.Errorf("sheet %q cell %s: %w", sh.Name, ref, err)
			}

			if cell.Kind == CellNumber && cell.Format != "" {
				style, err := styleFor(cell.Format)
				if err != nil {
					return err
				}
				if err := f.SetCellStyle(sh.Name, ref, ref, style); err != nil {
					return fmt.Errorf("sheet %q cell %s: %w", sh.Name, ref, err)
				}
			}
		}
	}

	for c, width := range sh.ColWidths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sh.Name, err)
		}
		if err := f.SetColWidth(sh.Name, col, col, width); err != nil {
			return fmt.Errorf("sheet %q column %s: %w", sh.Name, col, err)
		}
	}

	if sh.FreezeHeader {
		if err := f.SetPanes(sh.Name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("sheet %q freeze header: %w", sh.Name, err)
		}
	}
	return nil
}
