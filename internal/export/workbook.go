package export

import (
	"sort"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
)

// Spreadsheet number formats.
const (
	NumFmtThousands   = "#,##0"
	NumFmtTwoDecimals = "0.00"
)

// CellKind distinguishes blank, text and numeric cells.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet cell. Format applies to numeric cells only.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Format string
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell returns a numeric cell with an optional number format.
func NumberCell(v float64, format string) Cell {
	return Cell{Kind: CellNumber, Number: v, Format: format}
}

// Sheet is one worksheet. ColWidths are in character units.
type Sheet struct {
	Name         string
	Rows         [][]Cell
	ColWidths    []float64
	FreezeHeader bool
}

// Book is the format-independent spreadsheet model.
type Book struct {
	Sheets []Sheet
}

// Workbook builds the Summary and Campaigns sheets.
func Workbook(snap *datanorm.Snapshot) *Book {
	return &Book{Sheets: []Sheet{summarySheet(snap), campaignsSheet(snap)}}
}

func summarySheet(snap *datanorm.Snapshot) Sheet {
	rows := [][]Cell{{TextCell("DASHBOARD SUMMARY"), {}}}

	for i, r := range summaryRows(snap) {
		// spacer between the header block and the totals
		if i == 5 {
			rows = append(rows, []Cell{{}, {}})
		}
		if r.numeric {
			rows = append(rows, []Cell{TextCell(r.label), NumberCell(r.number, "")})
			continue
		}
		rows = append(rows, []Cell{TextCell(r.label), TextCell(r.text)})
	}

	return Sheet{Name: "Summary", Rows: rows, ColWidths: []float64{22, 36}}
}

func campaignsSheet(snap *datanorm.Snapshot) Sheet {
	campaigns := make([]datanorm.Campaign, len(snap.Campaigns))
	copy(campaigns, snap.Campaigns)
	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].EmailsSent > campaigns[j].EmailsSent
	})

	rows := make([][]Cell, 0, len(campaigns)+1)
	rows = append(rows, []Cell{
		TextCell("Campaign Name"),
		TextCell("Status"),
		TextCell("Emails Sent"),
		TextCell("Replies"),
		TextCell("Avg Reply Rate (%)"),
	})

	for _, c := range campaigns {
		rate := Cell{}
		if c.ReplyRate.Known {
			rate = NumberCell(c.ReplyRate.Percent, NumFmtTwoDecimals)
		}
		rows = append(rows, []Cell{
			TextCell(c.Name),
			TextCell(string(c.Status)),
			NumberCell(float64(c.EmailsSent), NumFmtThousands),
			NumberCell(float64(c.Replies), NumFmtThousands),
			rate,
		})
	}

	return Sheet{
		Name:         "Campaigns",
		Rows:         rows,
		ColWidths:    []float64{44, 12, 14, 10, 18},
		FreezeHeader: true,
	}
}
