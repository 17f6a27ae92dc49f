package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/purduehcr/points-api/internal/models"
	"github.com/xuri/excelize/v2"
)

type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

var logHeader = []string{
	"Log ID", "Resident", "Point Type", "Points", "Description",
	"Occurred", "Submitted", "Status", "Handled By", "Handled On",
}

// PointsWorkbook renders the competition standings plus one sheet of point
// logs per house present in logsByHouse. The standings always cover every
// house; log sheets follow the caller's visibility.
func PointsWorkbook(houses []models.House, logsByHouse map[string][]models.PointLog, pointValues map[int]int) (*excelize.File, error) {
	sheets := []SheetSpec{standingsSheet(houses)}
	for _, h := range houses {
		logs, ok := logsByHouse[h.Name]
		if !ok {
			continue
		}
		sheets = append(sheets, logsSheet(h.Name, logs, pointValues))
	}
	return newWorkbook(sheets)
}

func standingsSheet(houses []models.House) SheetSpec {
	s := SheetSpec{
		Title:  "Standings",
		Header: []string{"House", "Total Points", "Residents", "Points Per Resident"},
	}
	for _, h := range houses {
		perResident := "0"
		if h.NumberOfResidents > 0 {
			perResident = fmt.Sprintf("%.2f", float64(h.TotalPoints)/float64(h.NumberOfResidents))
		}
		s.Rows = append(s.Rows, []string{
			h.Name, strconv.Itoa(h.TotalPoints), strconv.Itoa(h.NumberOfResidents), perResident,
		})
	}
	return s
}

func logsSheet(house string, logs []models.PointLog, pointValues map[int]int) SheetSpec {
	s := SheetSpec{Title: house, Header: logHeader}
	for _, l := range logs {
		status := "Pending"
		if l.Handled {
			status = "Approved"
			if l.Rejected() {
				status = "Rejected"
			}
		}
		handledBy, handledOn := "", ""
		if l.ApprovedBy != nil {
			handledBy = *l.ApprovedBy
		}
		if l.ApprovedOn != nil {
			handledOn = l.ApprovedOn.Format(time.RFC3339)
		}
		s.Rows = append(s.Rows, []string{
			l.ID,
			l.ResidentFirstName + " " + l.ResidentLastName,
			l.PointTypeName,
			strconv.Itoa(pointValues[l.PointTypeID]),
			l.Description,
			l.DateOccurred.Format("2006-01-02"),
			l.DateSubmitted.Format(time.RFC3339),
			status,
			handledBy,
			handledOn,
		})
	}
	return s
}

func newWorkbook(sheets []SheetSpec) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	for i, s := range sheets {
		name := s.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("new sheet %s: %w", name, err)
			}
		}

		for col, hdr := range s.Header {
			cell := fmt.Sprintf("%s1", colName(col+1))
			if err := f.SetCellStr(name, cell, hdr); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		end := colName(len(s.Header)) + "1"
		_ = f.SetCellStyle(name, "A1", end, bold)
		_ = f.AutoFilter(name, "A1:"+end, nil)

		for r, row := range s.Rows {
			for c, val := range row {
				cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
				if err := f.SetCellStr(name, cell, val); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}

		// width heuristic from header and the first rows
		for c := 1; c <= len(s.Header); c++ {
			widest := len(s.Header[c-1])
			for r := 0; r < minim(50, len(s.Rows)); r++ {
				if l := len(s.Rows[r][c-1]); l > widest {
					widest = l
				}
			}
			w := float64(widest) * 0.9
			if w < 12 {
				w = 12
			}
			if w > 40 {
				w = 40
			}
			_ = f.SetColWidth(name, colName(c), colName(c), w)
		}
	}
	return f, nil
}

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

func minim(a, b int) int {
	if a < b {
		return a
	}
	return b
}
