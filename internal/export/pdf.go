// Package export writes placement results to PDF reports, QR-coded unit
// label sheets, and corridor-graph renderings.
package export

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/FloorFit/internal/engine"
	"github.com/piwi3910/FloorFit/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a placement run: a floor-plan page
// with the placed units and corridor network, followed by a summary page.
func ExportPDF(path string, result engine.Result) error {
	if len(result.Units) == 0 {
		return fmt.Errorf("no placed units to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderPlanPage draws the floor plan with walls, restricted areas,
// corridors, and placed units on the current page.
func renderPlanPage(pdf *fpdf.Fpdf, result engine.Result) {
	bounds := result.Plan.Bounds

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Floor Plan Layout (%.1f x %.1f m)", bounds.Width(), bounds.Height())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Units: %d | Placed area: %.1f m² | Rows: %d | Corridors: %d (%.1f m total)",
		result.Stats.TotalUnits, result.Stats.TotalArea, result.Stats.RowCount,
		result.Stats.CorridorCount, result.Stats.CorridorLength)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/bounds.Width(), drawHeight/bounds.Height())
	canvasW := bounds.Width() * scale
	canvasH := bounds.Height() * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Plan coordinates grow upward; PDF coordinates grow downward.
	toPage := func(p model.Point2D) (float64, float64) {
		return offsetX + (p.X-bounds.MinX)*scale, offsetY + (bounds.MaxY-p.Y)*scale
	}

	// Floor background
	pdf.SetFillColor(250, 250, 248)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Restricted areas
	for _, zone := range result.Plan.Restricted {
		if len(zone) < 3 {
			continue
		}
		points := make([]fpdf.PointType, len(zone))
		for i, p := range zone {
			x, y := toPage(p)
			points[i] = fpdf.PointType{X: x, Y: y}
		}
		pdf.SetFillColor(255, 210, 210)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.3)
		pdf.Polygon(points, "FD")
	}

	// Walls
	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.6)
	for _, wall := range result.Plan.Walls {
		for i := 1; i < len(wall); i++ {
			x1, y1 := toPage(wall[i-1])
			x2, y2 := toPage(wall[i])
			pdf.Line(x1, y1, x2, y2)
		}
	}

	// Corridors under the units: mandatory corridors darker
	for _, c := range result.Corridors {
		if c.Mandatory {
			pdf.SetDrawColor(120, 120, 200)
		} else {
			pdf.SetDrawColor(180, 180, 220)
		}
		pdf.SetLineWidth(math.Max(c.Width*scale, 0.4))
		for i := 1; i < len(c.Points); i++ {
			x1, y1 := toPage(c.Points[i-1])
			x2, y2 := toPage(c.Points[i])
			pdf.Line(x1, y1, x2, y2)
		}
	}

	// Placed units colored by size category
	for _, u := range result.Units {
		r, g, b := hexColor(u.Color)
		x, y := toPage(model.Point2D{X: u.X, Y: u.Y + u.Height})
		w := u.Width * scale
		h := u.Height * scale

		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, w, h, "FD")

		if w > 8 && h > 5 {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%.1f m²", u.Area)
			labelW := pdf.GetStringWidth(label)
			if labelW < w-1 {
				pdf.SetXY(x+(w-labelW)/2, y+h/2-1.5)
				pdf.CellFormat(labelW, 3, label, "", 0, "C", false, 0, "")
			}
		}
	}

	// Entrances
	pdf.SetFillColor(220, 0, 0)
	for _, e := range result.Plan.Entrances {
		x, y := toPage(e.Position)
		pdf.Circle(x, y, 1.5, "F")
	}
}

// renderSummaryPage draws aggregate statistics and the per-category legend.
func renderSummaryPage(pdf *fpdf.Fpdf, result engine.Result) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Placement Summary", "", 0, "L", false, 0, "")

	y := drawAreaTop
	line := func(text string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, text, "", 0, "L", false, 0, "")
		y += 6
	}

	s := result.Stats
	line(fmt.Sprintf("Total units placed: %d (skipped %d infeasible specs)", s.TotalUnits, s.SkippedSpecs))
	line(fmt.Sprintf("Total unit area: %.1f m²  |  average: %.1f m²  |  coverage: %.1f%%",
		s.TotalArea, s.AverageArea, s.Coverage*100))
	line(fmt.Sprintf("Rows detected: %d", s.RowCount))
	line(fmt.Sprintf("Corridors: %d (%d mandatory)  |  total length: %.1f m",
		s.CorridorCount, s.MandatoryCount, s.CorridorLength))
	y += 4

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(60, 5, "Units per category", "", 0, "L", false, 0, "")
	y += 7

	for _, cat := range model.SizeCategories {
		count := s.PerCategory[cat]
		r, g, b := hexColor(model.CategoryColors[cat])
		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(30, 30, 30)
		pdf.Rect(marginLeft, y, 5, 4, "FD")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+8, y-0.5)
		pdf.CellFormat(80, 5, fmt.Sprintf("%s: %d", cat, count), "", 0, "L", false, 0, "")
		y += 6
	}
}

// hexColor parses a "#RRGGBB" color into RGB components. Unparseable
// colors come back mid-grey.
func hexColor(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 128, 128, 128
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 128, 128, 128
	}
	return int(r), int(g), int(b)
}
