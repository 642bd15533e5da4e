package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/FloorFit/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Category,Width,Height,Qty\nsmall,2,1.5,4\nlarge,4,3,1\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Category;Width;Height;Qty\nsmall;2;1.5;4\nlarge;4;3;1\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Category\tWidth\tHeight\tQty\nsmall\t2\t1.5\t4\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Category|Width|Height|Qty\nsmall|2|1.5|4\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Category", "Width", "Height", "Quantity"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Category != 0 {
		t.Errorf("expected Category at 0, got %d", mapping.Category)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Quantity != 3 {
		t.Errorf("expected Quantity at 3, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"SIZE", "W", "H", "COUNT"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Category != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_Reordered(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Qty", "Height", "Width", "Type"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Quantity != 0 || mapping.Height != 1 || mapping.Width != 2 || mapping.Category != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"small", "2", "1.5", "4"})

	if isHeader {
		t.Error("expected no header detection for data row")
	}
	if mapping.Category != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Category,Width,Height,Quantity\nsmall,2,1.5,2\nlarge,4,3,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	// Quantity 2 expands into two identical specs
	if len(result.Specs) != 3 {
		t.Fatalf("expected 3 specs, got %d", len(result.Specs))
	}
	if result.Specs[0].Category != model.SizeSmall {
		t.Errorf("expected small, got %s", result.Specs[0].Category)
	}
	if result.Specs[0].Width != 2 || result.Specs[0].Height != 1.5 {
		t.Errorf("unexpected dims: %+v", result.Specs[0])
	}
	if result.Specs[2].Category != model.SizeLarge {
		t.Errorf("expected large, got %s", result.Specs[2].Category)
	}
	if result.Specs[0].Color != model.CategoryColors[model.SizeSmall] {
		t.Errorf("expected category color, got %s", result.Specs[0].Color)
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "small,2,1.5,1\nmedium,3,2,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Specs) != 2 {
		t.Fatalf("expected 2 specs, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
}

func TestImportCSVFromReader_MissingCategoryClassifiesByArea(t *testing.T) {
	data := "Width,Height\n2,1.5\n3,2.5\n4,3.5\n5,4\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Specs) != 4 {
		t.Fatalf("expected 4 specs, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
	want := []model.SizeCategory{model.SizeSmall, model.SizeMedium, model.SizeLarge, model.SizeXLarge}
	for i, cat := range want {
		if result.Specs[i].Category != cat {
			t.Errorf("spec %d: expected %s, got %s", i, cat, result.Specs[i].Category)
		}
	}
}

func TestImportCSVFromReader_UnknownCategoryWarns(t *testing.T) {
	data := "Category,Width,Height\nhuge,2,1.5\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Specs) != 1 {
		t.Fatalf("expected 1 spec, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
	if result.Specs[0].Category != model.SizeSmall {
		t.Errorf("expected area fallback to small, got %s", result.Specs[0].Category)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "huge") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning about the unknown category, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_InvalidWidth(t *testing.T) {
	data := "Category,Width,Height\nsmall,abc,1.5\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid width")
	}
	if len(result.Specs) != 0 {
		t.Errorf("expected 0 specs, got %d", len(result.Specs))
	}
}

func TestImportCSVFromReader_NegativeValues(t *testing.T) {
	data := "Category,Width,Height\nsmall,-2,1.5\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for negative width")
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Category,Width,Height\nsmall,2,1.5\nsmall,abc,1.5\nmedium,3,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Specs) != 2 {
		t.Errorf("expected 2 valid specs, got %d", len(result.Specs))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors))
	}
}

func TestImportCSVFromReader_EmptyRowsSkipped(t *testing.T) {
	data := "Category,Width,Height\nsmall,2,1.5\n\n\nmedium,3,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Specs) != 2 {
		t.Errorf("expected 2 specs (skipping empty rows), got %d (errors: %v)", len(result.Specs), result.Errors)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSV_DetectsSemicolon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.csv")
	data := "Category;Width;Height\nsmall;2;1.5\nmedium;3;2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)

	if len(result.Specs) != 2 {
		t.Fatalf("expected 2 specs, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/specs.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Category", "Width", "Height", "Quantity"},
		{"small", 2, 1.5, 2},
		{"large", 4, 3, 1},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Specs) != 3 {
		t.Fatalf("expected 3 specs, got %d", len(result.Specs))
	}
	if result.Specs[0].Category != model.SizeSmall {
		t.Errorf("expected small, got %s", result.Specs[0].Category)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"small", 2, 1.5, 1},
		{"medium", 3, 2, 1},
	})

	result := ImportExcel(path)

	if len(result.Specs) != 2 {
		t.Fatalf("expected 2 specs, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/specs.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
