package grid_test

import (
	"fmt"

	"github.com/matzehuels/sheetanchor/pkg/grid"
)

func ExampleEngine_FitColumns() {
	// Three 10px columns: 25px from column A ends halfway through column C.
	sheet := grid.NewSheet()
	for i := 0; i < 3; i++ {
		sheet.SetColumnWidth(i, 10)
	}
	e, _ := grid.NewEngine(sheet, grid.Options{CharacterWidth: 1})

	land, _ := e.FitColumns(0, 25)
	fmt.Println("Column:", land.Index)
	fmt.Println("Offset (EMU):", land.Offset)
	// Output:
	// Column: 2
	// Offset (EMU): 47625
}

func ExampleAxis_Fit() {
	rows := grid.Axis{Name: "row", Length: func(int) float64 { return 20 }}

	land, _ := rows.Fit(0, 60)
	fmt.Println("Row:", land.Index, "Offset:", land.Offset)
	// Output:
	// Row: 2 Offset: 0
}
