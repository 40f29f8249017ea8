package relation

// PartKind identifies which modeled part type a relationship produces.
// The zero value, KindNone, means the relationship has no modeled part.
type PartKind int

const (
	KindNone PartKind = iota
	KindWorkbook
	KindWorksheet
	KindChartsheet
	KindSharedStrings
	KindStyles
	KindTheme
	KindDrawing
	KindVMLDrawing
	KindChart
	KindXMLMaps
	KindSingleXMLCells
	KindTable
	KindPictureData
	KindComments
	KindVBAProject
	KindActiveXControl
	KindActiveXBinary
	KindCalcChain
	KindPrinterSettings
	KindPivotTable
	KindPivotCacheDefinition
	KindPivotCacheRecords
	KindCustomProperties
	kindCount
)

var kindNames = [...]string{
	KindNone:                 "none",
	KindWorkbook:             "workbook",
	KindWorksheet:            "worksheet",
	KindChartsheet:           "chartsheet",
	KindSharedStrings:        "shared-strings",
	KindStyles:               "styles",
	KindTheme:                "theme",
	KindDrawing:              "drawing",
	KindVMLDrawing:           "vml-drawing",
	KindChart:                "chart",
	KindXMLMaps:              "xml-maps",
	KindSingleXMLCells:       "single-xml-cells",
	KindTable:                "table",
	KindPictureData:          "picture-data",
	KindComments:             "comments",
	KindVBAProject:           "vba-project",
	KindActiveXControl:       "activex-control",
	KindActiveXBinary:        "activex-binary",
	KindCalcChain:            "calc-chain",
	KindPrinterSettings:      "printer-settings",
	KindPivotTable:           "pivot-table",
	KindPivotCacheDefinition: "pivot-cache-definition",
	KindPivotCacheRecords:    "pivot-cache-records",
	KindCustomProperties:     "custom-properties",
}

// String returns the kebab-case name of the kind.
func (k PartKind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds other than KindNone.
func (k PartKind) Valid() bool {
	return k > KindNone && k < kindCount
}
