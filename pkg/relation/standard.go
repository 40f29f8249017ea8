package relation

// Relationship type URI namespaces.
const (
	nsOfficeRel = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	nsMSRel     = "http://schemas.microsoft.com/office/2006/relationships/"
)

// Shared relationship types that several descriptors compete for.
const (
	RelOfficeDocument = nsOfficeRel + "officeDocument"
	RelImage          = nsOfficeRel + "image"
)

// Workbook variants. They share RelOfficeDocument; the plain workbook is
// registered first and wins the lookup.
var (
	Workbook = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml",
		RelationshipType: RelOfficeDocument,
		DefaultName:      "/xl/workbook.xml",
		Kind:             KindWorkbook,
	}
	MacroWorkbook = Descriptor{
		ContentType:      "application/vnd.ms-excel.sheet.macroEnabled.main+xml",
		RelationshipType: RelOfficeDocument,
		DefaultName:      "/xl/workbook.xml",
		Kind:             KindWorkbook,
	}
	TemplateWorkbook = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.template.main+xml",
		RelationshipType: RelOfficeDocument,
		DefaultName:      "/xl/workbook.xml",
		Kind:             KindWorkbook,
	}
	MacroTemplateWorkbook = Descriptor{
		ContentType:      "application/vnd.ms-excel.template.macroEnabled.main+xml",
		RelationshipType: RelOfficeDocument,
		DefaultName:      "/xl/workbook.xml",
		Kind:             KindWorkbook,
	}
	MacroAddinWorkbook = Descriptor{
		ContentType:      "application/vnd.ms-excel.addin.macroEnabled.main+xml",
		RelationshipType: RelOfficeDocument,
		DefaultName:      "/xl/workbook.xml",
		Kind:             KindWorkbook,
	}
)

// Sheet-level parts.
var (
	Worksheet = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml",
		RelationshipType: nsOfficeRel + "worksheet",
		DefaultName:      "/xl/worksheets/sheet#.xml",
		Kind:             KindWorksheet,
	}
	Chartsheet = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.chartsheet+xml",
		RelationshipType: nsOfficeRel + "chartsheet",
		DefaultName:      "/xl/chartsheets/sheet#.xml",
		Kind:             KindChartsheet,
	}
	SharedStrings = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml",
		RelationshipType: nsOfficeRel + "sharedStrings",
		DefaultName:      "/xl/sharedStrings.xml",
		Kind:             KindSharedStrings,
	}
	Styles = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml",
		RelationshipType: nsOfficeRel + "styles",
		DefaultName:      "/xl/styles.xml",
		Kind:             KindStyles,
	}
	Theme = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.theme+xml",
		RelationshipType: nsOfficeRel + "theme",
		DefaultName:      "/xl/theme/theme#.xml",
		Kind:             KindTheme,
	}
	Drawings = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.drawing+xml",
		RelationshipType: nsOfficeRel + "drawing",
		DefaultName:      "/xl/drawings/drawing#.xml",
		Kind:             KindDrawing,
	}
	VMLDrawings = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.vmlDrawing",
		RelationshipType: nsOfficeRel + "vmlDrawing",
		DefaultName:      "/xl/drawings/vmlDrawing#.vml",
		Kind:             KindVMLDrawing,
	}
	Chart = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.drawingml.chart+xml",
		RelationshipType: nsOfficeRel + "chart",
		DefaultName:      "/xl/charts/chart#.xml",
		Kind:             KindChart,
	}
	CustomXMLMappings = Descriptor{
		ContentType:      "application/xml",
		RelationshipType: nsOfficeRel + "xmlMaps",
		DefaultName:      "/xl/xmlMaps.xml",
		Kind:             KindXMLMaps,
	}
	SingleXMLCells = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.tableSingleCells+xml",
		RelationshipType: nsOfficeRel + "tableSingleCells",
		DefaultName:      "/xl/tables/tableSingleCells#.xml",
		Kind:             KindSingleXMLCells,
	}
	Table = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.table+xml",
		RelationshipType: nsOfficeRel + "table",
		DefaultName:      "/xl/tables/table#.xml",
		Kind:             KindTable,
	}
	SheetComments = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.comments+xml",
		RelationshipType: nsOfficeRel + "comments",
		DefaultName:      "/xl/comments#.xml",
		Kind:             KindComments,
	}
	CalcChain = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.calcChain+xml",
		RelationshipType: nsOfficeRel + "calcChain",
		DefaultName:      "/xl/calcChain.xml",
		Kind:             KindCalcChain,
	}
	PrinterSettings = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.printerSettings",
		RelationshipType: nsOfficeRel + "printerSettings",
		DefaultName:      "/xl/printerSettings/printerSettings#.bin",
		Kind:             KindPrinterSettings,
	}
	PivotTable = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.pivotTable+xml",
		RelationshipType: nsOfficeRel + "pivotTable",
		DefaultName:      "/xl/pivotTables/pivotTable#.xml",
		Kind:             KindPivotTable,
	}
	PivotCacheDefinition = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.pivotCacheDefinition+xml",
		RelationshipType: nsOfficeRel + "pivotCacheDefinition",
		DefaultName:      "/xl/pivotCache/pivotCacheDefinition#.xml",
		Kind:             KindPivotCacheDefinition,
	}
	PivotCacheRecords = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.pivotCacheRecords+xml",
		RelationshipType: nsOfficeRel + "pivotCacheRecords",
		DefaultName:      "/xl/pivotCache/pivotCacheRecords#.xml",
		Kind:             KindPivotCacheRecords,
	}
	CustomProperties = Descriptor{
		ContentType:      "application/vnd.openxmlformats-officedocument.spreadsheetml.customProperty",
		RelationshipType: nsOfficeRel + "customProperty",
		DefaultName:      "/xl/customProperty#.bin",
		Kind:             KindCustomProperties,
	}
)

// Images. The generic descriptor has no kind and is never registered; the
// format-specific ones share RelImage, so the first (EMF) is what Lookup
// returns for any image relationship.
var (
	Images = Descriptor{
		RelationshipType: RelImage,
	}
	ImageEMF  = imageDescriptor("image/x-emf", "emf")
	ImageWMF  = imageDescriptor("image/x-wmf", "wmf")
	ImagePICT = imageDescriptor("image/pict", "pict")
	ImageJPEG = imageDescriptor("image/jpeg", "jpeg")
	ImagePNG  = imageDescriptor("image/png", "png")
	ImageDIB  = imageDescriptor("image/dib", "dib")
	ImageGIF  = imageDescriptor("image/gif", "gif")
	ImageTIFF = imageDescriptor("image/tiff", "tiff")
	ImageEPS  = imageDescriptor("image/x-eps", "eps")
	ImageBMP  = imageDescriptor("image/x-ms-bmp", "bmp")
	ImageWPG  = imageDescriptor("image/x-wpg", "wpg")
)

func imageDescriptor(contentType, ext string) Descriptor {
	return Descriptor{
		ContentType:      contentType,
		RelationshipType: RelImage,
		DefaultName:      "/xl/media/image#." + ext,
		Kind:             KindPictureData,
	}
}

// Relationships without a modeled part. They are listed so callers can
// classify them, but Register drops them.
var (
	SheetHyperlinks = Descriptor{RelationshipType: nsOfficeRel + "hyperlink"}
	OLEEmbeddings   = Descriptor{RelationshipType: nsOfficeRel + "oleObject"}
	PackEmbeddings  = Descriptor{RelationshipType: nsOfficeRel + "package"}
)

// Macro and control parts.
var (
	VBAMacros = Descriptor{
		ContentType:      "application/vnd.ms-office.vbaProject",
		RelationshipType: nsMSRel + "vbaProject",
		DefaultName:      "/xl/vbaProject.bin",
		Kind:             KindVBAProject,
	}
	ActiveXControls = Descriptor{
		ContentType:      "application/vnd.ms-office.activeX+xml",
		RelationshipType: nsOfficeRel + "control",
		DefaultName:      "/xl/activeX/activeX#.xml",
		Kind:             KindActiveXControl,
	}
	ActiveXBins = Descriptor{
		ContentType:      "application/vnd.ms-office.activeX",
		RelationshipType: nsMSRel + "activeXControlBinary",
		DefaultName:      "/xl/activeX/activeX#.bin",
		Kind:             KindActiveXBinary,
	}
)

// All lists every known descriptor in registration order.
var All = []Descriptor{
	Workbook,
	MacroWorkbook,
	TemplateWorkbook,
	MacroTemplateWorkbook,
	MacroAddinWorkbook,
	Worksheet,
	Chartsheet,
	SharedStrings,
	Styles,
	Drawings,
	VMLDrawings,
	Chart,
	CustomXMLMappings,
	SingleXMLCells,
	Table,
	Images,
	ImageEMF,
	ImageWMF,
	ImagePICT,
	ImageJPEG,
	ImagePNG,
	ImageDIB,
	ImageGIF,
	ImageTIFF,
	ImageEPS,
	ImageBMP,
	ImageWPG,
	SheetComments,
	SheetHyperlinks,
	OLEEmbeddings,
	PackEmbeddings,
	VBAMacros,
	ActiveXControls,
	ActiveXBins,
	Theme,
	CalcChain,
	PrinterSettings,
	PivotTable,
	PivotCacheDefinition,
	PivotCacheRecords,
	CustomProperties,
}
