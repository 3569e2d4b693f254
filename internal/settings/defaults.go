package settings

var reportingLabels = map[string]map[int]string{
	"fontAttributeReporting": {
		0: "Off",
		1: "Speech",
		2: "Braille",
		3: "Speech and Braille",
	},
	"reportLineIndentation": {
		0: "Off",
		1: "Speech",
		2: "Tones",
		3: "Both Speech and Tones",
	},
	"reportTableHeaders": {
		0: "Off",
		1: "Rows and columns",
		2: "Rows",
		3: "Columns",
	},
	"reportCellBorders": {
		0: "Off",
		1: "Style",
		2: "Color and style",
	},
}

// DefaultSchema returns the document formatting settings edited by the
// built-in catalog.
func DefaultSchema() Schema {
	s := Schema{}
	boolean := func(key string, def bool) {
		s[key] = Definition{Validation: Boolean(), Default: Bool(def)}
	}
	integer := func(key string, min, max, def int) {
		s[key] = Definition{Validation: Integer(min, max), Default: Int(def), Labels: reportingLabels[key]}
	}

	boolean("reportFontName", false)
	boolean("reportFontSize", false)
	integer("fontAttributeReporting", 0, 3, 0)
	boolean("reportSuperscriptsAndSubscripts", false)
	boolean("reportEmphasis", false)
	boolean("reportHighlight", true)
	boolean("reportStyle", false)
	boolean("reportColor", false)

	boolean("reportComments", true)
	boolean("reportBookmarks", true)
	boolean("reportRevisions", true)
	boolean("reportSpellingErrors", true)

	boolean("reportPage", true)
	boolean("reportLineNumber", false)
	integer("reportLineIndentation", 0, 3, 0)
	boolean("ignoreBlankLinesForRLI", false)
	boolean("reportParagraphIndentation", false)
	boolean("reportLineSpacing", false)
	boolean("reportAlignment", false)

	boolean("reportTables", true)
	integer("reportTableHeaders", 0, 3, 1)
	boolean("reportTableCellCoords", true)
	integer("reportCellBorders", 0, 2, 0)

	boolean("reportHeadings", true)
	boolean("reportLinks", true)
	boolean("reportGraphics", true)
	boolean("reportLists", true)
	boolean("reportBlockQuotes", true)
	boolean("reportGroupings", true)
	boolean("reportLandmarks", true)
	boolean("reportArticles", false)
	boolean("reportFrames", true)
	boolean("reportClickable", true)
	return s
}
