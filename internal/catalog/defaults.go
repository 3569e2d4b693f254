package catalog

// DefaultCategories returns the document formatting categories the rotor ships
// with.
func DefaultCategories() []Category {
	return []Category{
		{
			Label: "Font",
			Items: []Item{
				{Name: "Font name", Key: "reportFontName"},
				{Name: "Font size", Key: "reportFontSize"},
				{Name: "Font attributes", Key: "fontAttributeReporting"},
				{Name: "Superscripts and subscripts", Key: "reportSuperscriptsAndSubscripts"},
				{Name: "Emphasis", Key: "reportEmphasis"},
				{Name: "Highlighted (marked) text", Key: "reportHighlight"},
				{Name: "Style", Key: "reportStyle"},
				{Name: "Colors", Key: "reportColor"},
			},
		},
		{
			Label: "Document information",
			Items: []Item{
				{Name: "Notes and comments", Key: "reportComments"},
				{Name: "Bookmarks", Key: "reportBookmarks"},
				{Name: "Editor revisions", Key: "reportRevisions"},
				{Name: "Spelling errors", Key: "reportSpellingErrors"},
			},
		},
		{
			Label: "Pages and spacing",
			Items: []Item{
				{Name: "Pages", Key: "reportPage"},
				{Name: "Line numbers", Key: "reportLineNumber"},
				{Name: "Line indentation reporting", Key: "reportLineIndentation"},
				{Name: "Ignore blank lines for line indentation reporting", Key: "ignoreBlankLinesForRLI"},
				{Name: "Paragraph indentation", Key: "reportParagraphIndentation"},
				{Name: "Line spacing", Key: "reportLineSpacing"},
				{Name: "Alignment", Key: "reportAlignment"},
			},
		},
		{
			Label: "Table information",
			Items: []Item{
				{Name: "Tables", Key: "reportTables"},
				{Name: "Headers", Key: "reportTableHeaders"},
				{Name: "Cell coordinates", Key: "reportTableCellCoords"},
				{Name: "Cell borders", Key: "reportCellBorders"},
			},
		},
		{
			Label: "Elements",
			Items: []Item{
				{Name: "Headings", Key: "reportHeadings"},
				{Name: "Links", Key: "reportLinks"},
				{Name: "Graphics", Key: "reportGraphics"},
				{Name: "Lists", Key: "reportLists"},
				{Name: "Block quotes", Key: "reportBlockQuotes"},
				{Name: "Groupings", Key: "reportGroupings"},
				{Name: "Landmarks and regions", Key: "reportLandmarks"},
				{Name: "Articles", Key: "reportArticles"},
				{Name: "Frames", Key: "reportFrames"},
				{Name: "Clickable", Key: "reportClickable"},
			},
		},
	}
}

// Default returns the built-in document formatting catalog.
func Default() *Catalog {
	return MustNew(DefaultCategories())
}
