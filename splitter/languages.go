package splitter

// defaultSeparators is the generic recursive strategy: paragraphs,
// lines, sentence ends, words, then raw characters.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// languageSeparators maps a normalized file extension to a
// structure-aware separator list. Syntactic boundaries come first so
// chunks prefer to break between functions, classes, and sections
// before falling back to blank lines, lines, and characters.
var languageSeparators = map[string][]string{
	".py": {
		"\nclass ", "\ndef ", "\n\tdef ",
		"\n\n", "\n", " ", "",
	},
	".go": {
		"\nfunc ", "\ntype ", "\nconst ", "\nvar ",
		"\nif ", "\nfor ", "\nswitch ", "\ncase ",
		"\n\n", "\n", " ", "",
	},
	".js": {
		"\nfunction ", "\nconst ", "\nlet ", "\nvar ", "\nclass ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ", "\ndefault ",
		"\n\n", "\n", " ", "",
	},
	".java": {
		"\nclass ", "\npublic ", "\nprotected ", "\nprivate ", "\nstatic ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ",
		"\n\n", "\n", " ", "",
	},
	".md": {
		"\n# ", "\n## ", "\n### ", "\n#### ", "\n##### ", "\n###### ",
		"```\n\n", "\n\n***\n\n", "\n\n---\n\n", "\n\n___\n\n",
		"\n\n", "\n", " ", "",
	},
	".tex": {
		"\n\\chapter{", "\n\\section{", "\n\\subsection{", "\n\\subsubsection{",
		"\n\\begin{enumerate}", "\n\\begin{itemize}", "\n\\begin{description}",
		"\n\\begin{list}", "\n\\begin{quote}", "\n\\begin{verbatim}",
		"\n\n", "\n", " ", "",
	},
	".html": {
		"<body", "<div", "<p", "<br", "<li",
		"<h1", "<h2", "<h3", "<h4", "<h5", "<h6",
		"<span", "<table", "<tr", "<td", "<th", "<ul", "<ol",
		"<header", "<footer", "<nav", "<head", "<style", "<script", "<meta", "<title",
		"",
	},
}

func init() {
	// Extension families sharing a separator table.
	languageSeparators[".ts"] = languageSeparators[".js"]
	languageSeparators[".c"] = languageSeparators[".go"]
	languageSeparators[".h"] = languageSeparators[".go"]
	languageSeparators[".cpp"] = languageSeparators[".go"]
	languageSeparators[".hpp"] = languageSeparators[".go"]
}

// separatorsForType returns the separator list for a normalized file
// extension, falling back to the generic recursive strategy.
func separatorsForType(fileType string) []string {
	if seps, ok := languageSeparators[fileType]; ok {
		return seps
	}
	return defaultSeparators
}
