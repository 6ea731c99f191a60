package keywords

// Synonyms maps common JD terms to equivalent phrasings a candidate's
// material may use instead. Static by design: a runtime-mutable table would
// make ranking output depend on session history.
var Synonyms = map[string][]string{
	"lean":          {"kaizen", "continuous improvement", "lean manufacturing"},
	"six sigma":     {"dmaic", "green belt", "black belt"},
	"cad":           {"solidworks", "autocad", "creo"},
	"quality":       {"qa", "quality assurance", "quality engineering"},
	"statistics":    {"minitab", "spc", "statistical analysis"},
	"automation":    {"plc", "labview", "scripting"},
	"analytics":     {"power bi", "tableau", "sql"},
	"npi":           {"new product introduction", "product launch"},
	"manufacturing": {"production", "fabrication", "assembly"},
	"agile":         {"scrum", "kanban", "sprint"},
}

// DefaultSynonyms returns the static synonym table.
func DefaultSynonyms() map[string][]string {
	return Synonyms
}
