// Package keywords provides job-description text mining: tokenization,
// stopword filtering, frequency ranking, synonym expansion, and the
// canonical keyword groups used by the scorer and parser.
package keywords

// Canonical keyword group names. The scorer and parser accept these as
// injectable configuration; requesting any other name is a programming
// error surfaced as an explicit failure.
const (
	GroupMustHave   = "must_have"
	GroupTech       = "tech"
	GroupProcess    = "process"
	GroupLeadership = "leadership"
	GroupNPI        = "npi"
	GroupMindset    = "mindset"
	GroupLogistics  = "logistics"
)

// GroupNames lists the seven canonical groups in scoring order.
var GroupNames = []string{
	GroupMustHave,
	GroupTech,
	GroupProcess,
	GroupLeadership,
	GroupNPI,
	GroupMindset,
	GroupLogistics,
}

// Groups maps a group name to its curated phrase set. Phrases are stored
// lower-cased; all matching against them is case-insensitive.
type Groups map[string][]string

// canonicalGroups is the fixed scoring rubric. Kept as a compile-time table
// rather than runtime-mutable state so the rubric stays auditable and each
// group can be unit tested in isolation.
var canonicalGroups = Groups{
	GroupMustHave: {
		"manufacturing", "quality", "process improvement", "root cause",
		"supplier", "cross-functional", "project management", "six sigma",
		"lean", "capa", "validation", "design transfer",
	},
	GroupTech: {
		"solidworks", "autocad", "minitab", "sap", "python", "sql",
		"plc", "labview", "power bi", "tableau",
	},
	GroupProcess: {
		"iso 9001", "iso 13485", "fda", "gmp", "spc", "fmea",
		"ppap", "apqp", "8d", "dmaic",
	},
	GroupLeadership: {
		"led", "mentored", "managed", "coached", "stakeholder",
		"cross-functional team",
	},
	GroupNPI: {
		"npi", "new product introduction", "design for manufacturing",
		"dfm", "pilot build", "prototype", "ramp",
	},
	GroupMindset: {
		"continuous improvement", "problem solving", "data-driven",
		"ownership", "adaptable",
	},
	GroupLogistics: {
		"travel", "relocation", "onsite", "on-site", "shift",
	},
}

// CanonicalGroups returns the fixed seven-group rubric.
func CanonicalGroups() Groups {
	return canonicalGroups
}

// Has reports whether the table contains a group with the given name.
func (g Groups) Has(name string) bool {
	_, ok := g[name]
	return ok
}

// AllPhrases returns the union of every group's phrases as a set.
func (g Groups) AllPhrases() map[string]bool {
	union := make(map[string]bool)
	for _, phrases := range g {
		for _, phrase := range phrases {
			union[phrase] = true
		}
	}
	return union
}
