package parser

// Vocabulary holds the keyword tables the extractors match against. The tables
// are injected configuration data rather than hard-coded branches so they can
// be extended and tested independently of the scan logic. All entries must be
// lower case; matching is done against lower-cased text.
type Vocabulary struct {
	// Skills is the fixed skill vocabulary matched by substring containment.
	Skills []string
	// JobTitles marks a line as a probable job header.
	JobTitles []string
	// CompanySuffixes marks a line as containing a company name.
	CompanySuffixes []string
	// SectionKeywords identify an experience-like section in a context window.
	SectionKeywords []string
	// EducationKeywords identify degree and institution mentions.
	EducationKeywords []string
}

// DefaultVocabulary returns the built-in keyword tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills: []string{
			"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift",
			"react", "angular", "vue", "node.js", "django", "flask", "spring",
			"sql", "mongodb", "postgresql", "mysql", "redis",
			"aws", "azure", "gcp", "docker", "kubernetes",
			"git", "jenkins", "ci/cd", "agile", "scrum",
			"machine learning", "deep learning", "ai", "data science",
			"html", "css", "typescript", "rest api", "graphql",
			"tensorflow", "pytorch", "pandas", "numpy",
			"leadership", "communication", "problem solving", "teamwork",
		},
		JobTitles: []string{
			"engineer", "developer", "manager", "analyst", "consultant",
			"designer", "architect", "director", "lead", "senior",
			"junior", "intern", "specialist", "coordinator", "associate",
			"administrator", "officer", "executive", "supervisor", "technician",
			"scientist", "researcher", "programmer",
		},
		CompanySuffixes: []string{
			"inc.", "corp.", "llc", "ltd", "company", "technologies", "systems", "solutions",
		},
		SectionKeywords: []string{
			"experience", "employment", "work history", "career", "professional",
		},
		EducationKeywords: []string{
			"bachelor", "master", "phd", "doctorate", "associate",
			"b.s.", "b.a.", "m.s.", "m.a.", "mba", "ph.d.",
			"degree", "university", "college", "institute",
		},
	}
}
