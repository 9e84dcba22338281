package profile

// technicalSkills is the fixed lexicon of technical skills matched against
// resume text. Matching is case-insensitive on word boundaries; entries are
// kept lowercase. Declaration order determines the order of extracted skills.
var technicalSkills = []string{
	// Programming languages
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"go", "rust", "typescript", "scala", "r", "matlab", "sql", "html", "css",

	// Frameworks and libraries
	"react", "angular", "vue", "django", "flask", "spring", "nodejs", "express",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",

	// Data science and ML
	"machine learning", "deep learning", "nlp", "natural language processing",
	"computer vision", "data science", "data analysis", "statistics",
	"artificial intelligence", "neural networks", "ai",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "oracle", "sql server",
	"cassandra", "dynamodb", "firebase",

	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git",
	"ci/cd", "devops", "terraform", "ansible",

	// Web technologies
	"rest api", "graphql", "microservices", "web development", "frontend",
	"backend", "full stack", "responsive design",

	// Tools and platforms
	"tableau", "power bi", "excel", "jupyter", "linux", "windows", "macos",
	"agile", "scrum", "jira",

	// Other domains
	"blockchain", "cybersecurity", "iot", "mobile development", "game development",
	"embedded systems", "networking", "cloud computing",
}

// educationMarkers are matched by plain substring presence, not word boundary.
var educationMarkers = []string{
	"bachelor", "master", "phd", "mba", "degree", "diploma",
	"computer science", "engineering", "mathematics", "statistics",
	"information technology", "data science", "business administration",
}

// domainCategory pairs a domain name with the keywords that signal it.
type domainCategory struct {
	Name     string
	Keywords []string
}

// domainCategories classify extracted skills into affinity domains.
// Declaration order is the tie-break order when domain scores are equal.
var domainCategories = []domainCategory{
	{"data_science", []string{"data science", "machine learning", "deep learning", "ai",
		"statistics", "data analysis", "analytics"}},
	{"web_development", []string{"web development", "frontend", "backend", "full stack",
		"html", "css", "javascript", "react", "angular"}},
	{"mobile_development", []string{"mobile", "android", "ios", "swift", "kotlin", "react native"}},
	{"cloud_computing", []string{"aws", "azure", "gcp", "cloud", "devops", "docker", "kubernetes"}},
	{"database", []string{"database", "sql", "mysql", "postgresql", "mongodb", "data modeling"}},
	{"cybersecurity", []string{"security", "cybersecurity", "encryption", "penetration testing"}},
	{"nlp", []string{"nlp", "natural language processing", "text mining", "linguistics"}},
}

// Seniority keyword lists for the experience-level fallback checks.
var (
	advancedIndicators = []string{"senior", "lead", "principal", "architect"}
	beginnerIndicators = []string{"junior", "intern", "entry", "fresher"}
)
