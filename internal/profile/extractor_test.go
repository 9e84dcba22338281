package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-matcher/internal/types"
)

func TestExtractSkills_WordBoundaries(t *testing.T) {
	e := NewExtractor()

	skills := e.ExtractSkills("Experienced in Python and JavaScript development")
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "javascript")

	// "java" must not fire inside "javascript".
	assert.NotContains(t, skills, "java")
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	e := NewExtractor()

	skills := e.ExtractSkills("PYTHON, Docker and KuBeRnEtEs")
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "kubernetes")
}

func TestExtractSkills_LexiconOrderAndNoDuplicates(t *testing.T) {
	e := NewExtractor()

	// Mentioning a skill twice yields one entry, and output follows lexicon
	// order regardless of mention order.
	skills := e.ExtractSkills("docker docker python")
	assert.Equal(t, []string{"python", "docker"}, skills)
}

func TestExtractSkills_MultiWordPhrases(t *testing.T) {
	e := NewExtractor()

	skills := e.ExtractSkills("worked on machine learning and natural language processing (NLP)")
	assert.Contains(t, skills, "machine learning")
	assert.Contains(t, skills, "natural language processing")
	assert.Contains(t, skills, "nlp")
}

func TestExtractSkills_EmptyText(t *testing.T) {
	e := NewExtractor()

	skills := e.ExtractSkills("")
	assert.Empty(t, skills)
	assert.NotNil(t, skills)
}

func TestExtractEducation_SubstringMatch(t *testing.T) {
	e := NewExtractor()

	edu := e.ExtractEducation("Bachelors degree in Computer Science")
	assert.Contains(t, edu, "bachelor")
	assert.Contains(t, edu, "degree")
	assert.Contains(t, edu, "computer science")
}

func TestExtractExperienceLevel_YearsBuckets(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, types.LevelBeginner, e.ExtractExperienceLevel("1 year of experience"))
	assert.Equal(t, types.LevelIntermediate, e.ExtractExperienceLevel("3 years of experience"))
	assert.Equal(t, types.LevelIntermediate, e.ExtractExperienceLevel("4 yrs experience"))
	assert.Equal(t, types.LevelAdvanced, e.ExtractExperienceLevel("10+ years of experience"))
	assert.Equal(t, types.LevelAdvanced, e.ExtractExperienceLevel("5 years experience"))
}

func TestExtractExperienceLevel_YearsBeatKeywords(t *testing.T) {
	e := NewExtractor()

	// An explicit years phrase wins even when a senior title is present.
	level := e.ExtractExperienceLevel("Senior engineer with 1 year of experience")
	assert.Equal(t, types.LevelBeginner, level)
}

func TestExtractExperienceLevel_KeywordFallbacks(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, types.LevelAdvanced, e.ExtractExperienceLevel("Principal architect at Acme"))
	assert.Equal(t, types.LevelBeginner, e.ExtractExperienceLevel("Software intern at Acme"))
	assert.Equal(t, types.LevelIntermediate, e.ExtractExperienceLevel("Software engineer at Acme"))
}

func TestExtractExperienceLevel_AdvancedBeatsBeginner(t *testing.T) {
	e := NewExtractor()

	// When both keyword classes appear, advanced wins.
	level := e.ExtractExperienceLevel("senior engineer, previously intern")
	assert.Equal(t, types.LevelAdvanced, level)
}

func TestIdentifyDomains_BidirectionalContainment(t *testing.T) {
	e := NewExtractor()

	scores := e.IdentifyDomains([]string{"machine learning", "aws", "docker"})

	assert.Greater(t, scores["data_science"], 0)
	assert.GreaterOrEqual(t, scores["cloud_computing"], 2)

	// Zero-score domains are omitted entirely.
	_, ok := scores["cybersecurity"]
	assert.False(t, ok)
}

func TestIdentifyDomains_ShortSkillOverMatch(t *testing.T) {
	e := NewExtractor()

	// The single-letter skill "r" is contained in many keywords; the
	// permissive containment keeps those matches.
	scores := e.IdentifyDomains([]string{"r"})
	assert.GreaterOrEqual(t, scores["web_development"], 3)
	assert.GreaterOrEqual(t, scores["data_science"], 2)
}

func TestAnalyze_FullProfile(t *testing.T) {
	e := NewExtractor()

	text := "Senior data scientist with 7 years of experience in Python, " +
		"machine learning and SQL. Masters degree in Statistics."
	prof := e.Analyze(text)
	require.NotNil(t, prof)

	assert.Equal(t, types.LevelAdvanced, prof.ExperienceLevel)
	assert.Contains(t, prof.Skills, "python")
	assert.Contains(t, prof.Skills, "machine learning")
	assert.Contains(t, prof.Skills, "sql")
	assert.Equal(t, len(prof.Skills), prof.SkillCount)
	assert.Contains(t, prof.Education, "master")
	assert.Contains(t, prof.Domains, "data_science")
	assert.LessOrEqual(t, len(prof.Domains), 3)
	assert.Equal(t, text, prof.FullText)
}

func TestAnalyze_EmptyText(t *testing.T) {
	e := NewExtractor()

	prof := e.Analyze("")
	require.NotNil(t, prof)
	assert.Empty(t, prof.Skills)
	assert.Zero(t, prof.SkillCount)
	assert.Empty(t, prof.Domains)
	assert.Equal(t, types.LevelIntermediate, prof.ExperienceLevel)
}

func TestAnalyze_RawTextTruncated(t *testing.T) {
	e := NewExtractor()

	long := make([]byte, 1200)
	for i := range long {
		long[i] = 'a'
	}
	prof := e.Analyze(string(long))
	assert.Len(t, prof.RawText, rawTextLimit)
	assert.Len(t, prof.FullText, 1200)
}

func TestTopDomains_TieBreakByDeclarationOrder(t *testing.T) {
	scores := map[string]int{
		"web_development": 2,
		"data_science":    2,
		"database":        2,
		"nlp":             2,
	}

	top := topDomains(scores)
	require.Len(t, top, 3)
	// Equal scores keep category declaration order.
	assert.Equal(t, []string{"data_science", "web_development", "database"}, top)
}
