// Package profile extracts skills, education markers, experience level and
// domain affinities from resume text using fixed lexicons and regex heuristics.
package profile

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/course-matcher/internal/types"
)

// rawTextLimit caps the audit excerpt stored on the profile.
const rawTextLimit = 500

// topDomainCount limits how many domains make it onto the profile.
const topDomainCount = 3

// yearsPattern captures "N years of experience" style phrases.
var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:experience|exp)`)

// Extractor matches resume text against the fixed skill and domain lexicons.
// It is immutable after construction and safe for concurrent use.
type Extractor struct {
	skillPatterns []skillPattern
}

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// NewExtractor compiles the word-boundary pattern for every lexicon skill.
func NewExtractor() *Extractor {
	patterns := make([]skillPattern, 0, len(technicalSkills))
	for _, skill := range technicalSkills {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
		patterns = append(patterns, skillPattern{skill: skill, re: re})
	}
	return &Extractor{skillPatterns: patterns}
}

// ExtractSkills returns the lexicon skills present in the text.
// Matching is case-insensitive and requires word boundaries; there is no
// stemming or fuzzy matching. The result preserves lexicon declaration order
// and contains no duplicates.
func (e *Extractor) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)

	found := make([]string, 0)
	for _, sp := range e.skillPatterns {
		if sp.re.MatchString(textLower) {
			found = append(found, sp.skill)
		}
	}
	return found
}

// ExtractEducation returns education markers present in the text.
// Unlike skills, these are plain substring checks without word boundaries.
func (e *Extractor) ExtractEducation(text string) []string {
	textLower := strings.ToLower(text)

	found := make([]string, 0)
	for _, keyword := range educationMarkers {
		if strings.Contains(textLower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// ExtractExperienceLevel estimates seniority from resume text.
// Checks run in strict precedence: an explicit years-of-experience phrase
// wins, then advanced title keywords, then beginner keywords, and finally
// intermediate as the default.
func (e *Extractor) ExtractExperienceLevel(text string) types.ExperienceLevel {
	textLower := strings.ToLower(text)

	if m := yearsPattern.FindStringSubmatch(textLower); m != nil {
		years, _ := strconv.Atoi(m[1])
		switch {
		case years < 2:
			return types.LevelBeginner
		case years < 5:
			return types.LevelIntermediate
		default:
			return types.LevelAdvanced
		}
	}

	for _, word := range advancedIndicators {
		if strings.Contains(textLower, word) {
			return types.LevelAdvanced
		}
	}
	for _, word := range beginnerIndicators {
		if strings.Contains(textLower, word) {
			return types.LevelBeginner
		}
	}
	return types.LevelIntermediate
}

// IdentifyDomains scores each domain category by counting (skill, keyword)
// pairs where either string contains the other, case-insensitive. Domains
// with a zero score are omitted.
//
// The bidirectional containment is deliberately permissive and can over-match
// short entries like "ai"; that behavior is part of the scoring contract.
func (e *Extractor) IdentifyDomains(skills []string) map[string]int {
	scores := make(map[string]int)

	for _, category := range domainCategories {
		score := 0
		for _, skill := range skills {
			skillLower := strings.ToLower(skill)
			for _, keyword := range category.Keywords {
				keywordLower := strings.ToLower(keyword)
				if strings.Contains(skillLower, keywordLower) || strings.Contains(keywordLower, skillLower) {
					score++
				}
			}
		}
		if score > 0 {
			scores[category.Name] = score
		}
	}
	return scores
}

// topDomains returns up to topDomainCount domain names ordered by descending
// score, breaking ties by the category declaration order.
func topDomains(scores map[string]int) []string {
	ordered := make([]string, 0, len(scores))
	for _, category := range domainCategories {
		if _, ok := scores[category.Name]; ok {
			ordered = append(ordered, category.Name)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})

	if len(ordered) > topDomainCount {
		ordered = ordered[:topDomainCount]
	}
	return ordered
}

// Analyze performs the complete extraction over cleaned resume text and
// assembles the resulting profile. Empty or whitespace-only text is valid and
// yields a profile with no skills or domains and the default experience level.
func (e *Extractor) Analyze(text string) *types.ResumeProfile {
	skills := e.ExtractSkills(text)
	education := e.ExtractEducation(text)
	level := e.ExtractExperienceLevel(text)
	domainScores := e.IdentifyDomains(skills)

	rawText := text
	if len(rawText) > rawTextLimit {
		rawText = rawText[:rawTextLimit]
	}

	return &types.ResumeProfile{
		Skills:          skills,
		SkillCount:      len(skills),
		Education:       education,
		ExperienceLevel: level,
		Domains:         topDomains(domainScores),
		DomainScores:    domainScores,
		RawText:         rawText,
		FullText:        text,
	}
}
