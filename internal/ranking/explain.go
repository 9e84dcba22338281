package ranking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/course-matcher/internal/types"
)

// maxReasons caps the explanation list per recommendation.
const maxReasons = 3

// maxSkillsNamed caps how many matched skills a skill-overlap reason names.
const maxSkillsNamed = 5

// Thresholds for the rating and popularity reasons.
const (
	highRatingThreshold   = 4.5
	popularCourseEnrolled = 10000
)

// experienceKeywords map each level to the course-text phrases that signal a
// suitable difficulty.
var experienceKeywords = map[types.ExperienceLevel][]string{
	types.LevelBeginner:     {"beginner", "introduction", "fundamentals", "basics", "getting started"},
	types.LevelIntermediate: {"intermediate", "advanced", "deep dive", "mastering"},
	types.LevelAdvanced:     {"advanced", "expert", "mastering", "professional"},
}

// MatchReasons derives up to maxReasons human-readable justifications for
// recommending the course. Rules are evaluated in fixed priority order (skill
// overlap, domain overlap, rating, popularity, level suitability); whichever
// fire first survive the cap. When no rule fires, a single generic reason is
// returned.
func MatchReasons(course *types.CourseRecord, profile *types.ResumeProfile) []string {
	var reasons []string
	courseTextLower := strings.ToLower(course.CombinedText)

	// Skill overlap: profile skills appearing verbatim in the course text.
	var matchedSkills []string
	for _, skill := range profile.Skills {
		if strings.Contains(courseTextLower, strings.ToLower(skill)) {
			matchedSkills = append(matchedSkills, skill)
		}
	}
	if len(matchedSkills) > 0 {
		if len(matchedSkills) > maxSkillsNamed {
			matchedSkills = matchedSkills[:maxSkillsNamed]
		}
		reasons = append(reasons, "Matches your skills: "+strings.Join(matchedSkills, ", "))
	}

	// Domain overlap: domain names (underscores spaced) found in course text.
	var matchedDomains []string
	for _, domain := range profile.Domains {
		if strings.Contains(courseTextLower, strings.ReplaceAll(domain, "_", " ")) {
			matchedDomains = append(matchedDomains, titleDomain(domain))
		}
	}
	if len(matchedDomains) > 0 {
		reasons = append(reasons, "Aligns with your domain: "+strings.Join(matchedDomains, ", "))
	}

	if course.CourseRating >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%s/5)", formatRating(course.CourseRating)))
	}

	if course.EnrolledCount > popularCourseEnrolled {
		reasons = append(reasons, fmt.Sprintf("Popular course with %s students", formatCount(course.EnrolledCount)))
	}

	for _, keyword := range experienceKeywords[profile.ExperienceLevel] {
		if strings.Contains(courseTextLower, keyword) {
			reasons = append(reasons, fmt.Sprintf("Suitable for %s level", profile.ExperienceLevel))
			break
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Good match based on your profile")
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// titleDomain converts a domain identifier like "data_science" into a display
// name like "Data Science".
func titleDomain(domain string) string {
	words := strings.Split(strings.ReplaceAll(domain, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// formatRating renders a rating without trailing zeros (4.8, not 4.80).
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'g', -1, 64)
}

// formatCount renders an integer with thousands separators (50,000).
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
