package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/course-matcher/internal/catalog"
	"github.com/jonathan/course-matcher/internal/types"
	"github.com/jonathan/course-matcher/internal/vectorspace"
)

// Default ranking parameters.
const (
	DefaultTopN         = 10
	DefaultMinimumScore = 0.1
)

// Boost weights applied additively to the raw cosine similarity.
const (
	ratingBoostWeight     = 0.1
	popularityBoostWeight = 0.1
	freeForBeginnerBoost  = 0.05
)

// Options control ranking behavior. The zero value selects the defaults.
type Options struct {
	TopN         int
	MinimumScore float64
}

func (o Options) normalized() Options {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.MinimumScore == 0 {
		o.MinimumScore = DefaultMinimumScore
	}
	return o
}

// Rank scores every indexed course against the query vector and returns the
// surviving scores in descending order of boosted score.
//
// Boosts are additive on the raw similarity, in order: rating/5 scaled by
// ratingBoostWeight, popularity scaled by popularityBoostWeight, and a flat
// freeForBeginnerBoost when a beginner profile meets a free course. Courses
// whose boosted score falls below MinimumScore are dropped before the list
// is truncated to TopN, so fewer than TopN results (including zero) is a
// valid outcome. Exact ties keep corpus order, first loaded ranking first.
func Rank(query map[string]float64, profile *types.ResumeProfile, cat *catalog.Catalog, model *vectorspace.Model, opts Options) []types.CourseScore {
	opts = opts.normalized()

	scores := make([]types.CourseScore, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		course := cat.Course(i)
		similarity := vectorspace.CosineSimilarity(query, model.DocVector(i))

		final := similarity
		final += (course.CourseRating / 5.0) * ratingBoostWeight
		final += course.PopularityScore * popularityBoostWeight
		if profile.ExperienceLevel == types.LevelBeginner && course.IsPaid == types.PricingFree {
			final += freeForBeginnerBoost
		}

		// The threshold applies to the boosted score: rating and popularity
		// alone may lift a course with zero text similarity past it.
		if final < opts.MinimumScore {
			continue
		}

		scores = append(scores, types.CourseScore{
			CourseID:        course.CourseID,
			SimilarityScore: similarity,
			FinalScore:      final,
			MatchPercentage: MatchPercentage(final),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].FinalScore > scores[j].FinalScore
	})

	if len(scores) > opts.TopN {
		scores = scores[:opts.TopN]
	}
	return scores
}

// MatchPercentage converts a boosted score into a display percentage.
// Scores above 1.0 saturate at 100 but remain preserved in FinalScore.
func MatchPercentage(finalScore float64) int {
	pct := int(math.Floor(finalScore * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
