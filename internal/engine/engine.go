// Package engine wires the extraction, indexing and ranking stages into the
// recommendation pipeline and owns the shared immutable index.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/jonathan/course-matcher/internal/catalog"
	"github.com/jonathan/course-matcher/internal/profile"
	"github.com/jonathan/course-matcher/internal/ranking"
	"github.com/jonathan/course-matcher/internal/types"
	"github.com/jonathan/course-matcher/internal/vectorspace"
)

// maxSkillsInSummary bounds the skill list echoed back in responses.
const maxSkillsInSummary = 20

// CourseSource loads the course corpus from its backing store (dataset file
// or database). Implementations are called at startup and on reindex.
type CourseSource interface {
	Load(ctx context.Context) ([]types.CourseRecord, error)
}

// Config holds the tunable parameters of the scoring pipeline.
type Config struct {
	MaxFeatures  int
	TopN         int
	MinimumScore float64
}

// Engine owns the frozen corpus index and serves scoring requests against
// it. The index is built exactly once before any request is served; scoring
// is a pure function of (resume text, frozen index), so concurrent requests
// share the snapshot by reference without locking. Reindex builds a complete
// replacement snapshot and swaps it atomically, so readers never observe a
// partially built index.
type Engine struct {
	cfg       Config
	extractor *profile.Extractor
	source    CourseSource
	current   atomic.Pointer[snapshot]
}

// snapshot pairs a catalog with the vector-space model built from it.
// model is nil when the corpus is empty; every read path treats that as
// "serve zero recommendations".
type snapshot struct {
	catalog *catalog.Catalog
	model   *vectorspace.Model
}

// Result is the outcome of one scoring request.
type Result struct {
	Profile         *types.ResumeProfile
	Analysis        types.AnalysisSummary
	Recommendations []types.Recommendation
	Total           int
}

// New loads the corpus from the source and builds the initial index.
func New(ctx context.Context, source CourseSource, cfg Config) (*Engine, error) {
	e := &Engine{
		cfg:       cfg,
		extractor: profile.NewExtractor(),
		source:    source,
	}
	if err := e.Reindex(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Reindex reloads the corpus and rebuilds the vector-space model into a
// fresh snapshot, then swaps it in atomically. An empty corpus is not an
// error: the engine keeps serving with zero recommendations.
func (e *Engine) Reindex(ctx context.Context) error {
	records, err := e.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load course corpus: %w", err)
	}

	cat := catalog.New(records)

	var model *vectorspace.Model
	model, err = vectorspace.Build(cat.CombinedTexts(), e.cfg.MaxFeatures)
	if err != nil {
		var empty *vectorspace.ErrEmptyCorpus
		if !errors.As(err, &empty) {
			return fmt.Errorf("failed to build vector space model: %w", err)
		}
		log.Printf("Course corpus is empty; serving zero recommendations until reindex")
		model = nil
	} else {
		log.Printf("Indexed %d courses (%d vocabulary terms)", model.NumDocs(), model.VocabularySize())
	}

	e.current.Store(&snapshot{catalog: cat, model: model})
	return nil
}

// Recommend runs the full scoring pipeline for one resume submission.
// The context bounds the request: cancellation or deadline expiry between
// stages aborts with the context error.
func (e *Engine) Recommend(ctx context.Context, resumeText string, topN int) (*Result, error) {
	snap := e.current.Load()

	prof := e.extractor.Analyze(resumeText)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Profile:  prof,
		Analysis: summarize(prof),
	}

	if snap.model == nil {
		result.Recommendations = []types.Recommendation{}
		return result, nil
	}

	query := ranking.ProjectProfile(prof, snap.model)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := ranking.Options{TopN: e.cfg.TopN, MinimumScore: e.cfg.MinimumScore}
	if topN > 0 {
		opts.TopN = topN
	}
	scores := ranking.Rank(query, prof, snap.catalog, snap.model, opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs := make([]types.Recommendation, 0, len(scores))
	for _, score := range scores {
		course, ok := snap.catalog.ByID(score.CourseID)
		if !ok {
			continue
		}
		recs = append(recs, types.Recommendation{
			CourseID:        course.CourseID,
			CourseName:      course.CourseName,
			Instructor:      course.Instructor,
			Rating:          course.CourseRating,
			Platform:        course.Platform,
			IsPaid:          course.IsPaid,
			Enrolled:        course.EnrolledCount,
			CourseURL:       course.CourseURL,
			SimilarityScore: score.FinalScore,
			MatchPercentage: score.MatchPercentage,
			MatchReasons:    ranking.MatchReasons(course, prof),
		})
	}
	result.Recommendations = recs
	result.Total = len(recs)
	return result, nil
}

// Analyze extracts a resume profile without ranking.
func (e *Engine) Analyze(resumeText string) *types.ResumeProfile {
	return e.extractor.Analyze(resumeText)
}

// Catalog returns the catalog of the current snapshot.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.current.Load().catalog
}

// summarize builds the profile excerpt included in responses.
func summarize(prof *types.ResumeProfile) types.AnalysisSummary {
	skills := prof.Skills
	if len(skills) > maxSkillsInSummary {
		skills = skills[:maxSkillsInSummary]
	}
	return types.AnalysisSummary{
		Skills:          skills,
		SkillCount:      prof.SkillCount,
		ExperienceLevel: prof.ExperienceLevel,
		Domains:         prof.Domains,
		Education:       prof.Education,
	}
}
