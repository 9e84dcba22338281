package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/course-matcher/internal/catalog"
	"github.com/jonathan/course-matcher/internal/ingestion"
	"github.com/jonathan/course-matcher/internal/types"
)

// uploadResponse is the body returned by POST /upload and POST /api/recommend.
type uploadResponse struct {
	Success              bool                   `json:"success"`
	RequestID            string                 `json:"request_id"`
	Analysis             types.AnalysisSummary  `json:"analysis"`
	Recommendations      []types.Recommendation `json:"recommendations"`
	TotalRecommendations int                    `json:"total_recommendations"`
}

// handleUpload accepts a multipart resume document, extracts its text and
// returns recommendations. The upload is processed in memory and discarded.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	maxBytes := int64(s.cfg.MaxUploadBytes)
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to parse multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		err := &ErrMissingFile{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}

	text, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		log.Printf("[%s] Upload rejected: %v", requestID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	topN := 0
	if raw := r.FormValue("top_n"); raw != "" {
		topN, err = parsePositiveInt(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid top_n: "+raw)
			return
		}
	}

	log.Printf("[%s] Processing resume upload %q (%d bytes)", requestID, header.Filename, len(data))
	s.recommend(w, r, requestID, text, topN)
}

// handleRecommend serves callers that already hold plain resume text.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	text := ingestion.CleanText(req.ResumeText)
	s.recommend(w, r, requestID, text, req.TopN)
}

// recommend runs the scoring pipeline and writes the shared response shape.
func (s *Server) recommend(w http.ResponseWriter, r *http.Request, requestID, text string, topN int) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	result, err := s.engine.Recommend(ctx, text, topN)
	if err != nil {
		log.Printf("[%s] Recommendation failed: %v", requestID, err)
		s.errorResponse(w, http.StatusServiceUnavailable, "recommendation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, uploadResponse{
		Success:              true,
		RequestID:            requestID,
		Analysis:             result.Analysis,
		Recommendations:      result.Recommendations,
		TotalRecommendations: result.Total,
	})
}

// handleListCourses returns the full catalog.
func (s *Server) handleListCourses(w http.ResponseWriter, _ *http.Request) {
	cat := s.engine.Catalog()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"courses": cat.Courses(),
		"total":   cat.Len(),
	})
}

// handleGetCourse returns a single course by ID.
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	course, ok := s.engine.Catalog().ByID(id)
	if !ok {
		err := &ErrCourseNotFound{CourseID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, course)
}

// handleSearch performs a case-insensitive name search over the catalog.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing query parameter: q")
		return
	}

	limit := catalog.DefaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := parsePositiveInt(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit: "+raw)
			return
		}
		limit = parsed
	}

	results := s.engine.Catalog().Search(query, limit)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}

// handleStats returns catalog statistics.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.Catalog().Stats())
}

// handleToken issues an admin token for a correct admin password.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if !s.auth.Enabled {
		err := &ErrAuthDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	if !s.auth.VerifyAdminPassword(req.Password) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_in": s.auth.ExpirationHours * 3600,
	})
}

// handleReindex reloads the course corpus and rebuilds the index. Requires a
// valid admin bearer token.
func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	if !s.auth.Enabled {
		err := &ErrAuthDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.authorize(r); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.engine.Reindex(r.Context()); err != nil {
		log.Printf("Reindex failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "reindex failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":       true,
		"total_courses": s.engine.Catalog().Len(),
	})
}

// authorize validates the Authorization bearer token on admin requests.
func (s *Server) authorize(r *http.Request) error {
	header := r.Header.Get("Authorization")
	if header == "" {
		return &ErrUnauthorized{Reason: "missing Authorization header"}
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return &ErrUnauthorized{Reason: "malformed Authorization header"}
	}
	if err := s.jwtService.ValidateToken(token); err != nil {
		return &ErrUnauthorized{Reason: err.Error()}
	}
	return nil
}

// parsePositiveInt parses a strictly positive integer query value.
func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
