package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/joestump/stack-underflow/internal/metrics"
	"github.com/joestump/stack-underflow/internal/store"
)

// QuestionListResponse is the paginated response for GET /questions.
type QuestionListResponse = store.PaginatedResponse[store.Question]

// questionsAPIHandler provides REST handlers for question management.
type questionsAPIHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// registerQuestionRoutes registers question routes on r.
func registerQuestionRoutes(r chi.Router, s *store.Store, logger *slog.Logger) {
	h := &questionsAPIHandler{store: s, logger: logger}
	r.Get("/questions", h.List)
	r.Post("/questions", h.Create)
	r.Get("/questions/{id}", h.Get)
	r.Put("/questions/{id}", h.Replace)
	r.Delete("/questions/{id}", h.Delete)
}

// List returns one page of questions.
// GET /questions
//
// @Summary      List questions
// @Description  Returns one page of questions ordered by id. max_results defaults to 10 and may not exceed 100.
// @Tags         Questions
// @Produce      json
// @Param        offset       query     int  false  "Items to skip"  minimum(0)
// @Param        max_results  query     int  false  "Page size"      minimum(0)  maximum(100)
// @Success      200  {object}  QuestionListResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /questions [get]
func (h *questionsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := parsePagination(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	page, err := h.store.ListQuestions(p)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	h.logger.Info("returning page", "offset", page.Page.Offset, "max_results", page.Page.MaxResults)
	writeJSON(w, http.StatusOK, page)
}

// questionIDParam returns the {id} path segment percent-decoded. chi matches
// against RawPath when the request carries escapes it could not otherwise
// represent, such as %2F, and hands back the segment still escaped.
func questionIDParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return raw, nil
	}
	id, err := url.PathUnescape(raw)
	if err != nil {
		return "", store.InvalidID
	}
	return id, nil
}

// Get returns a single question by id.
// GET /questions/{id}
//
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  store.Question
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /questions/{id} [get]
func (h *questionsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := questionIDParam(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	q, err := h.store.GetQuestion(id)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Create stores a new question under a server-assigned id.
// POST /questions
//
// @Summary      Create a question
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      store.QuestionBody  true  "Question to create"
// @Success      200   {object}  store.Question
// @Failure      400   {object}  ErrorResponse
// @Router       /questions [post]
func (h *questionsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body store.QuestionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := h.store.CreateQuestion(body)
	metrics.QuestionsTotal.Inc()
	writeJSON(w, http.StatusOK, q)
}

// Replace overwrites the question stored under id, creating it if needed.
// PUT /questions/{id}
//
// @Summary      Replace a question
// @Description  Replaces title, content and tags. There is no partial update; omitted fields are cleared.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Question ID"
// @Param        body  body      store.QuestionBody  true  "Replacement question"
// @Success      200   {object}  store.Question
// @Failure      400   {object}  ErrorResponse
// @Router       /questions/{id} [put]
func (h *questionsAPIHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := questionIDParam(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	var body store.QuestionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, created, err := h.store.ReplaceQuestion(id, body)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	if created {
		metrics.QuestionsTotal.Inc()
	}
	writeJSON(w, http.StatusOK, q)
}

// Delete removes a question. Its answers are kept.
// DELETE /questions/{id}
//
// @Summary      Delete a question
// @Tags         Questions
// @Param        id   path  string  true  "Question ID"
// @Success      200  "OK"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /questions/{id} [delete]
func (h *questionsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := questionIDParam(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	if err := h.store.DeleteQuestion(id); err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	metrics.QuestionsTotal.Dec()
	w.WriteHeader(http.StatusOK)
}
