package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joestump/stack-underflow/internal/metrics"
	"github.com/joestump/stack-underflow/internal/store"
)

// AnswerListResponse is the paginated response for GET /questions/{id}/answers.
type AnswerListResponse = store.PaginatedResponse[store.Answer]

type answersAPIHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func registerAnswerRoutes(r chi.Router, s *store.Store, logger *slog.Logger) {
	h := &answersAPIHandler{store: s, logger: logger}
	r.Post("/questions/{id}/answers", h.Create)
	r.Get("/questions/{id}/answers", h.List)
}

// Create attaches an answer to an existing question.
// POST /questions/{id}/answers
//
// @Summary      Answer a question
// @Description  The body is either a JSON string holding the answer text or an object with a content field.
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Question ID"
// @Param        body  body      store.AnswerBody  true  "Answer content"
// @Success      200   {object}  store.Answer
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /questions/{id}/answers [post]
func (h *answersAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := questionIDParam(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	content, err := decodeAnswerContent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.store.CreateAnswer(id, content)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	metrics.AnswersCreatedTotal.Inc()
	writeJSON(w, http.StatusOK, answer)
}

// List returns one page of the answers attached to a question.
// GET /questions/{id}/answers
//
// @Summary      List answers
// @Tags         Answers
// @Produce      json
// @Param        id           path      string  true   "Question ID"
// @Param        offset       query     int     false  "Items to skip"  minimum(0)
// @Param        max_results  query     int     false  "Page size"      minimum(0)  maximum(100)
// @Success      200  {object}  AnswerListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /questions/{id}/answers [get]
func (h *answersAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := questionIDParam(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	p, err := parsePagination(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	page, err := h.store.ListAnswers(id, p)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// decodeAnswerContent accepts a bare JSON string or an AnswerBody object.
func decodeAnswerContent(r *http.Request) (string, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errors.New("empty answer body")
	}

	switch raw[0] {
	case '"':
		var content string
		err := json.Unmarshal(raw, &content)
		return content, err
	case '{':
		var body store.AnswerBody
		err := json.Unmarshal(raw, &body)
		return body.Content, err
	default:
		return "", errors.New("answer body must be a string or an object")
	}
}
