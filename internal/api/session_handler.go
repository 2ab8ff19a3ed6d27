package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/practice-partner/backend/internal/domain/interview"
	"github.com/practice-partner/backend/internal/domain/questionbank"
	"github.com/practice-partner/backend/internal/id"
	"github.com/practice-partner/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartRequest struct {
	Role         string        `json:"role" validate:"required" example:"Java Developer"`
	NumQuestions questionCount `json:"num_questions" swaggertype:"integer" example:"5"`
}

type StartResponse struct {
	SessionID string `json:"session_id" example:"0b6d3c1e-6a55-4c8e-9a8e-3f1f0f4c2d11"`
	Question  string `json:"question" example:"What is the difference between JDK, JRE, and JVM?"`
	Remaining int    `json:"remaining" example:"4"`
}

type AnswerRequest struct {
	SessionID  string `json:"session_id" validate:"required" example:"0b6d3c1e-6a55-4c8e-9a8e-3f1f0f4c2d11"`
	UserAnswer string `json:"user_answer" example:"The JVM runs bytecode, the JRE bundles it with libraries, the JDK adds tools."`
}

// AnswerResponse is returned for every answer except the last.
type AnswerResponse struct {
	Verdict      string `json:"verdict" example:"Correct" enums:"Correct,Partially correct,Incorrect"`
	Feedback     string `json:"feedback"`
	Correction   string `json:"correction"`
	NextQuestion string `json:"next_question"`
	Remaining    int    `json:"remaining" example:"3"`
	Done         bool   `json:"done" example:"false"`
}

// FinalAnswerResponse is returned for the last answer of an interview.
type FinalAnswerResponse struct {
	Verdict    string                   `json:"verdict" example:"Partially correct" enums:"Correct,Partially correct,Incorrect"`
	Feedback   string                   `json:"feedback"`
	Correction string                   `json:"correction"`
	Done       bool                     `json:"done" example:"true"`
	Summary    string                   `json:"summary"`
	Log        []interview.AnswerRecord `json:"log"`
}

// questionCount accepts whatever the client sends for num_questions. Anything
// that is not a whole number (in JSON or as a numeric string) is treated as
// absent so the default applies.
type questionCount struct {
	n *int
}

func (c *questionCount) UnmarshalJSON(data []byte) error {
	c.n = nil
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil
		}
		// Out of range values only need to keep their sign for clamping.
		f = math.Max(math.Min(f, 1e6), -1e6)
		n := int(f)
		c.n = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			c.n = &n
		}
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startInterview begins a new interview.
// @Summary      Start an interview
// @Description  Creates a session with num_questions questions (clamped to 1-10, default 5) sampled from the role's bank.
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        body  body      StartRequest   true  "Role and question count"
// @Success      200   {object}  StartResponse
// @Failure      400   {object}  ErrorResponse  "missing role, unknown role or empty bank"
// @Failure      500   {object}  ErrorResponse
// @Router       /start [post]
func (h *Handler) startInterview(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Role = strings.TrimSpace(req.Role)
	if !h.validateRequest(w, &req) {
		return
	}

	count := questionbank.ClampCount(req.NumQuestions.n)
	res, err := h.interviews.Start(r.Context(), req.Role, count)
	if errors.Is(err, questionbank.ErrInvalidQuestionCount) {
		respondError(w, http.StatusBadRequest, "no questions available for role "+strconv.Quote(req.Role))
		return
	}
	if err != nil {
		h.logger.Error("failed to start interview", "error", err, "role", req.Role)
		respondError(w, http.StatusInternalServerError, "failed to start interview")
		return
	}

	respondJSON(w, http.StatusOK, StartResponse{
		SessionID: res.SessionID,
		Question:  res.Question,
		Remaining: res.Remaining,
	})
}

// submitAnswer grades the answer to the session's current question.
// @Summary      Answer the current question
// @Description  Grades the answer and returns the next question, or the summary and full log after the last one. Never fails because grading is unavailable.
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerRequest  true  "Session and answer"
// @Success      200   {object}  AnswerResponse  "non-final answer; the last answer returns FinalAnswerResponse"
// @Failure      400   {object}  ErrorResponse  "Invalid session_id"
// @Failure      500   {object}  ErrorResponse
// @Router       /answer [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	if !h.validateRequest(w, &req) {
		return
	}

	if !id.Valid(req.SessionID) {
		respondError(w, http.StatusBadRequest, "Invalid session_id")
		return
	}

	res, err := h.interviews.SubmitAnswer(r.Context(), req.SessionID, req.UserAnswer)
	if errors.Is(err, service.ErrUnknownSession) {
		respondError(w, http.StatusBadRequest, "Invalid session_id")
		return
	}
	if err != nil {
		h.logger.Error("failed to submit answer", "error", err, "session_id", req.SessionID)
		respondError(w, http.StatusInternalServerError, "failed to submit answer")
		return
	}

	if !res.Done {
		respondJSON(w, http.StatusOK, AnswerResponse{
			Verdict:      res.Verdict.String(),
			Feedback:     res.Feedback,
			Correction:   res.Correction,
			NextQuestion: res.NextQuestion,
			Remaining:    res.Remaining,
		})
		return
	}

	log := res.Log
	if log == nil {
		log = []interview.AnswerRecord{}
	}
	respondJSON(w, http.StatusOK, FinalAnswerResponse{
		Verdict:    res.Verdict.String(),
		Feedback:   res.Feedback,
		Correction: res.Correction,
		Done:       true,
		Summary:    res.Summary,
		Log:        log,
	})
}
