package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mockmate/interview/internal/middleware"
	"mockmate/interview/internal/models"
	"mockmate/interview/internal/session"
	"mockmate/interview/internal/summary"
	"mockmate/interview/internal/utils"
)

// SessionHandler forwards the client's interview intents into the session
// manager and renders the resulting state.
type SessionHandler struct {
	manager   *session.Manager
	evalDelay time.Duration
	logger    *zap.Logger
}

func NewSessionHandler(manager *session.Manager, evalDelay time.Duration, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		manager:   manager,
		evalDelay: evalDelay,
		logger:    logger,
	}
}

// StartHandler creates a new session. A session in flight is discarded:
// starting over is the restart intent.
func (h *SessionHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartSessionRequest](r)

	user := models.User{Name: req.Name, Role: req.Role, Domain: req.Domain}
	config := models.InterviewConfig{
		Role:          req.Role,
		Domain:        req.Domain,
		Mode:          req.Mode,
		QuestionCount: req.QuestionCount,
	}

	s, err := h.manager.Start(user, config)
	if err != nil {
		if errors.Is(err, session.ErrNoQuestions) {
			utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "unknown_role_mode",
				Message: "No questions available for the requested role and mode",
			})
			return
		}
		h.logger.Error("failed to start session", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to start session",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, h.view(s))
}

// GetHandler returns the current session state.
func (h *SessionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.Current()
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, h.view(s))
}

// SubmitAnswerHandler evaluates the submitted text against the current
// question. The configured delay runs first and has no cancellation path;
// clients are expected to block resubmission while it is pending.
func (h *SessionHandler) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	if h.evalDelay > 0 {
		time.Sleep(h.evalDelay)
	}

	s, err := h.manager.SubmitAnswer(req.Text)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, h.view(s))
}

// RetryHandler clears the current question's answer so it can be retried.
func (h *SessionHandler) RetryHandler(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.RetryQuestion()
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, h.view(s))
}

// NextHandler advances to the next question, or completes the session when
// invoked at the last one. Advancing without an answer is a skip.
func (h *SessionHandler) NextHandler(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.AdvanceQuestion()
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, h.view(s))
}

// DeleteHandler abandons the current session.
func (h *SessionHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	h.manager.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// ExportHandler returns the flat summary record for a completed session.
func (h *SessionHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	export, err := h.manager.Export()
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, export)
}

func (h *SessionHandler) view(s *models.InterviewSession) models.SessionView {
	view := models.NewSessionView(s)
	if s.FinalScore != nil {
		view.ScoreLabel = summary.ScoreLabel(*s.FinalScore)
	}
	return view
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "no_session",
			Message: "No active interview session",
		})
	case errors.Is(err, session.ErrSessionCompleted):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "session_completed",
			Message: "Session is completed and read-only",
		})
	case errors.Is(err, session.ErrNotCompleted):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "not_completed",
			Message: "Session has not completed yet",
		})
	case errors.Is(err, session.ErrEmptyAnswer):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "empty_answer",
			Message: "Answer text must not be empty",
		})
	default:
		h.logger.Error("session intent failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Session operation failed",
		})
	}
}
