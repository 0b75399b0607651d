package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type FeedbackRequest struct {
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=5000"`
}

type FeedbackResponse struct {
	Success bool `json:"success"`
}

// SendFeedback godoc
// @Summary Send feedback
// @Description Forward a feedback message to the maintainers
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback"
// @Success 200 {object} FeedbackResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} FeedbackResponse
// @Router /feedback [post]
func (h *Handler) SendFeedback(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16<<10)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req FeedbackRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid feedback: "+err.Error())
		return
	}

	if err := h.feedback.Send(r.Context(), req.Email, req.Message); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SendFeedback"}).Error("feedback wasn't delivered")
		writeJSON(w, http.StatusBadGateway, FeedbackResponse{Success: false})
		return
	}

	writeJSON(w, http.StatusOK, FeedbackResponse{Success: true})
}
