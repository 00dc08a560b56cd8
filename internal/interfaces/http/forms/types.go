package forms

import (
	"time"

	formsdomain "github.com/stkhm/form-review-services/api/internal/forms/domain"
)

type submitRequest struct {
	FormData map[string]any `json:"formData"`
}

type feedbackRequest struct {
	Score    string `json:"score"`
	Bonus    string `json:"bonus"`
	Comments string `json:"comments"`
}

type feedbackResponse struct {
	Score    string `json:"score"`
	Bonus    string `json:"bonus"`
	Comments string `json:"comments"`
}

type formResponse struct {
	ID           string            `json:"id"`
	UserID       string            `json:"userId"`
	UserFullName string            `json:"userFullName"`
	Date         time.Time         `json:"date"`
	FormData     map[string]any    `json:"formData"`
	Feedback     *feedbackResponse `json:"feedback"`
}

func formDomainToResponse(form formsdomain.Form) formResponse {
	var feedback *feedbackResponse
	if form.Feedback != nil {
		feedback = &feedbackResponse{
			Score:    form.Feedback.Score,
			Bonus:    form.Feedback.Bonus,
			Comments: form.Feedback.Comments,
		}
	}

	return formResponse{
		ID:           form.ID,
		UserID:       form.OwnerID,
		UserFullName: form.OwnerFullName,
		Date:         form.SubmittedAt,
		FormData:     form.FormData,
		Feedback:     feedback,
	}
}

func formsDomainToResponse(forms []formsdomain.Form) []formResponse {
	items := make([]formResponse, 0, len(forms))
	for _, form := range forms {
		items = append(items, formDomainToResponse(form))
	}
	return items
}
