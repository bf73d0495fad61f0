package dto

import "github.com/alumlink/portal/internal/app/models"

// DegreeResponse represents a degree with its category name
type DegreeResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// FromDegree converts a Degree model to its response form
func FromDegree(degree *models.Degree) DegreeResponse {
	resp := DegreeResponse{
		ID:   degree.ID,
		Name: degree.Name,
	}
	if degree.Category != nil {
		resp.Category = degree.Category.Name
	}
	return resp
}
