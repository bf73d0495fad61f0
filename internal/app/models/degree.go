package models

// DegreeCategory groups degrees (undergraduate, graduate, doctorate)
type DegreeCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Degree is a programme an alumnus graduated from
type Degree struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`

	Category *DegreeCategory `json:"category,omitempty"`
}
