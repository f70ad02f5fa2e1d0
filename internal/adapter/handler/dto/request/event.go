package request

// Capacity binds with min=1 so a zero capacity is rejected as invalid
// rather than being conflated with a missing field.
type CreateEventRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Date     string `json:"date" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type UpdateEventRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Date     *string `json:"date" binding:"omitempty"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}

type ListEventsRequest struct {
	Start string `form:"start"`
	End   string `form:"end"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
