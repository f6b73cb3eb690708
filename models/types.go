package models

// Record types

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	WarningCount int    `json:"warning_count"`
}

// ExerciseLog is one proof photo. Date is YYYY-MM-DD in the server's calendar.
type ExerciseLog struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Date     string `json:"date"`
	ImageURL string `json:"image_url"`
	ThumbURL string `json:"thumb_url"`
}

// Response types

// StatusEntry is one user's row in the weekly report. ThumbURL and ImageURL
// are null when the user has no submission this week.
type StatusEntry struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	WeekCount    int     `json:"weekCount"`
	WarningCount int     `json:"warningCount"`
	ThumbURL     *string `json:"thumbUrl"`
	ImageURL     *string `json:"imageUrl"`
}

type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
