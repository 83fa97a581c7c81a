package domain

// UserProgress links a diary task to a member's completion state.
// Reserved surface: the schema is migrated and cascade-deleted with its
// diary, but no controller exercises it yet.
type UserProgress struct {
	ID            int64  `json:"id"`
	DiaryID       string `json:"diaryId"`
	RSN           string `json:"rsn"`
	TaskID        string `json:"taskId"`
	Completed     bool   `json:"completed"`
	CompletedDate *int64 `json:"completedDate,omitempty"`
}
