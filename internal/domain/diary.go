package domain

// TaskType classifies a diary task. The requirements map is interpreted
// per type by the client; the backend stores it opaquely.
type TaskType string

const (
	TaskTypeKill     TaskType = "KILL"
	TaskTypeSkill    TaskType = "SKILL"
	TaskTypeQuest    TaskType = "QUEST"
	TaskTypeItem     TaskType = "ITEM"
	TaskTypeLocation TaskType = "LOCATION"
	TaskTypeBoss     TaskType = "BOSS"
	TaskTypeMinigame TaskType = "MINIGAME"
	TaskTypeCustom   TaskType = "CUSTOM"
)

// DiaryTask is a single task within a tier. Tasks have no identity
// outside their parent diary's tier structure.
type DiaryTask struct {
	ID           string            `json:"id"`
	Description  string            `json:"description"`
	Type         TaskType          `json:"type"`
	Requirements map[string]string `json:"requirements"`
	Hint         string            `json:"hint"`
	Order        int               `json:"order"`
}

// DiaryTier is a named, ordered group of tasks within a diary. It is
// always read and written as part of the parent diary's tier structure.
type DiaryTier struct {
	TierName          string      `json:"tierName"`
	TierColor         string      `json:"tierColor"`
	Tasks             []DiaryTask `json:"tasks"`
	RewardDescription string      `json:"rewardDescription"`
	Order             int         `json:"order"`
}

// ClanDiary is a named collection of tiered tasks. Timestamps are epoch
// milliseconds; tiers are persisted as a single JSON text column.
type ClanDiary struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	Version        string      `json:"version"`
	CreatedDate    int64       `json:"createdDate"`
	CreatedBy      string      `json:"createdBy"`
	LastModified   int64       `json:"lastModified"`
	LastModifiedBy string      `json:"lastModifiedBy"`
	Tiers          []DiaryTier `json:"tiers"`
	Active         bool        `json:"active"`
}
