package indexer

// sqlite models

type Registration struct {
	Id        uint64 `gorm:"primaryKey" json:"id"`
	Type      uint64 `json:"type"`
	Creator   string `json:"creator"`
	Timestamp uint64 `json:"timestamp"`
}

type Approval struct {
	Id        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Proposal  uint64 `json:"proposal"`
	Type      uint64 `json:"type"`
	Timestamp uint64 `json:"timestamp"`
}

type Execution struct {
	Id        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Proposal  uint64 `json:"proposal"`
	Type      uint64 `json:"type"`
	Executor  string `json:"executor"`
	Success   bool   `json:"success"`
	Timestamp uint64 `json:"timestamp"`
}

type BatchRun struct {
	Id         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Processed  uint64 `json:"processed"`
	Successful uint64 `json:"successful"`
	Failed     uint64 `json:"failed"`
	Timestamp  uint64 `json:"timestamp"`
}
