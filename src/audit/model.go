package audit

import "time"

// LogAuditEntry is one log line drained from the ops queue into the database.
type LogAuditEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Service   string    `gorm:"size:100;index" json:"service"`
	Level     string    `gorm:"size:20;index" json:"level"`
	Message   string    `gorm:"type:text" json:"message"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (LogAuditEntry) TableName() string {
	return "log_audit_entries"
}
