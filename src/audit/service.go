package audit

import (
	"encoding/json"
	"fmt"

	"claims-processor/pkg/logger"
)

// Service stores forwarded log lines. It deliberately does not log through
// the default logger: with the ops sink attached that would feed its own
// queue.
type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

func (s *Service) ProcessLogMessage(payload []byte) error {
	var message logger.LoggerMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("malformed log message: %w", err)
	}

	entry := &LogAuditEntry{
		Service:   message.Service,
		Level:     message.Level,
		Message:   message.Message,
		Timestamp: message.Timestamp,
	}
	return s.repository.Create(entry)
}

func (s *Service) EntriesByService(service string) ([]LogAuditEntry, error) {
	return s.repository.FindByService(service)
}

func (s *Service) EntriesByLevel(level string) ([]LogAuditEntry, error) {
	return s.repository.FindByLevel(level)
}

func (s *Service) RecentEntries(limit int) ([]LogAuditEntry, error) {
	return s.repository.FindRecent(limit)
}
