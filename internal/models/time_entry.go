package models

import (
	"fmt"
	"strings"
	"time"
)

// EventKind тип отметки: приход или уход
type EventKind string

const (
	EventIn  EventKind = "IN"
	EventOut EventKind = "OUT"
)

func ParseEventKind(s string) (EventKind, error) {
	switch kind := EventKind(strings.ToUpper(strings.TrimSpace(s))); kind {
	case EventIn, EventOut:
		return kind, nil
	default:
		return "", fmt.Errorf("неизвестный тип отметки %q, используйте IN или OUT", s)
	}
}

func (k EventKind) String() string {
	return string(k)
}

type TimeEntry struct {
	ID        uint      `gorm:"column:time_entry_id;primaryKey;autoIncrement" json:"id"`
	WorkDayID uint      `gorm:"column:workday_id;not null;index" json:"workday_id"`
	EventTime time.Time `gorm:"column:event_time;type:text;not null;serializer:localtime" json:"event_time"`
	EventType EventKind `gorm:"column:event_type;type:text;not null" json:"event_type"`
	Source    *string   `gorm:"column:source" json:"source"`
}

func (TimeEntry) TableName() string {
	return "TimeEntries"
}

func (te *TimeEntry) SourceName() string {
	return StringValue(te.Source)
}

// FormatTime время отметки в формате YYYY-MM-DD HH:MM:SS
func (te *TimeEntry) FormatTime() string {
	return te.EventTime.Format(TimestampLayout)
}
