package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingID      = errors.New("model: id is required")
	ErrMissingTitle   = errors.New("model: title is required")
	ErrMissingSection = errors.New("model: task section id is required")
)

// Task is one checkable entry in the daily routine. Identity is immutable
// for the lifetime of the store; only Title and Completed change after creation.
type Task struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	SectionID     string `json:"section_id"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	Icon          string `json:"icon,omitempty"`
	Completed     bool   `json:"completed"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: task", ErrMissingID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: task %s", ErrMissingTitle, t.ID)
	}
	if strings.TrimSpace(t.SectionID) == "" {
		return fmt.Errorf("%w: task %s", ErrMissingSection, t.ID)
	}
	return nil
}

// Section groups tasks under a named heading. Sections are created at
// initialization or by explicit user action and are never deleted.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

func (s Section) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: section", ErrMissingID)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: section %s", ErrMissingTitle, s.ID)
	}
	return nil
}
