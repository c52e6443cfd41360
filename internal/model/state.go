package model

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State represents the current state of a chat interaction with the bot
type State struct {
	ID     string `db:"id"`
	ChatID int64  `db:"chat_id"`

	Flow  Flow      `db:"flow"`
	Steps FlowSteps `db:"steps"`

	Metadata Metadata `db:"metadata"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetFlowName returns the flow name in pretty format.
func (s *State) GetFlowName() string {
	parts := strings.Split(string(s.Flow), "_")

	var result string
	for index, part := range parts {
		if index == 0 {
			caser := cases.Title(language.English)
			result += caser.String(part)

			continue
		}

		result += " " + part
	}

	return result
}

// GetCurrentStep returns the current step in the flow
func (s *State) GetCurrentStep() FlowStep {
	if len(s.Steps) == 0 {
		return ""
	}

	return s.Steps[len(s.Steps)-1]
}

// IsFlowFinished checks if the current flow has reached its end
func (s *State) IsFlowFinished() bool {
	return s.GetCurrentStep() == EndFlowStep
}

// GetEvent determines the event that continues the current flow
func (s *State) GetEvent() Event {
	event, ok := FlowToEvent[s.Flow]
	if !ok {
		return UnknownEvent
	}

	return event
}
