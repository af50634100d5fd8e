package domain

import (
	"encoding/json"
	"time"
)

// ProblemType selects the evaluation model of a problem. Immutable after
// creation: judge info of one type is meaningless under another.
type ProblemType string

const (
	ProblemTypeTraditional  ProblemType = "TRADITIONAL"
	ProblemTypeInteraction  ProblemType = "INTERACTION"
	ProblemTypeSubmitAnswer ProblemType = "SUBMIT_ANSWER"
)

func (t ProblemType) String() string { return string(t) }

func (t ProblemType) IsValid() bool {
	switch t {
	case ProblemTypeTraditional, ProblemTypeInteraction, ProblemTypeSubmitAnswer:
		return true
	}
	return false
}

// Problem is the root entity of the problem-management core.
//
// Locales is the authoritative list of locales for which title and content
// rows exist in localized storage; every statement mutation keeps the two in
// lockstep inside one transaction.
type Problem struct {
	ID int64

	// DisplayID is the optional human-facing number. Unique across all
	// problems when non-nil; nil for freshly created problems.
	DisplayID *int

	Type     ProblemType
	IsPublic bool

	// PublicTime records when the problem was first made public. Nil until
	// the first SetPublic(true).
	PublicTime *time.Time

	OwnerID int64
	Locales []string

	SubmissionCount         int64
	AcceptedSubmissionCount int64
}

// ProblemFilter narrows problem listing. Nil/zero fields mean "no
// filter"; Limit 0 disables pagination.
type ProblemFilter struct {
	OwnerID    *int64
	Type       *ProblemType
	PublicOnly bool
	Limit      uint64
	Offset     uint64
}

// JudgeInfo holds the type-specific evaluation configuration of a problem.
// The blob is opaque to this core and always replaced wholesale.
type JudgeInfo struct {
	ProblemID int64
	Info      json.RawMessage
}

// DefaultJudgeInfo returns the evaluation configuration a freshly created
// problem of the given type starts with.
func DefaultJudgeInfo(t ProblemType) json.RawMessage {
	switch t {
	case ProblemTypeTraditional:
		return json.RawMessage(`{"timeLimit":1000,"memoryLimit":512,"runSamples":true}`)
	case ProblemTypeInteraction:
		return json.RawMessage(`{"timeLimit":1000,"memoryLimit":512,"interactor":null}`)
	case ProblemTypeSubmitAnswer:
		return json.RawMessage(`{"subtasks":null}`)
	}
	return json.RawMessage(`{}`)
}

// SampleData is one input/output pair shown in the statement.
type SampleData struct {
	InputData  string `json:"inputData"`
	OutputData string `json:"outputData"`
}

// Sample holds the ordered sample pairs of a problem, stored as a single
// JSON value and replaced wholesale on statement updates.
type Sample struct {
	ProblemID int64
	Data      []SampleData
}
