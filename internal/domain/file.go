package domain

import "github.com/google/uuid"

// ProblemFileType partitions a problem's files into judge-visible test data
// and statement attachments.
type ProblemFileType string

const (
	ProblemFileTypeTestData       ProblemFileType = "TEST_DATA"
	ProblemFileTypeAdditionalFile ProblemFileType = "ADDITIONAL_FILE"
)

func (t ProblemFileType) String() string { return string(t) }

func (t ProblemFileType) IsValid() bool {
	switch t {
	case ProblemFileTypeTestData, ProblemFileTypeAdditionalFile:
		return true
	}
	return false
}

// ProblemFile links a problem to reference-counted file content. The row is
// identified by (ProblemID, Type, Filename); renaming rewrites the key in
// place and never touches the content reference.
type ProblemFile struct {
	ProblemID int64
	Type      ProblemFileType
	Filename  string

	// UUID is the content handle in the file reference store.
	UUID uuid.UUID
}

// FileInfo is a ProblemFile annotated with the content size, produced by
// list operations that consult the reference store.
type FileInfo struct {
	Filename string
	UUID     uuid.UUID
	Size     int64
}
