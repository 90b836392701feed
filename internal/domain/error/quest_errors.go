// Package error defines domain-specific errors for the SpendXP application.
package error

import "errors"

// Quest and learning domain errors.
var (
	// ErrQuestNotFound is returned when a quest ID is not in the catalogue.
	ErrQuestNotFound = errors.New("quest not found")

	// ErrQuestNotComplete is returned when claiming a quest whose predicate does not hold.
	ErrQuestNotComplete = errors.New("quest is not complete")

	// ErrQuestHasNoQuiz is returned when answering a quest that is not a quiz.
	ErrQuestHasNoQuiz = errors.New("quest has no quiz")

	// ErrModuleNotFound is returned when a learning module ID is not in the catalogue.
	ErrModuleNotFound = errors.New("learning module not found")

	// ErrIncorrectAnswer is returned when a quiz answer is wrong.
	ErrIncorrectAnswer = errors.New("incorrect answer")
)

// QuestErrorCode defines error codes for quest and learning errors.
// Format: QST-XXYYYY where XX is category and YYYY is specific error.
type QuestErrorCode string

const (
	// Quest errors (01XXXX)
	ErrCodeQuestNotFound    QuestErrorCode = "QST-010001"
	ErrCodeQuestNotComplete QuestErrorCode = "QST-010002"
	ErrCodeQuestHasNoQuiz   QuestErrorCode = "QST-010003"

	// Learning errors (02XXXX)
	ErrCodeModuleNotFound  QuestErrorCode = "QST-020001"
	ErrCodeIncorrectAnswer QuestErrorCode = "QST-020002"
)

// QuestError represents a quest error with code and message.
type QuestError struct {
	Code    QuestErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *QuestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *QuestError) Unwrap() error {
	return e.Err
}

// NewQuestError creates a new QuestError with the given code and message.
func NewQuestError(code QuestErrorCode, message string, err error) *QuestError {
	return &QuestError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
