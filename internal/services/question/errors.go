package question

// QuestionError is a custom error type for Q&A errors
type QuestionError string

// Error implements the error interface
func (e QuestionError) Error() string {
	return string(e)
}

const (
	ErrQuestionNotFound QuestionError = "question not found"
	ErrEmptyQuestion    QuestionError = "question cannot be empty"
	ErrEmptyAnswer      QuestionError = "answer cannot be empty"
	ErrAlreadyUpvoted   QuestionError = "user has already upvoted this question"
	ErrNotUpvoted       QuestionError = "user has not upvoted this question"
	ErrEmptyQuestionID  QuestionError = "question ID cannot be empty"
	ErrEmptySessionID   QuestionError = "session ID cannot be empty"
	ErrEmptyUserID      QuestionError = "user ID cannot be empty"
	ErrEmptySearchQuery QuestionError = "search query cannot be empty"
	ErrNilConfig        QuestionError = "config cannot be nil"
	ErrNilDocumentRepo  QuestionError = "document repository cannot be nil"
)
