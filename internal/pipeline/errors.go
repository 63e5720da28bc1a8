package pipeline

import "fmt"

// MissingJobTitleError indicates tailoring was requested without a job
// title. The check runs before any model call so a billed operation never
// starts on incomplete input.
type MissingJobTitleError struct{}

func (e *MissingJobTitleError) Error() string {
	return "job title is required"
}

// MalformedResponseError indicates the model's output was not parseable
// JSON after code-fence stripping. It is surfaced as a distinct,
// user-actionable error and never retried automatically.
type MalformedResponseError struct {
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("model returned invalid JSON: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
