// Package serviceerr defines the error kinds reported to callers of the
// interview API together with their HTTP status mapping.
package serviceerr

import "net/http"

type Code string

const (
	CodeInvalidRequest       Code = "invalid_request"
	CodeInvalidPhase         Code = "invalid_phase"
	CodeNotFound             Code = "not_found"
	CodeConflict             Code = "conflict"
	CodeInternal             Code = "internal_error"
	CodeUnknown              Code = "unknown"
	CodeModelFailure         Code = "model_failure"
	CodeTranscriptionFailure Code = "transcription_failed"
	CodeSynthesisFailure     Code = "synthesis_failed"
	CodeNotImplemented       Code = "not_implemented"
)

// Error is an error with a stable code that can be shown to the caller.
type Error struct {
	Err         Code
	Description string
}

var (
	// Caller errors
	ErrInvalidRequest = &Error{Err: CodeInvalidRequest}
	ErrInvalidPhase   = &Error{Err: CodeInvalidPhase, Description: "not ready for input"}
	ErrNotFound       = &Error{Err: CodeNotFound, Description: "session not found"}
	ErrConflict       = &Error{Err: CodeConflict, Description: "session ID already in use"}

	// Collaborator errors
	ErrModel         = &Error{Err: CodeModelFailure, Description: "text generation failed"}
	ErrTranscription = &Error{Err: CodeTranscriptionFailure, Description: "audio transcription failed"}
	ErrSynthesis     = &Error{Err: CodeSynthesisFailure, Description: "speech synthesis failed"}

	ErrInternal        = &Error{Err: CodeInternal, Description: "internal error"}
	ErrUnknown         = &Error{Err: CodeUnknown, Description: "unknown error"}
	ErrArchiveDisabled = &Error{Err: CodeNotImplemented, Description: "report archive is disabled"}
	ErrVoiceDisabled   = &Error{Err: CodeNotImplemented, Description: "voice features are disabled"}
)

// InvalidArgument returns an invalid_request error with the given description.
func InvalidArgument(description string) *Error {
	return &Error{Err: CodeInvalidRequest, Description: description}
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Err)
	}

	return string(e.Err) + ": " + e.Description
}

// Is reports whether target is a *Error with the same code, so that
// errors.Is(err, ErrInvalidRequest) holds for every invalid_request error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Err == e.Err
}

func (e *Error) HTTPStatus() int {
	switch e.Err {
	case CodeInvalidRequest, CodeInvalidPhase:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeModelFailure, CodeTranscriptionFailure, CodeSynthesisFailure:
		return http.StatusBadGateway
	case CodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
