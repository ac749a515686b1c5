package errors

import (
	"errors"
)

// Kind is the closed set of failure categories callers can branch on.
type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindConflict
	KindInvariantViolation
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvariantViolation:
		return "invariant_violation"
	case KindState:
		return "state"
	default:
		return "internal"
	}
}

// Error is a domain failure with a stable machine-readable code.
type Error struct {
	Kind Kind
	Code string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same code, so wrapped copies still
// compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func newErr(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg}
}

var (
	ErrUserNotFound         = newErr(KindNotFound, "user_not_found", "user not found")
	ErrCourseNotFound       = newErr(KindNotFound, "course_not_found", "course not found")
	ErrConversationNotFound = newErr(KindNotFound, "conversation_not_found", "conversation not found")

	ErrDuplicateEmail          = newErr(KindConflict, "duplicate_email", "email already registered")
	ErrDuplicateUsername       = newErr(KindConflict, "duplicate_username", "username already taken")
	ErrDuplicateUser           = newErr(KindConflict, "duplicate_user", "email or username already taken")
	ErrDuplicateCourse         = newErr(KindConflict, "duplicate_course", "course with this name already exists at this location")
	ErrDuplicateFavorite       = newErr(KindConflict, "duplicate_favorite", "course already in favorites")
	ErrDuplicateTimePreference = newErr(KindConflict, "duplicate_time_preference", "time preference already added")
	ErrDuplicateMatch          = newErr(KindConflict, "duplicate_match", "buddy match already exists between these users")

	ErrSelfMatch        = newErr(KindInvariantViolation, "self_match", "cannot create buddy match with yourself")
	ErrSelfConversation = newErr(KindInvariantViolation, "self_conversation", "cannot create conversation with yourself")
	ErrNotParticipant   = newErr(KindInvariantViolation, "not_participant", "conversation not found or user not a participant")

	ErrMatchNotFoundOrNotPending = newErr(KindState, "match_not_pending", "buddy match not found or not in pending status")
)

// InvalidArgument builds a one-off validation failure.
func InvalidArgument(msg string) *Error {
	return newErr(KindInvalidArgument, "invalid_argument", msg)
}

// Wrap attaches a cause to a sentinel without losing its identity.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Code: sentinel.Code, Msg: sentinel.Msg, Err: cause}
}

// KindOf reports the category of err; anything not built here is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsBusiness reports whether err is an expected domain outcome rather than
// an infrastructure failure.
func IsBusiness(err error) bool {
	return err != nil && KindOf(err) != KindInternal
}
