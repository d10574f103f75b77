package booking

import "fmt"

// Domain error codes shared by the scheduling and group services. Expected
// failures are returned as *DomainError values; infrastructure errors are
// wrapped and propagate to the calling boundary.
const (
	CodeNotFound                = "NOT_FOUND"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	CodeGroupFull               = "GROUP_FULL"
	CodeGroupNotOpen            = "GROUP_NOT_OPEN"
	CodeGroupBookingNotFound    = "GROUP_BOOKING_NOT_FOUND"
	CodeJoinDeadlinePassed      = "JOIN_DEADLINE_PASSED"
	CodeAlreadyJoined           = "ALREADY_JOINED"
	CodeNoActiveParticipants    = "NO_ACTIVE_PARTICIPANTS"
	CodeNoData                  = "NO_DATA"
)

// DomainError is an expected, user-visible failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDomainError builds a DomainError for the given code.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// ErrNotFound is returned both for absent bookings and for callers that do
// not own the booking, so the two cases cannot be told apart.
var ErrNotFound = &DomainError{Code: CodeNotFound, Message: "booking not found"}

// AsDomainError unwraps err into a *DomainError if it is one.
func AsDomainError(err error) (*DomainError, bool) {
	de, ok := err.(*DomainError)
	return de, ok
}
