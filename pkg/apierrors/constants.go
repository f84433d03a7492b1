package apierrors

const (
	MsgInvalidInput    = "invalidInput"
	MsgUnauthenticated = "unauthenticated"
	MsgForbidden       = "forbidden"
	MsgConflict        = "conflict"
	MsgTaskNotFound    = "taskNotFound"
	MsgUserNotFound    = "userNotFound"
	MsgInternalError   = "internalError"
)
