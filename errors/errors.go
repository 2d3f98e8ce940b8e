package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrAlreadyLoggedIn = fmt.Errorf("user already connected")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrSelfMessage     = fmt.Errorf("cannot send a private message to yourself")
	ErrNoSuchGroup     = fmt.Errorf("group does not exist")
	ErrGroupExists     = fmt.Errorf("group already exists")
	ErrAlreadyMember   = fmt.Errorf("already a member of group")
	ErrNotMember       = fmt.Errorf("not a member of group")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
)
