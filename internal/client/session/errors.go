package session

import "errors"

// ErrNotAuthenticated is returned by operations that require a signed-in
// user, such as UpdateProfile.
var ErrNotAuthenticated = errors.New("not authenticated")
