package api

import "errors"

// errMissingUserID means a request reached an authenticated handler without
// RequireAuth setting the user id; a server fault, not a client one.
var errMissingUserID = errors.New("user id missing from context")
