package auth

import (
	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the server-side session id.
const SessionCookie = "havjob_session"

// Identity is the resolved caller: who is making the request and whether they
// hold administrator privilege. It is produced once by the identity middleware
// and passed as a value; nothing below the HTTP layer knows which strategy
// (session cookie, bearer token) established it.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// Authenticated reports whether the identity belongs to a known user.
// An admin session carries no user id and is still authenticated.
func (i Identity) Authenticated() bool {
	return i.UserID != "" || i.IsAdmin
}

// SessionPayload is what a session row stores for the caller.
type SessionPayload struct {
	UserID        string `json:"userId,omitempty"`
	IsAdmin       bool   `json:"isAdmin,omitempty"`
	AdminUsername string `json:"adminUsername,omitempty"`
}

const identityKey = "havjob.identity"

// SetIdentity attaches the resolved identity to the request context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the caller identity resolved for this request, or the
// zero Identity when the request is anonymous.
func IdentityFrom(c *gin.Context) Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}
	}
	id, _ := v.(Identity)
	return id
}
