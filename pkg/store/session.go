package store

import "github.com/google/uuid"

// Session is the server-side state behind one opaque browsing token.
// Fields fill in as the screening workflow advances: ChildId after the
// child form, ResultId after scoring. It lives only in the session
// store and dies by TTL; nothing here survives a restart.
type Session struct {
	Token    string     `json:"token"`
	UserId   uuid.UUID  `json:"user_id"`
	ChildId  *uuid.UUID `json:"child_id,omitempty"`
	ResultId *uuid.UUID `json:"result_id,omitempty"`
}
