package domain

// Session is the persisted login state: an opaque bearer token plus a
// snapshot of the user profile taken at login time.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
