package model

// LoginRequest is the login gate form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionState describes where the app currently is.
type SessionState struct {
	LoggedIn bool     `json:"loggedIn"`
	Screen   string   `json:"screen"`
	Stack    []string `json:"stack"`
}

// RemoveResponse reports whether a removal matched an item.
type RemoveResponse struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// SelectionResponse is returned after a dish has been picked in a browser.
type SelectionResponse struct {
	Item    MenuItem     `json:"item"`
	Session SessionState `json:"session"`
	Menu    MenuSummary  `json:"menu"`
}
