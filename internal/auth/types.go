package auth

// loginResp carries the consent URL the frontend redirects the user to.
type loginResp struct {
	AuthURL string `json:"auth_url"`
}

// callbackResp carries the session token opened by a successful exchange.
type callbackResp struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// statusResp describes the calling session.
type statusResp struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	ScopeCount    int    `json:"scope_count"`
	RedirectURI   string `json:"redirect_uri"`
}
