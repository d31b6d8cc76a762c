package entity

// Credential is the OAuth2 token bundle issued by the Microsoft identity
// platform. It is replaced wholesale on refresh, never partially updated.
type Credential struct {
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int    `json:"expires_in"`
	ExtExpiresIn int    `json:"ext_expires_in"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
}

// Secrets is the static application identity, provisioned out of band and
// never mutated by the crawler.
type Secrets struct {
	TenantID     string `json:"tenant_id" validate:"required"`
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	ChatID       string `json:"chat_id" validate:"required"`
}
