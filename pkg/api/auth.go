package api

// TokenResponse ответ token endpoint (RFC 6749, раздел 5.1).
// Клиент получает его через golang.org/x/oauth2; тип описывает контракт сервера.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"` // нет для client credentials
	Scope        string `json:"scope,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"` // секунды
}

// ErrorResponse тело ответа с ошибкой. Поля error и error_description
// совпадают с форматом ошибок OAuth2, поэтому REST и token endpoint
// отвечают одинаково.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// String returns the error code with its description, if any
func (e ErrorResponse) String() string {
	if e.Description == "" {
		return e.Error
	}
	return e.Error + ": " + e.Description
}
