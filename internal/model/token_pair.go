package model

// TokenPair is the access/refresh credential pair returned by login
// and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
