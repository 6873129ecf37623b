package dto

// LoginRequest credenciais enviadas em POST /auth/login.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// RefreshRequest par de tokens enviado em POST /auth/refresh-token.
type RefreshRequest struct {
	JwtToken     string `json:"jwtToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserInfo identidade resumida do usuário autenticado. Profile é o rótulo de
// exibição do perfil, não o código numérico.
type UserInfo struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Login   string `json:"login"`
	Profile string `json:"profile"`
}

// AuthResponse resposta de login e de refresh (mesmo formato).
type AuthResponse struct {
	JwtToken     string   `json:"jwtToken"`
	RefreshToken string   `json:"refreshToken"`
	Roles        []string `json:"roles"`
	User         UserInfo `json:"user"`
}
