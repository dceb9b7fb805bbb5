package models

// Роли пользователей
const (
	RoleRequester = "requester"
	RoleProvider  = "provider"
	RoleAdmin     = "admin"
)

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// ExpertiseRequest - модель запроса на обновление навыков исполнителя
type ExpertiseRequest struct {
	Skills []string `json:"skills"`
}

// UserData - модель пользователя из хранищища
type UserData struct {
	UserID         string
	Login          string
	PasswordHash   string
	Role           string
	Expertise      []string
	Approved       bool
	DiscountedUsed int
}

// IsApprovedProvider - пользователь является одобренным исполнителем
func (u *UserData) IsApprovedProvider() bool {
	return u.Role == RoleProvider && u.Approved
}
