package entities

// User представляет основную сущность домена пользователя.
// PasswordHash никогда не сериализуется наружу.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Fullname     string `json:"fullname,omitempty"`
	PasswordHash string `json:"-"`
}
