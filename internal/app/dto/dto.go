// Package dto содержит объекты передачи данных HTTP слоя.
package dto

// NoteRequest - тело запроса на создание или обновление заметки.
// Поле ID принимается только для сверки с параметром пути.
type NoteRequest struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// NamedRequest - тело запроса на создание или обновление папки либо тега.
type NamedRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegisterRequest - тело запроса на регистрацию пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

// LoginRequest - тело запроса на вход.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse - ответ на успешный вход: пользователь без пароля
// и токен доступа.
type LoginResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Fullname  string `json:"fullname,omitempty"`
	AuthToken string `json:"authToken"`
}
