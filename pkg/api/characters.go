package api

import "net/url"

// CharactersPath путь коллекции персонажей относительно base URL
const CharactersPath = "/characters"

// CharacterPath возвращает путь одного персонажа, id экранируется
func CharacterPath(id string) string {
	return CharactersPath + "/" + url.PathEscape(id)
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки (текст HTTP статуса)
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
