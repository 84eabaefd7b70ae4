package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/roster/internal/models"
	"github.com/iudanet/roster/internal/server/storage"
	"github.com/iudanet/roster/internal/validation"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// CharacterHandler обрабатывает CRUD запросы ресурса characters
type CharacterHandler struct {
	logger  *slog.Logger
	storage storage.CharacterStorage
	newID   func() string
}

// NewCharacterHandler создает новый handler персонажей
func NewCharacterHandler(logger *slog.Logger, store storage.CharacterStorage) *CharacterHandler {
	return &CharacterHandler{
		logger:  logger,
		storage: store,
		newID:   uuid.NewString,
	}
}

// List обрабатывает GET /characters
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.storage.ListCharacters(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list characters", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Character{}
	}

	sendJSON(h.logger, w, list, http.StatusOK)
}

// Get обрабатывает GET /characters/{id}
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := pathID(r)

	ch, err := h.storage.GetCharacter(ctx, id)
	if err != nil {
		h.sendStorageError(w, r, "failed to get character", id, err)
		return
	}

	sendJSON(h.logger, w, ch, http.StatusOK)
}

// Create обрабатывает POST /characters
// Идентификатор из тела игнорируется, сервер назначает новый UUID
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ch, ok := h.decodeCharacter(w, r)
	if !ok {
		return
	}
	ch.ID = h.newID()

	if err := h.storage.CreateCharacter(ctx, &ch); err != nil {
		h.logger.ErrorContext(ctx, "failed to create character", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "character created", slog.String("character_id", ch.ID), slog.String("name", ch.Name))
	sendJSON(h.logger, w, ch, http.StatusCreated)
}

// Update обрабатывает PUT /characters/{id}
// Идентификатор из пути важнее идентификатора в теле
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := pathID(r)

	ch, ok := h.decodeCharacter(w, r)
	if !ok {
		return
	}
	ch.ID = id

	if err := h.storage.UpdateCharacter(ctx, &ch); err != nil {
		h.sendStorageError(w, r, "failed to update character", id, err)
		return
	}

	h.logger.InfoContext(ctx, "character updated", slog.String("character_id", id))
	sendJSON(h.logger, w, ch, http.StatusOK)
}

// Delete обрабатывает DELETE /characters/{id}
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := pathID(r)

	if err := h.storage.DeleteCharacter(ctx, id); err != nil {
		h.sendStorageError(w, r, "failed to delete character", id, err)
		return
	}

	h.logger.InfoContext(ctx, "character deleted", slog.String("character_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// decodeCharacter читает и проверяет тело запроса.
// При ошибке ответ уже отправлен и возвращается false.
func (h *CharacterHandler) decodeCharacter(w http.ResponseWriter, r *http.Request) (models.Character, bool) {
	ctx := r.Context()

	var ch models.Character
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&ch); err != nil {
		h.logger.WarnContext(ctx, "failed to decode character", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return models.Character{}, false
	}

	if err := validation.ValidateCharacter(ch); err != nil {
		h.logger.WarnContext(ctx, "invalid character", slog.String("name", ch.Name), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return models.Character{}, false
	}

	return ch, true
}

func (h *CharacterHandler) sendStorageError(w http.ResponseWriter, r *http.Request, msg, id string, err error) {
	if errors.Is(err, storage.ErrCharacterNotFound) {
		sendError(h.logger, w, "character not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), msg, slog.String("character_id", id), slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}

// pathID возвращает {id} из пути.
// chi сопоставляет по RawPath, если он есть, поэтому значение может быть экранировано.
func pathID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}
