package models

import "time"

// MutationOp тип подтвержденной сервером мутации
type MutationOp string

const (
	MutationCreate MutationOp = "create"
	MutationUpdate MutationOp = "update"
	MutationDelete MutationOp = "delete"
)

// JournalEntry запись локального журнала мутаций.
// Журнал только дописывается и никогда не используется для восстановления коллекции.
type JournalEntry struct {
	RecordedAt  time.Time  `json:"recorded_at" yaml:"recorded_at"`       // RecordedAt время подтверждения мутации
	Op          MutationOp `json:"op" yaml:"op"`                         // Op тип операции
	CharacterID string     `json:"character_id" yaml:"character_id"`     // CharacterID идентификатор персонажа
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"` // Name имя персонажа (пусто для delete)
	Seq         uint64     `json:"seq" yaml:"seq"`                       // Seq порядковый номер, назначается хранилищем
}
