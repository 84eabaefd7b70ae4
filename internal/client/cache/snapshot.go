package cache

import "github.com/iudanet/roster/internal/models"

// Snapshot упорядоченная коллекция персонажей в момент публикации.
// Кэш никогда не меняет опубликованный Snapshot: каждая мутация строит новый.
type Snapshot []models.Character

// Clone создает глубокую копию, которую вызывающий может свободно менять
func (s Snapshot) Clone() Snapshot {
	cp := make(Snapshot, len(s))
	for i, c := range s {
		cp[i] = c.Clone()
	}
	return cp
}

// IDs возвращает идентификаторы в порядке коллекции
func (s Snapshot) IDs() []string {
	ids := make([]string, len(s))
	for i, c := range s {
		ids[i] = c.ID
	}
	return ids
}

// Find возвращает первую запись с данным идентификатором
func (s Snapshot) Find(id string) (models.Character, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s[i], true
	}
	return models.Character{}, false
}

func (s Snapshot) indexOf(id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

// withAppended добавляет запись в конец
func (s Snapshot) withAppended(c models.Character) Snapshot {
	next := make(Snapshot, 0, len(s)+1)
	next = append(next, s...)
	return append(next, c)
}

// withReplaced заменяет первую запись с данным id, сохраняя порядок.
// Если такой записи нет, c добавляется в конец; replaced тогда false.
func (s Snapshot) withReplaced(id string, c models.Character) (next Snapshot, replaced bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s.withAppended(c), false
	}
	next = make(Snapshot, len(s))
	copy(next, s)
	next[i] = c
	return next, true
}

// withRemoved убирает запись с данным id; без такой записи возвращает копию
func (s Snapshot) withRemoved(id string) (next Snapshot, removed bool) {
	next = make(Snapshot, 0, len(s))
	for _, c := range s {
		if c.ID == id {
			removed = true
			continue
		}
		next = append(next, c)
	}
	return next, removed
}
