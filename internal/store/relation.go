package store

import "sync"

// RelationIndex отображение идентификатора сущности на множество
// связанных идентификаторов. Одна копия обслуживает лайки
// (фильм -> пользователи), другая дружбу (пользователь -> друзья).
// Сам индекс направленный; симметрию дружбы поддерживает сервис.
type RelationIndex struct {
	mu        sync.RWMutex
	relations map[int64]map[int64]struct{}
}

// NewRelationIndex создает пустой RelationIndex.
func NewRelationIndex() *RelationIndex {
	return &RelationIndex{relations: make(map[int64]map[int64]struct{})}
}

// Init создает пустое множество связей для id, если его еще нет.
func (i *RelationIndex) Init(id int64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.relations[id]; !ok {
		i.relations[id] = make(map[int64]struct{})
	}
}

// Add добавляет b в множество связей a. Множество создается лениво,
// повторное добавление не меняет состояние.
func (i *RelationIndex) Add(a, b int64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	set, ok := i.relations[a]
	if !ok {
		set = make(map[int64]struct{})
		i.relations[a] = set
	}
	set[b] = struct{}{}
}

// Remove удаляет b из множества связей a.
// Отсутствие связи не является ошибкой.
func (i *RelationIndex) Remove(a, b int64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if set, ok := i.relations[a]; ok {
		delete(set, b)
	}
}

// Contains сообщает, входит ли b в множество связей a.
func (i *RelationIndex) Contains(a, b int64) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	set, ok := i.relations[a]
	if !ok {
		return false
	}
	_, ok = set[b]
	return ok
}

// Get возвращает копию множества связей a.
// Для неизвестного id возвращается пустой срез.
func (i *RelationIndex) Get(a int64) []int64 {
	i.mu.RLock()
	defer i.mu.RUnlock()

	set := i.relations[a]
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// Count возвращает размер множества связей a.
func (i *RelationIndex) Count(a int64) int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.relations[a])
}
