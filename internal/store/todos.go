package store

import "github.com/followdesk/followdesk/pkg/types"

// TodoDraft carries the fields accepted when creating a todo. Date
// defaults to the selected day bucket.
type TodoDraft struct {
	Date                string
	Title               string
	CustomerID          string
	Priority            string
	ReminderTime        string
	RemindBeforeMinutes int
	Tags                []string
	OrderDraft          *types.OrderDraft
}

// AddTodo creates a todo at the end of its day bucket and returns its id.
// The referenced customer must exist; referential integrity is checked at
// creation time only.
func (s *Store) AddTodo(draft TodoDraft) (string, error) {
	if draft.Title == "" {
		return "", types.Guardf(types.ErrInvalidInput, "待办标题不能为空。")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.customerExistsLocked(draft.CustomerID) {
		return "", types.Guardf(types.ErrNotFound, "未找到客户。")
	}

	date := draft.Date
	if date == "" {
		date = s.selectedDate
	}
	position := 0
	for _, todo := range s.todos {
		if todo.Date == date {
			position++
		}
	}

	orderDraft := types.OrderDraft{Items: []types.DraftItem{}}
	if draft.OrderDraft != nil {
		orderDraft = *draft.OrderDraft
		if orderDraft.Items == nil {
			orderDraft.Items = []types.DraftItem{}
		}
	}

	now := s.now().UnixMilli()
	todo := types.Todo{
		ID:                  types.NewID(),
		Date:                date,
		Title:               draft.Title,
		CustomerID:          draft.CustomerID,
		Priority:            draft.Priority,
		ReminderTime:        draft.ReminderTime,
		RemindBeforeMinutes: draft.RemindBeforeMinutes,
		Tags:                append([]string(nil), draft.Tags...),
		OrderDraft:          orderDraft,
		CreatedAt:           now,
		UpdatedAt:           now,
		SortOrder:           position,
	}
	s.todos = append(s.todos, todo)
	s.schedulePersistLocked()
	return todo.ID, nil
}

// UpdateTodo applies a patch to an existing todo.
func (s *Store) UpdateTodo(id string, patch types.TodoPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		updated := s.todos[i]
		patch.Apply(&updated)
		updated.UpdatedAt = s.now().UnixMilli()
		s.todos[i] = updated
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到待办。")
}

// DeleteTodo removes a todo permanently. Todos have no recycle bin.
func (s *Store) DeleteTodo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		s.todos = append(s.todos[:i:i], s.todos[i+1:]...)
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到待办。")
}

// SetTodoCompleted toggles the completed flag. Un-completing a converted
// todo only clears the flag: the spawned order and the conversion record
// stay untouched.
func (s *Store) SetTodoCompleted(id string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		updated := s.todos[i]
		updated.Completed = completed
		updated.UpdatedAt = s.now().UnixMilli()
		s.todos[i] = updated
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到待办。")
}

// ReorderTodos reassigns the manual sort positions of one day bucket to
// match ids. Todos of other dates, or ids not listed, keep their position.
func (s *Store) ReorderTodos(date string, ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	now := s.now().UnixMilli()
	changed := false
	for i := range s.todos {
		if s.todos[i].Date != date {
			continue
		}
		pos, ok := index[s.todos[i].ID]
		if !ok {
			continue
		}
		updated := s.todos[i]
		updated.SortOrder = pos
		updated.UpdatedAt = now
		s.todos[i] = updated
		changed = true
	}
	if changed {
		s.schedulePersistLocked()
	}
}

// TodoByID looks up a live todo.
func (s *Store) TodoByID(id string) (types.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return types.Todo{}, false
}

func (s *Store) customerExistsLocked(id string) bool {
	for _, c := range s.customers {
		if c.ID == id {
			return true
		}
	}
	return false
}
