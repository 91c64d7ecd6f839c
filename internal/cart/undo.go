package cart

// UndoRemove puts the most recently removed item back at the end of the cart.
// The matching history entry stays in place but is marked restored, so the same
// removal cannot be brought back a second time through UndoRemoveByID.
func (e *Engine) UndoRemove() (Effect, error) {
	if e.state.LastRemoved == nil {
		return e.none(), nil
	}
	if err := e.restore(*e.state.LastRemoved); err != nil {
		return e.none(), err
	}
	if idx := e.historyIndex(e.state.LastRemovedAt); idx >= 0 {
		e.state.RemovalHistory[idx].Restored = true
	}
	e.forgetLastRemoved()
	return e.persist(), nil
}

// UndoRemoveByID restores the history entry removed at removedAt and drops only that entry.
// An entry already restored by UndoRemove is dropped without restoring it again.
func (e *Engine) UndoRemoveByID(removedAt int64) (Effect, error) {
	idx := e.historyIndex(removedAt)
	if idx < 0 {
		return e.none(), nil
	}
	entry := e.state.RemovalHistory[idx]
	if !entry.Restored {
		if err := e.restore(entry.Item); err != nil {
			return e.none(), err
		}
	}
	e.dropHistory(idx)
	if e.state.LastRemoved != nil && e.state.LastRemovedAt == removedAt {
		e.forgetLastRemoved()
	}
	return e.persist(), nil
}

// DismissRemovedItem drops a history entry without restoring it.
func (e *Engine) DismissRemovedItem(removedAt int64) Effect {
	idx := e.historyIndex(removedAt)
	if idx < 0 {
		return e.none()
	}
	e.dropHistory(idx)
	return e.persist()
}

// ClearLastRemoved forgets the pending single-step undo.
func (e *Engine) ClearLastRemoved() Effect {
	if e.state.LastRemoved == nil {
		return e.none()
	}
	e.forgetLastRemoved()
	return e.persist()
}

func (e *Engine) forgetLastRemoved() {
	e.state.LastRemoved = nil
	e.state.LastRemovedAt = 0
}

// restore appends item to the cart. If the variant was added again since it was
// removed, the quantities merge into the existing line so IDs stay unique.
func (e *Engine) restore(item LineItem) error {
	idx := e.indexOf(item.ID)
	if idx < 0 {
		e.state.Items = append(e.state.Items, item.clone())
		return nil
	}

	existing := &e.state.Items[idx]
	merged := existing.Quantity + item.Quantity
	if limit, ok := existing.limit(); ok && merged > limit {
		return &OutOfStockError{ItemID: item.ID, Limit: limit, Requested: merged}
	}
	existing.Quantity = merged
	return nil
}

func (e *Engine) historyIndex(removedAt int64) int {
	if removedAt == 0 {
		return -1
	}
	for i := range e.state.RemovalHistory {
		if e.state.RemovalHistory[i].RemovedAt == removedAt {
			return i
		}
	}
	return -1
}

func (e *Engine) dropHistory(idx int) {
	h := e.state.RemovalHistory
	e.state.RemovalHistory = append(h[:idx:idx], h[idx+1:]...)
}
