package gallery

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once, or on a zero CallbackHandle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

type handlerEntry[F any] struct {
	id uint32
	fn F
}

// handlerList is an ordered callback registry. Callbacks fire in registration
// order; a callback removed while the list is being emitted does not fire.
type handlerList[F any] struct {
	entries  []handlerEntry[F]
	nextID   uint32
	scratch  []handlerEntry[F]
	emitting int
}

func (l *handlerList[F]) add(fn F) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[F]{id: id, fn: fn})
	return CallbackHandle{remove: func() { l.removeID(id) }}
}

func (l *handlerList[F]) removeID(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = handlerEntry[F]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

func (l *handlerList[F]) has(id uint32) bool {
	for i := range l.entries {
		if l.entries[i].id == id {
			return true
		}
	}
	return false
}

// each calls call for every registered callback. It iterates a snapshot so
// callbacks may add or remove entries during emission.
func (l *handlerList[F]) each(call func(F)) {
	if len(l.entries) == 0 {
		return
	}
	var snap []handlerEntry[F]
	if l.emitting == 0 {
		snap = append(l.scratch[:0], l.entries...)
	} else {
		snap = append([]handlerEntry[F](nil), l.entries...)
	}
	l.emitting++
	for _, e := range snap {
		if l.has(e.id) {
			call(e.fn)
		}
	}
	l.emitting--
	if l.emitting == 0 {
		clear(snap)
		l.scratch = snap[:0]
	}
}

func (l *handlerList[F]) count() int {
	return len(l.entries)
}

func (l *handlerList[F]) clear() {
	clear(l.entries)
	l.entries = l.entries[:0]
}
