package mobject

// UpdaterID identifies a registered updater on its mobject.
type UpdaterID int

type updater struct {
	id        UpdaterID
	fn        func(m *Mobject, dt float64)
	timeBased bool
}

// AddUpdater registers fn to run every tick.
func (m *Mobject) AddUpdater(fn func(m *Mobject)) UpdaterID {
	return m.addUpdater(func(m *Mobject, _ float64) { fn(m) }, false)
}

// AddTimeUpdater registers fn to run every tick with the elapsed time in
// seconds since the previous tick.
func (m *Mobject) AddTimeUpdater(fn func(m *Mobject, dt float64)) UpdaterID {
	return m.addUpdater(fn, true)
}

func (m *Mobject) addUpdater(fn func(*Mobject, float64), timeBased bool) UpdaterID {
	m.nextUpdaterID++
	m.updaters = append(m.updaters, updater{id: m.nextUpdaterID, fn: fn, timeBased: timeBased})
	return m.nextUpdaterID
}

// RemoveUpdater unregisters an updater and reports whether it was found.
func (m *Mobject) RemoveUpdater(id UpdaterID) bool {
	for i, u := range m.updaters {
		if u.id == id {
			m.updaters = append(m.updaters[:i], m.updaters[i+1:]...)
			return true
		}
	}
	return false
}

// ClearUpdaters removes all updaters of m, and of its family when family is
// set.
func (m *Mobject) ClearUpdaters(family bool) {
	for _, f := range m.members(family) {
		f.updaters = nil
	}
}

// HasUpdaters reports whether any family member has an updater.
func (m *Mobject) HasUpdaters() bool {
	for _, f := range m.Family() {
		if len(f.updaters) > 0 {
			return true
		}
	}
	return false
}

// HasTimeUpdaters reports whether any family member has a time based
// updater.
func (m *Mobject) HasTimeUpdaters() bool {
	for _, f := range m.Family() {
		for _, u := range f.updaters {
			if u.timeBased {
				return true
			}
		}
	}
	return false
}

// Update runs the updaters of m and then of its children. A suspended node
// is skipped together with its subtree.
func (m *Mobject) Update(dt float64) {
	if m.suspended {
		return
	}
	for _, u := range m.updaters {
		u.fn(m, dt)
	}
	for _, c := range m.children {
		c.Update(dt)
	}
}

// SuspendUpdating stops Update from running updaters on m, and on its family
// when family is set.
func (m *Mobject) SuspendUpdating(family bool) {
	for _, f := range m.members(family) {
		f.suspended = true
	}
}

// ResumeUpdating re-enables updaters and immediately runs them once with a
// zero time step so the mobject catches up with its dependencies.
func (m *Mobject) ResumeUpdating(family bool) {
	for _, f := range m.members(family) {
		f.suspended = false
	}
	m.Update(0)
}

// IsUpdatingSuspended reports whether m's updaters are suspended.
func (m *Mobject) IsUpdatingSuspended() bool { return m.suspended }
