package mobject

// GenerateTarget stages a deep copy of m as its future state and returns it.
// Callers edit the returned copy; MoveToTarget style animations read it.
// A previously staged target is replaced.
func (m *Mobject) GenerateTarget() *Mobject {
	m.target = m.Copy()
	return m.target
}

// Target returns the staged target, nil when none is staged.
func (m *Mobject) Target() *Mobject { return m.target }

// ClearTarget drops the staged target.
func (m *Mobject) ClearTarget() { m.target = nil }
