package rejigs

// AtStart appends ^.
func (e Expression) AtStart() Expression { return e.append(`^`) }

// AtEnd appends $.
func (e Expression) AtEnd() Expression { return e.append(`$`) }

// AtWordBoundary appends \b.
func (e Expression) AtWordBoundary() Expression { return e.append(`\b`) }

// NotAtWordBoundary appends \B.
func (e Expression) NotAtWordBoundary() Expression { return e.append(`\B`) }
