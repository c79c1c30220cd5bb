package element

// Duplicate returns a deep-independent copy of the element with freshly
// generated ids throughout the subtree and a "(Copy)" suffix on the root
// label. The copy shares no mutable structure with the source.
func Duplicate(e *Element) *Element {
	if e == nil {
		return nil
	}
	clone := cloneElement(e)
	if clone.Label != "" {
		clone.Label += " (Copy)"
	}
	return clone
}

func cloneElement(e *Element) *Element {
	out := *e
	out.ID = NewID(e.Type)
	out.Options = append([]string(nil), e.Options...)
	out.Validation = e.Validation.Clone()
	out.Cols = e.Cols.Clone()
	out.Children = cloneChildren(e.Children)
	out.Column1Children = cloneChildren(e.Column1Children)
	out.Column2Children = cloneChildren(e.Column2Children)
	out.Column3Children = cloneChildren(e.Column3Children)
	if e.Rows != nil {
		out.Rows = make([][]*Element, len(e.Rows))
		for i, row := range e.Rows {
			out.Rows[i] = cloneChildren(row)
		}
	}
	return &out
}

func cloneChildren(children []*Element) []*Element {
	if children == nil {
		return nil
	}
	out := make([]*Element, len(children))
	for i, child := range children {
		out[i] = cloneElement(child)
	}
	return out
}

// FindByID returns the element with the given id anywhere in the tree, or
// nil when no such element exists.
func FindByID(root *Element, id string) *Element {
	if root == nil || id == "" {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.ChildElements() {
		if found := FindByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every element in the tree depth-first, parents before
// children.
func Walk(root *Element, visit func(*Element)) {
	if root == nil || visit == nil {
		return
	}
	visit(root)
	for _, child := range root.ChildElements() {
		Walk(child, visit)
	}
}

// Reorder moves the sibling at from to position to, preserving the relative
// order of everything else. Out-of-range indices leave the slice untouched.
// Ids are never changed.
func Reorder(siblings []*Element, from, to int) []*Element {
	if from < 0 || from >= len(siblings) || to < 0 || to >= len(siblings) || from == to {
		return siblings
	}
	out := make([]*Element, 0, len(siblings))
	out = append(out, siblings[:from]...)
	out = append(out, siblings[from+1:]...)
	tail := append([]*Element(nil), out[to:]...)
	out = append(out[:to], siblings[from])
	out = append(out, tail...)
	return out
}

// Remove excises the element with the given id from the tree and reports
// whether anything was removed. The root itself cannot be removed.
func Remove(root *Element, id string) bool {
	if root == nil || id == "" {
		return false
	}
	if removed := removeFrom(&root.Children, id); removed {
		return true
	}
	if removed := removeFrom(&root.Column1Children, id); removed {
		return true
	}
	if removed := removeFrom(&root.Column2Children, id); removed {
		return true
	}
	if removed := removeFrom(&root.Column3Children, id); removed {
		return true
	}
	for i := range root.Rows {
		if removed := removeFrom(&root.Rows[i], id); removed {
			return true
		}
	}
	for _, child := range root.ChildElements() {
		if Remove(child, id) {
			return true
		}
	}
	return false
}

func removeFrom(children *[]*Element, id string) bool {
	for i, child := range *children {
		if child.ID == id {
			*children = append((*children)[:i], (*children)[i+1:]...)
			return true
		}
	}
	return false
}
