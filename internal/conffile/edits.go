package conffile

import (
	"fmt"

	cerrors "github.com/confcrypt/confcrypt/internal/errors"
)

// Action enumerates the mutations an edit batch can request.
type Action int

const (
	Add Action = iota
	Edit
	Remove
)

// String returns the lowercase action name.
func (a Action) String() string {
	switch a {
	case Edit:
		return "edit"
	case Remove:
		return "remove"
	default:
		return "add"
	}
}

// EditOp pairs an element with the action to apply to it. For Edit the
// element carries the new content; the entry it replaces is located by
// identity (kind and name).
type EditOp struct {
	Element Element
	Action  Action
}

// Apply processes edits strictly in order against a copy of state and
// returns the resulting state. Each edit observes the mutations of all
// earlier edits in the same batch. Comments are never tracked for editing
// and are skipped regardless of action.
//
// Add appends the element at max line + 1 and fails with
// WrongFileActionError if an element of the same identity already exists.
// Edit replaces the matching entry in place, keeping its line number.
// Remove deletes the matching entry and shifts every later line down by one
// so the numbering stays contiguous. Edit and Remove fail with
// MissingLineError when no entry matches.
//
// Processing stops at the first failure; the partially edited state is
// never returned.
func Apply(state FileState, edits []EditOp) (FileState, error) {
	next := state.Clone()

	for _, op := range edits {
		if _, isComment := op.Element.(Comment); isComment {
			continue
		}

		current, line, found := findByIdentity(next, op.Element)

		switch op.Action {
		case Add:
			if found {
				return nil, &cerrors.WrongFileActionError{
					Description: op.Element.Describe(),
					Action:      op.Action.String(),
				}
			}
			next[op.Element] = next.MaxLine() + 1

		case Edit:
			if !found {
				return nil, &cerrors.MissingLineError{Description: op.Element.Describe()}
			}
			delete(next, current)
			next[op.Element] = line

		case Remove:
			if !found {
				return nil, &cerrors.MissingLineError{Description: op.Element.Describe()}
			}
			delete(next, current)
			for el, l := range next {
				if l > line {
					next[el] = l - 1
				}
			}
		}
	}

	next.checkContiguous()
	return next, nil
}

// findByIdentity locates the entry that shares the element's identity: for
// schema and parameter lines, same kind and same name. The element's value
// or declared type plays no part in matching, which is what lets an Edit op
// carry the replacement content. Comments have no identity.
//
// At most one entry may match: the parser rejects same-name repeats, so a
// second match means the state was built by broken code. Picking one at
// random would let an Edit collapse two lines into one, so the engine
// panics instead.
func findByIdentity(s FileState, el Element) (Element, int, bool) {
	var (
		match Element
		line  int
		found bool
	)
	for current, l := range s {
		if !sameIdentity(current, el) {
			continue
		}
		if found {
			panic(fmt.Sprintf("conffile: multiple entries match %s", el.Describe()))
		}
		match, line, found = current, l, true
	}
	return match, line, found
}

func sameIdentity(a, b Element) bool {
	switch x := a.(type) {
	case Schema:
		y, ok := b.(Schema)
		return ok && x.Name == y.Name
	case Parameter:
		y, ok := b.(Parameter)
		return ok && x.Name == y.Name
	}
	return false
}
