// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package page

import "slices"

// Element is a node in a Document
type Element struct {
	doc    *Document
	tag    string
	id     string
	label  string
	parent *Element

	classes  []string
	text     string
	value    string
	hidden   bool
	disabled bool
	children []*Element
}

func (e *Element) Document() *Document { return e.doc }
func (e *Element) Tag() string         { return e.tag }
func (e *Element) ID() string          { return e.id }
func (e *Element) Label() string       { return e.label }

func (e *Element) Parent() *Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.parent
}

func (e *Element) Text() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.text
}

func (e *Element) SetText(text string) {
	e.doc.mu.Lock()
	e.text = text
	e.doc.mu.Unlock()
	e.doc.emit(EventText, e)
}

// Value is the current content of an input or select
func (e *Element) Value() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.value
}

func (e *Element) SetValue(value string) {
	e.doc.mu.Lock()
	e.value = value
	e.doc.mu.Unlock()
	e.doc.emit(EventValue, e)
}

func (e *Element) Hidden() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.hidden
}

// Visible reports whether e and all of its ancestors are shown
func (e *Element) Visible() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	for n := e; n != nil; n = n.parent {
		if n.hidden {
			return false
		}
	}
	return true
}

func (e *Element) Show() {
	e.doc.mu.Lock()
	e.hidden = false
	e.doc.mu.Unlock()
	e.doc.emit(EventShow, e)
}

func (e *Element) Hide() {
	e.doc.mu.Lock()
	e.hidden = true
	e.doc.mu.Unlock()
	e.doc.emit(EventHide, e)
}

func (e *Element) Disabled() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.disabled
}

func (e *Element) SetDisabled(disabled bool) {
	e.doc.mu.Lock()
	e.disabled = disabled
	e.doc.mu.Unlock()
	if disabled {
		e.doc.emit(EventDisable, e)
	} else {
		e.doc.emit(EventEnable, e)
	}
}

func (e *Element) HasClass(class string) bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Contains(e.classes, class)
}

func (e *Element) AddClass(class string) {
	e.doc.mu.Lock()
	if slices.Contains(e.classes, class) {
		e.doc.mu.Unlock()
		return
	}
	e.classes = append(e.classes, class)
	e.doc.mu.Unlock()
	e.doc.emit(EventClass, e)
}

// Append attaches child as the last child of e
func (e *Element) Append(child *Element) {
	e.doc.mu.Lock()
	if child.parent != nil {
		child.parent.children = slices.DeleteFunc(child.parent.children, func(c *Element) bool { return c == child })
	}
	child.parent = e
	e.children = append(e.children, child)
	e.doc.index(child)
	e.doc.mu.Unlock()
	e.doc.emit(EventAppend, child)
}

// Clear removes all children of e
func (e *Element) Clear() {
	e.doc.mu.Lock()
	for _, c := range e.children {
		e.doc.unindex(c)
		c.parent = nil
	}
	e.children = nil
	e.doc.mu.Unlock()
	e.doc.emit(EventClear, e)
}

// Children returns a snapshot of e's children
func (e *Element) Children() []*Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Clone(e.children)
}
