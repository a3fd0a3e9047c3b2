// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package page

import "sync"

// EventKind identifies what changed on an element
type EventKind int

const (
	EventText EventKind = iota
	EventValue
	EventShow
	EventHide
	EventDisable
	EventEnable
	EventAppend
	EventClear
	EventClass
)

// Event is delivered to subscribers after the document lock is released
type Event struct {
	Kind   EventKind
	Target *Element
}

// Document is an element tree with id lookup.
// All element state is guarded by the document's mutex.
type Document struct {
	mu   sync.RWMutex
	root *Element
	byID map[string]*Element

	lmu       sync.Mutex
	listeners map[int]func(Event)
	nextID    int
}

// NewDocument returns an empty document
func NewDocument() *Document {
	d := &Document{
		byID:      make(map[string]*Element),
		listeners: make(map[int]func(Event)),
	}
	d.root = &Element{doc: d, tag: "body"}
	return d
}

// Root returns the top-level element
func (d *Document) Root() *Element {
	return d.root
}

// ByID returns the element with the given id, or nil
func (d *Document) ByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byID[id]
}

// CreateElement returns a detached element owned by d
func (d *Document) CreateElement(tag, class string) *Element {
	e := &Element{doc: d, tag: tag}
	if class != "" {
		e.classes = []string{class}
	}
	return e
}

// Subscribe registers fn for change events and returns a func that
// removes it. fn must not block for long; it runs on the mutating goroutine.
func (d *Document) Subscribe(fn func(Event)) func() {
	d.lmu.Lock()
	defer d.lmu.Unlock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() {
		d.lmu.Lock()
		defer d.lmu.Unlock()
		delete(d.listeners, id)
	}
}

func (d *Document) emit(kind EventKind, target *Element) {
	d.lmu.Lock()
	fns := make([]func(Event), 0, len(d.listeners))
	for _, fn := range d.listeners {
		fns = append(fns, fn)
	}
	d.lmu.Unlock()

	ev := Event{Kind: kind, Target: target}
	for _, fn := range fns {
		fn(ev)
	}
}

// add builds an attached element during page construction
func (d *Document) add(parent *Element, tag, id, label string) *Element {
	e := &Element{doc: d, tag: tag, id: id, label: label, parent: parent}
	parent.children = append(parent.children, e)
	if id != "" {
		d.byID[id] = e
	}
	return e
}

func (d *Document) index(e *Element) {
	if e.id != "" {
		d.byID[e.id] = e
	}
	for _, c := range e.children {
		d.index(c)
	}
}

func (d *Document) unindex(e *Element) {
	if e.id != "" && d.byID[e.id] == e {
		delete(d.byID, e.id)
	}
	for _, c := range e.children {
		d.unindex(c)
	}
}
