// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package page holds the element tree the controllers read from and
render into.

# Pages

	doc := page.NewSortPage(true)    // numbers-input, sort-btn, steps, result-box
	doc := page.NewParityPage(false) // binary-input, parity-type, parity-btn, result-box

A page built without steps has no steps-container or steps-list; the
controllers then skip the step reveal and render results immediately.

# Elements

Elements are looked up by id:

	btn := doc.ByID(page.IDSortButton)
	btn.SetDisabled(true)
	btn.SetText("Processing...")

Each element carries text, a value (inputs and selects), hidden and
disabled flags, classes, and children. All state is guarded by the
owning Document, so a renderer may read while a controller writes.

# Events

Subscribers see every change after the lock is released:

	stop := doc.Subscribe(func(ev page.Event) {
		if ev.Kind == page.EventShow && ev.Target.HasClass(page.ClassStepItem) {
			fmt.Println(ev.Target.Text())
		}
	})
	defer stop()
*/
package page
