// Package ui provides the Bubble Tea TUI for MovieMatch. It implements the
// controller's View and turns key presses into controller intents.
package ui

import "github.com/abelbrown/moviematch/internal/controller"

// TaskDone is sent when a controller task finishes off the event loop.
type TaskDone struct {
	Completion controller.Completion
}

// ClassifierStatus is sent when the mood classifier healthCheck finishes.
type ClassifierStatus struct {
	Available bool
}
