// Package console holds the client-side view-model for the records service.
//
// The ViewModel tracks what a user sees and is doing: whether the service is
// reachable, the last fetched collection, which row is being edited, the add
// form and which actions are in flight. Front ends (the recordsctl CLI, tests)
// drive it through its methods and render Snapshot.
package console
