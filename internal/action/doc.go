// Package action implements the asynchronous request lifecycle shared by
// every dashboard panel: Idle → Pending → Succeeded | Failed.
//
// A Controller is created per gesture (opening a status card, clicking an
// action). Start returns a Bubble Tea command; its Done message is handed
// back to Apply, which drops it unless it belongs to the controller's current
// generation. Reset, called when the modal closes, bumps the generation so a
// late response for a discarded request changes nothing.
//
// All failures collapse into Failed with a fixed message per flow
// (StatusFailure, ActionFailure). The underlying error travels in the Done
// message for logging and never reaches State.
package action
