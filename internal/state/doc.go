// Package state holds the latest polled device readings.
//
// The background poller writes with Update and the UI reads with Snapshot;
// a sync.RWMutex guards the snapshot and both sides get copies, so neither
// can mutate what the other sees.
//
// The store only feeds the header's connectivity strip. Status and action
// modals do not read it: each one owns its own action.Controller and shows
// exactly the response it asked for.
//
// On a failed cycle Update records the error, bumps ConsecutiveFailures and
// keeps whatever earlier data did not arrive again. Two failures in a row
// count as offline.
package state
