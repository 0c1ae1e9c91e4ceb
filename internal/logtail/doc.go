// Package logtail reads the tail of the dashboard's log file for display on
// the settings page.
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays bounded regardless of log size. A missing file is not an
// error; the dashboard may not have logged anything yet.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// Classify assigns each line a coarse Severity so the UI can color failures
// and warnings.
package logtail
