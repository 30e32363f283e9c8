// Package mode defines the editing modes that select binding and remap
// tables:
//   - Normal: Navigation and commands
//   - Select: Normal mode with motions extending the selection
//   - Insert: Text input
//
// Each mode has a canonical, case-sensitive name ("Normal", "Select",
// "Insert") used as the section key in remap documents. Tracking which mode
// is active belongs to the editor, not to this package.
package mode
