package action

import "strings"

// Info documents a built-in action.
type Info struct {
	Name        Name
	Description string
	Category    string
}

// catalog lists the built-in actions in display order.
var catalog = []Info{
	{MoveCharLeft, "Move left", "Movement"},
	{MoveLineDown, "Move down", "Movement"},
	{MoveLineUp, "Move up", "Movement"},
	{MoveCharRight, "Move right", "Movement"},
	{MoveLineStart, "Move to line start", "Movement"},
	{MoveLineEnd, "Move to line end", "Movement"},
	{MoveNextWordStart, "Move to next word start", "Movement"},
	{MovePrevWordStart, "Move to previous word start", "Movement"},
	{MoveNextWordEnd, "Move to next word end", "Movement"},
	{FindTillChar, "Move till next char", "Movement"},
	{FindNextChar, "Move to next char", "Movement"},
	{TillPrevChar, "Move till previous char", "Movement"},
	{FindPrevChar, "Move to previous char", "Movement"},
	{MatchBrackets, "Go to matching bracket", "Movement"},
	{JumpForward, "Jump forward", "Movement"},
	{JumpBackward, "Jump backward", "Movement"},

	{ExtendCharLeft, "Extend left", "Selection"},
	{ExtendLineDown, "Extend down", "Selection"},
	{ExtendLineUp, "Extend up", "Selection"},
	{ExtendCharRight, "Extend right", "Selection"},
	{ExtendLineStart, "Extend to line start", "Selection"},
	{ExtendLineEnd, "Extend to line end", "Selection"},
	{ExtendNextWordStart, "Extend to next word start", "Selection"},
	{ExtendPrevWordStart, "Extend to previous word start", "Selection"},
	{ExtendNextWordEnd, "Extend to next word end", "Selection"},
	{ExtendTillChar, "Extend till next char", "Selection"},
	{ExtendNextChar, "Extend to next char", "Selection"},
	{ExtendTillPrevChar, "Extend till previous char", "Selection"},
	{ExtendPrevChar, "Extend to previous char", "Selection"},
	{SelectRegex, "Select regex matches", "Selection"},
	{SplitSelectionOnLines, "Split selection on newlines", "Selection"},
	{SplitSelection, "Split selection on regex", "Selection"},
	{CollapseSelection, "Collapse selection to cursor", "Selection"},
	{FlipSelections, "Flip selection anchor", "Selection"},
	{SelectAll, "Select whole buffer", "Selection"},
	{SelectLine, "Select line", "Selection"},
	{ExtendLine, "Extend to line", "Selection"},
	{KeepSelections, "Keep matching selections", "Selection"},
	{KeepPrimarySelection, "Keep primary selection", "Selection"},

	{NormalMode, "Enter normal mode", "Mode"},
	{SelectMode, "Enter select mode", "Mode"},
	{ExitSelectMode, "Exit select mode", "Mode"},
	{InsertMode, "Insert before selection", "Mode"},
	{AppendMode, "Append after selection", "Mode"},
	{PrependToLine, "Insert at line start", "Mode"},
	{AppendToLine, "Append at line end", "Mode"},
	{OpenBelow, "Open line below", "Mode"},
	{OpenAbove, "Open line above", "Mode"},
	{GotoMode, "Goto menu", "Mode"},
	{CommandMode, "Command line", "Mode"},
	{WindowMode, "Window menu", "Mode"},
	{SpaceMode, "Space menu", "Mode"},
	{ViewMode, "View menu", "Mode"},
	{LeftBracketMode, "Previous item menu", "Mode"},
	{RightBracketMode, "Next item menu", "Mode"},

	{Replace, "Replace with char", "Editing"},
	{ReplaceWithYanked, "Replace with yanked text", "Editing"},
	{DeleteSelection, "Delete selection", "Editing"},
	{ChangeSelection, "Change selection", "Editing"},
	{Indent, "Indent", "Editing"},
	{Unindent, "Unindent", "Editing"},
	{FormatSelections, "Format selections", "Editing"},
	{JoinSelections, "Join lines", "Editing"},
	{ToggleComments, "Toggle comments", "Editing"},
	{Undo, "Undo", "Editing"},
	{Redo, "Redo", "Editing"},
	{Yank, "Yank selection", "Editing"},
	{PasteAfter, "Paste after selection", "Editing"},
	{PasteBefore, "Paste before selection", "Editing"},
	{SelectRegister, "Select register", "Editing"},

	{Search, "Search", "Search"},
	{SearchNext, "Next match", "Search"},
	{ExtendSearchNext, "Add next match to selection", "Search"},
	{SearchSelection, "Search for selection", "Search"},

	{PageUp, "Page up", "View"},
	{PageDown, "Page down", "View"},
	{HalfPageUp, "Half page up", "View"},
	{HalfPageDown, "Half page down", "View"},
	{Hover, "Show documentation", "View"},
	{Completion, "Trigger completion", "Insert"},

	{DeleteCharBackward, "Delete previous char", "Insert"},
	{DeleteCharForward, "Delete next char", "Insert"},
	{DeleteWordBackward, "Delete previous word", "Insert"},
	{InsertNewline, "Insert newline", "Insert"},
	{InsertTab, "Insert tab", "Insert"},
}

var byName = func() map[Name]Info {
	m := make(map[Name]Info, len(catalog))
	for _, info := range catalog {
		m[info.Name] = info
	}
	return m
}()

// Lookup returns the documentation for a built-in action.
func Lookup(name Name) (Info, bool) {
	info, ok := byName[name]
	return info, ok
}

// Describe returns the description of an action. Unknown actions are
// described by their name.
func Describe(name Name) string {
	if info, ok := byName[name]; ok {
		return info.Description
	}
	return string(name)
}

// Category returns the category of an action. Unknown actions fall back to
// the prefix before the first dot, or "Other".
func Category(name Name) string {
	if info, ok := byName[name]; ok {
		return info.Category
	}
	if i := strings.IndexByte(string(name), '.'); i > 0 {
		return string(name[:i])
	}
	return "Other"
}

// All returns documentation for every built-in action in display order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}
