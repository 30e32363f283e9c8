// Package action names the editor operations that key bindings resolve to.
//
// An action is an identifier only. Executing it is the job of the editor's
// command dispatcher; this package just lists the built-in names with help
// text so bindings can be documented.
package action

// Name identifies an editor action, such as "cursor.moveLeft".
// Names are compared by value.
type Name string

// String returns the action name.
func (n Name) String() string {
	return string(n)
}

// Cursor movement.
const (
	MoveCharLeft      Name = "cursor.moveLeft"
	MoveLineDown      Name = "cursor.moveDown"
	MoveLineUp        Name = "cursor.moveUp"
	MoveCharRight     Name = "cursor.moveRight"
	MoveLineStart     Name = "cursor.lineStart"
	MoveLineEnd       Name = "cursor.lineEnd"
	MoveNextWordStart Name = "cursor.nextWordStart"
	MovePrevWordStart Name = "cursor.prevWordStart"
	MoveNextWordEnd   Name = "cursor.nextWordEnd"
	FindTillChar      Name = "cursor.tillChar"
	FindNextChar      Name = "cursor.findChar"
	TillPrevChar      Name = "cursor.tillPrevChar"
	FindPrevChar      Name = "cursor.findPrevChar"
	MatchBrackets     Name = "cursor.matchBrackets"
	JumpForward       Name = "jump.forward"
	JumpBackward      Name = "jump.backward"
)

// Selection extension, used by select mode.
const (
	ExtendCharLeft      Name = "selection.extendLeft"
	ExtendLineDown      Name = "selection.extendDown"
	ExtendLineUp        Name = "selection.extendUp"
	ExtendCharRight     Name = "selection.extendRight"
	ExtendLineStart     Name = "selection.extendLineStart"
	ExtendLineEnd       Name = "selection.extendLineEnd"
	ExtendNextWordStart Name = "selection.extendNextWordStart"
	ExtendPrevWordStart Name = "selection.extendPrevWordStart"
	ExtendNextWordEnd   Name = "selection.extendNextWordEnd"
	ExtendTillChar      Name = "selection.extendTillChar"
	ExtendNextChar      Name = "selection.extendFindChar"
	ExtendTillPrevChar  Name = "selection.extendTillPrevChar"
	ExtendPrevChar      Name = "selection.extendFindPrevChar"
)

// Selection manipulation.
const (
	SelectRegex           Name = "selection.selectRegex"
	SplitSelectionOnLines Name = "selection.splitOnNewline"
	SplitSelection        Name = "selection.split"
	CollapseSelection     Name = "selection.collapse"
	FlipSelections        Name = "selection.flip"
	SelectAll             Name = "selection.selectAll"
	SelectLine            Name = "selection.selectLine"
	ExtendLine            Name = "selection.extendLine"
	KeepSelections        Name = "selection.keep"
	KeepPrimarySelection  Name = "selection.keepPrimary"
)

// Mode switching.
const (
	NormalMode       Name = "mode.normal"
	SelectMode       Name = "mode.select"
	ExitSelectMode   Name = "mode.exitSelect"
	InsertMode       Name = "mode.insert"
	AppendMode       Name = "mode.append"
	PrependToLine    Name = "mode.prependToLine"
	AppendToLine     Name = "mode.appendToLine"
	OpenBelow        Name = "mode.openBelow"
	OpenAbove        Name = "mode.openAbove"
	GotoMode         Name = "mode.goto"
	CommandMode      Name = "mode.command"
	WindowMode       Name = "mode.window"
	SpaceMode        Name = "mode.space"
	ViewMode         Name = "mode.view"
	LeftBracketMode  Name = "mode.leftBracket"
	RightBracketMode Name = "mode.rightBracket"
)

// Editing.
const (
	Replace           Name = "editor.replace"
	ReplaceWithYanked Name = "editor.replaceWithYanked"
	DeleteSelection   Name = "editor.deleteSelection"
	ChangeSelection   Name = "editor.changeSelection"
	Indent            Name = "editor.indent"
	Unindent          Name = "editor.unindent"
	FormatSelections  Name = "editor.formatSelections"
	JoinSelections    Name = "editor.joinSelections"
	ToggleComments    Name = "editor.toggleComments"
	Undo              Name = "history.undo"
	Redo              Name = "history.redo"
	Yank              Name = "register.yank"
	PasteAfter        Name = "register.pasteAfter"
	PasteBefore       Name = "register.pasteBefore"
	SelectRegister    Name = "register.select"
)

// Search.
const (
	Search           Name = "search.forward"
	SearchNext       Name = "search.next"
	ExtendSearchNext Name = "search.extendNext"
	SearchSelection  Name = "search.selection"
)

// View.
const (
	PageUp       Name = "view.pageUp"
	PageDown     Name = "view.pageDown"
	HalfPageUp   Name = "view.halfPageUp"
	HalfPageDown Name = "view.halfPageDown"
	Hover        Name = "lsp.hover"
	Completion   Name = "completion.trigger"
)

// Insert mode.
const (
	DeleteCharBackward Name = "insert.deleteCharBackward"
	DeleteCharForward  Name = "insert.deleteCharForward"
	DeleteWordBackward Name = "insert.deleteWordBackward"
	InsertNewline      Name = "insert.newline"
	InsertTab          Name = "insert.tab"
)
