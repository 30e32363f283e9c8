package keymap

import (
	"github.com/dshills/keychord/internal/input/action"
	"github.com/dshills/keychord/internal/input/mode"
)

// Default builds the built-in binding set for every mode.
// Each call returns a fresh, independent Set.
func Default() Set {
	normal := DefaultNormal()

	return Set{
		mode.Normal: normal,
		mode.Select: selectFrom(normal),
		mode.Insert: DefaultInsert(),
	}
}

// DefaultNormal returns the default normal mode table.
func DefaultNormal() Table {
	return NewTable(normalBindings()...)
}

// selectFrom derives the select mode table from a copy of normal, with
// motions replaced by their selection-extending variants.
func selectFrom(normal Table) Table {
	t := normal.Clone()
	t.Overlay(selectOverrides()...)
	return t
}

// DefaultInsert returns the default insert mode table.
func DefaultInsert() Table {
	return NewTable(insertBindings()...)
}

// normalBindings lists normal mode bindings in insertion order.
// Some chords are bound twice; the later binding is the effective one.
func normalBindings() []Binding {
	return []Binding{
		// Movement - basic
		Bind("h", action.MoveCharLeft),
		Bind("j", action.MoveLineDown),
		Bind("k", action.MoveLineUp),
		Bind("l", action.MoveCharRight),
		Bind("Left", action.MoveCharLeft),
		Bind("Down", action.MoveLineDown),
		Bind("Up", action.MoveLineUp),
		Bind("Right", action.MoveCharRight),

		// Movement - find
		Bind("t", action.FindTillChar),
		Bind("f", action.FindNextChar),
		Bind("T", action.TillPrevChar),
		Bind("F", action.FindPrevChar),

		Bind("r", action.Replace),
		Bind("R", action.ReplaceWithYanked),

		// Movement - line and words
		Bind("Home", action.MoveLineStart),
		Bind("End", action.MoveLineEnd),
		Bind("w", action.MoveNextWordStart),
		Bind("b", action.MovePrevWordStart),
		Bind("e", action.MoveNextWordEnd),

		// Mode switching
		Bind("v", action.SelectMode),
		Bind("g", action.GotoMode),
		Bind(":", action.CommandMode),
		Bind("i", action.InsertMode),
		Bind("I", action.PrependToLine),
		Bind("a", action.AppendMode),
		Bind("A", action.AppendToLine),
		Bind("o", action.OpenBelow),
		Bind("O", action.OpenAbove),

		// Editing
		Bind("d", action.DeleteSelection),
		Bind("c", action.ChangeSelection),

		// Selection
		Bind("s", action.SelectRegex),
		Bind("A-s", action.SplitSelectionOnLines),
		Bind("S", action.SplitSelection),
		Bind(";", action.CollapseSelection),
		Bind("A-;", action.FlipSelections),
		Bind("%", action.SelectAll),
		Bind("x", action.SelectLine),
		Bind("X", action.ExtendLine),

		Bind("m", action.MatchBrackets),
		Bind("[", action.LeftBracketMode),
		Bind("]", action.RightBracketMode),

		// Search
		Bind("/", action.Search),
		Bind("n", action.SearchNext),
		Bind("N", action.ExtendSearchNext),
		Bind("*", action.SearchSelection),

		// History and registers
		Bind("u", action.Undo),
		Bind("U", action.Redo),
		Bind("y", action.Yank),
		Bind("p", action.PasteAfter),
		Bind("P", action.PasteBefore),

		Bind(">", action.Indent),
		Bind("<", action.Unindent),
		Bind("=", action.FormatSelections),
		Bind("J", action.JoinSelections),
		Bind("K", action.KeepSelections),
		Bind(" ", action.KeepPrimarySelection),

		// Scrolling
		Bind("Esc", action.NormalMode),
		Bind("PageUp", action.PageUp),
		Bind("C-b", action.PageUp),
		Bind("PageDown", action.PageDown),
		Bind("C-f", action.PageDown),
		Bind("C-u", action.HalfPageUp),
		Bind("C-d", action.HalfPageDown),

		Bind("C-w", action.WindowMode),
		Bind("C-c", action.ToggleComments),

		// K and space are rebound here.
		Bind("K", action.Hover),

		// Jumplist
		Bind("Tab", action.JumpForward),
		Bind("C-o", action.JumpBackward),

		Bind(" ", action.SpaceMode),
		Bind("z", action.ViewMode),
		Bind(`"`, action.SelectRegister),
	}
}

// selectOverrides lists the select mode entries applied over a copy of the
// normal mode table.
func selectOverrides() []Binding {
	return []Binding{
		Bind("h", action.ExtendCharLeft),
		Bind("j", action.ExtendLineDown),
		Bind("k", action.ExtendLineUp),
		Bind("l", action.ExtendCharRight),
		Bind("Left", action.ExtendCharLeft),
		Bind("Down", action.ExtendLineDown),
		Bind("Up", action.ExtendLineUp),
		Bind("Right", action.ExtendCharRight),

		Bind("w", action.ExtendNextWordStart),
		Bind("b", action.ExtendPrevWordStart),
		Bind("e", action.ExtendNextWordEnd),

		Bind("t", action.ExtendTillChar),
		Bind("f", action.ExtendNextChar),
		Bind("T", action.ExtendTillPrevChar),
		Bind("F", action.ExtendPrevChar),

		Bind("Home", action.ExtendLineStart),
		Bind("End", action.ExtendLineEnd),
		Bind("Esc", action.ExitSelectMode),
	}
}

// insertBindings lists insert mode bindings.
func insertBindings() []Binding {
	return []Binding{
		Bind("Esc", action.NormalMode),
		Bind("Bs", action.DeleteCharBackward),
		Bind("Del", action.DeleteCharForward),
		Bind("Enter", action.InsertNewline),
		Bind("Tab", action.InsertTab),
		Bind("C-x", action.Completion),
		Bind("C-w", action.DeleteWordBackward),
	}
}
