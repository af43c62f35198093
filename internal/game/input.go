package game

import "github.com/gdamore/tcell/v2"

// Command is one decoded player input.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdPickUp
	CmdOpenInventory
	CmdConsumeCorpse
	CmdToggleFullscreen
	CmdQuit
)

// CommandFor maps a key event to a Command. Arrows and vi keys both move.
func CommandFor(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdMoveUp
	case tcell.KeyDown:
		return CmdMoveDown
	case tcell.KeyLeft:
		return CmdMoveLeft
	case tcell.KeyRight:
		return CmdMoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyF11:
		return CmdToggleFullscreen
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return CmdMoveUp
		case 'j':
			return CmdMoveDown
		case 'h':
			return CmdMoveLeft
		case 'l':
			return CmdMoveRight
		case 'g', ',':
			return CmdPickUp
		case 'i':
			return CmdOpenInventory
		case 'e':
			return CmdConsumeCorpse
		case 'q':
			return CmdQuit
		}
	}
	return CmdNone
}

// commandDelta returns the movement vector for a move command.
func commandDelta(cmd Command) (int, int) {
	switch cmd {
	case CmdMoveUp:
		return 0, -1
	case CmdMoveDown:
		return 0, 1
	case CmdMoveLeft:
		return -1, 0
	case CmdMoveRight:
		return 1, 0
	}
	return 0, 0
}
