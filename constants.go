package main

import "time"

type Mode int

const (
	ModeNormal Mode = iota
	ModeMove
	ModeResize
	ModeLine
	ModeTextInput
	ModeFileInput
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	case ModeResize:
		return "RESIZE"
	case ModeLine:
		return "LINE"
	case ModeTextInput:
		return "TEXT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

type FileOperation int

const (
	FileOpSaveTXT FileOperation = iota
	FileOpSavePNG
)

type ConfirmAction int

const (
	ConfirmDelete ConfirmAction = iota
	ConfirmQuit
)

const (
	newRectWidth  = 8
	newRectHeight = 3

	statusTimeout = 3 * time.Second
)
