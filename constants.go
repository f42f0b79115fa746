package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeAddWhite
	ModeAddBlack
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpSavePDF
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewBoard
	ConfirmCloseBuffer
	ConfirmOverwriteFile
)

// Board-pixel space: a fixed 800x800 image with 100px tiles. Pixel y grows
// downward, so rank 1 sits at the bottom edge.
const (
	boardPixels = 800
	tilePixels  = 100
)

// Terminal footprint of the rendered board: each tile is 5 cells wide and
// 2 cells tall, with a margin for rank labels and a title row above.
const (
	tileCellWidth  = 5
	tileCellHeight = 2
	boardLeft      = 3
	boardTop       = 1
)

const positionFileExt = ".psn"
