package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) getCurrentBuffer() *Buffer {
	if len(m.buffers) == 0 {
		return nil
	}
	return &m.buffers[m.currentBufferIndex]
}

func (m *model) addNewBuffer(pos Position, filename string) {
	buffer := Buffer{
		history:  NewHistory(pos),
		tool:     ToolState{},
		filename: filename,
	}
	m.buffers = append(m.buffers, buffer)
	m.currentBufferIndex = len(m.buffers) - 1
	m.preview = nil
}

// resetBuffer replaces the buffer's position and drops its undo history.
func (m *model) resetBuffer(pos Position, filename string) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	buf.history = NewHistory(pos)
	buf.tool = ToolState{}
	buf.filename = filename
	m.preview = nil
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanClipboardText strips control characters and normalizes line endings
// so a pasted position survives whatever the clipboard did to it.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}
