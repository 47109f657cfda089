package tui

import (
	"os"
	"strings"
	"sync"
)

// The TUI can't pick the user's font, but it can choose between Unicode and
// ASCII glyphs for its affordances (twisties, bullets, the move-mode grab
// marker) for terminals that render some glyphs poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NOUS_TUI_GLYPHS"))) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphTwistyCollapsed() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphTwistyExpanded() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "▾"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphGrab() string {
	if glyphs() == glyphSetASCII {
		return "<=>"
	}
	return "↕"
}

func glyphFolder() string {
	if glyphs() == glyphSetASCII {
		return "[+]"
	}
	return "▣"
}

func glyphRoot() string {
	if glyphs() == glyphSetASCII {
		return "~"
	}
	return "⌂"
}
