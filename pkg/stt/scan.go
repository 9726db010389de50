package stt

import "unicode/utf8"

type scanState int

const (
	stateLiteral scanState = iota
	statePlaceholder
)

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentKey
	segmentDelimiter // "$$": an empty key
	segmentUnterminated
)

// segment is one unit produced by scan. For keys and unterminated
// fragments, offset is the position of the opening delimiter.
type segment struct {
	kind   segmentKind
	text   string
	offset int
}

// scan walks src once, left to right, and emits segments in order.
// Literal segments never contain the delimiter.
func scan(src string, delim rune, emit func(segment)) {
	width := utf8.RuneLen(delim)
	state := stateLiteral
	start := 0
	open := 0

	for i, r := range src {
		if r != delim {
			continue
		}
		switch state {
		case stateLiteral:
			if i > start {
				emit(segment{kind: segmentLiteral, text: src[start:i], offset: start})
			}
			state = statePlaceholder
			open = i
		case statePlaceholder:
			if i == start {
				emit(segment{kind: segmentDelimiter, offset: open})
			} else {
				emit(segment{kind: segmentKey, text: src[start:i], offset: open})
			}
			state = stateLiteral
		}
		start = i + width
	}

	switch state {
	case stateLiteral:
		if start < len(src) {
			emit(segment{kind: segmentLiteral, text: src[start:], offset: start})
		}
	case statePlaceholder:
		emit(segment{kind: segmentUnterminated, text: src[open:], offset: open})
	}
}
