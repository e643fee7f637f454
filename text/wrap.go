package text

import "unicode"

// Wrap produces the sequence of display lines for t at the given target
// width according to overflow. Clip and the three ellipsis variants pass
// each source line through unchanged (clipping/ellipsis is applied at
// render time by Render); WrapChar and WrapWord expand each source line
// into one or more display lines. A non-positive width is treated as a
// no-op: every source line passes through.
func Wrap(t Text, width int, overflow Overflow) []Line {
	if width <= 0 {
		return t.Lines
	}
	switch overflow {
	case WrapChar:
		var out []Line
		for _, l := range t.Lines {
			out = append(out, wrapChar(l, width)...)
		}
		return out
	case WrapWord:
		var out []Line
		for _, l := range t.Lines {
			out = append(out, wrapWord(l, width)...)
		}
		return out
	default:
		return t.Lines
	}
}

// wrapChar greedily packs grapheme clusters onto each display line,
// never exceeding width and never splitting a cluster (so a wide head
// and its continuation always land on the same line). A line already at
// or under width is returned unchanged as its single token.
func wrapChar(l Line, width int) []Line {
	toks := tokenize(l)
	if len(toks) == 0 {
		return []Line{l}
	}
	var lines []Line
	var cur []token
	curW := 0
	for _, tk := range toks {
		if tk.width > 0 && curW+tk.width > width && len(cur) > 0 {
			lines = append(lines, tokensToLine(cur))
			cur = nil
			curW = 0
		}
		cur = append(cur, tk)
		curW += tk.width
	}
	if len(cur) > 0 {
		lines = append(lines, tokensToLine(cur))
	}
	if len(lines) == 0 {
		lines = []Line{{}}
	}
	return lines
}

// wrapWord wraps on whitespace-preserving boundaries: maximal runs of
// whitespace and maximal runs of non-whitespace are treated as
// indivisible segments unless a single segment itself exceeds width, in
// which case that segment alone falls back to character wrap. Leading
// whitespace on a continuation line is dropped; trailing whitespace on a
// completed line is stripped.
func wrapWord(l Line, width int) []Line {
	toks := tokenize(l)
	if len(toks) == 0 {
		return []Line{l}
	}
	segments := segmentByWhitespace(toks)

	var lines []Line
	var cur []token
	curW := 0

	flush := func() {
		cur = stripTrailingWhitespace(cur)
		lines = append(lines, tokensToLine(cur))
		cur = nil
		curW = 0
	}

	for _, seg := range segments {
		segW := tokensWidth(seg)
		isWS := isWhitespaceSegment(seg)

		if isWS {
			if len(cur) == 0 {
				continue // drop leading whitespace on a fresh line
			}
			if curW+segW <= width {
				cur = append(cur, seg...)
				curW += segW
				continue
			}
			flush()
			continue
		}

		if curW+segW <= width {
			cur = append(cur, seg...)
			curW += segW
			continue
		}
		if len(cur) > 0 {
			flush()
		}
		if segW <= width {
			cur = append(cur, seg...)
			curW = segW
			continue
		}
		// The token itself is wider than the target: character-wrap it
		// alone and carry its remainder forward as the new current line.
		sub := wrapChar(tokensToLine(seg), width)
		for i, sl := range sub {
			if i < len(sub)-1 {
				lines = append(lines, sl)
			} else {
				cur = tokenize(sl)
				curW = tokensWidth(cur)
			}
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func segmentByWhitespace(toks []token) [][]token {
	var segments [][]token
	start := 0
	for i := 1; i <= len(toks); i++ {
		if i == len(toks) || isWhitespaceCluster(toks[i].text) != isWhitespaceCluster(toks[start].text) {
			segments = append(segments, toks[start:i])
			start = i
		}
	}
	return segments
}

func isWhitespaceSegment(seg []token) bool {
	if len(seg) == 0 {
		return false
	}
	return isWhitespaceCluster(seg[0].text)
}

func isWhitespaceCluster(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func stripTrailingWhitespace(toks []token) []token {
	end := len(toks)
	for end > 0 && isWhitespaceCluster(toks[end-1].text) {
		end--
	}
	return toks[:end]
}
