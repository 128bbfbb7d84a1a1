package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const defaultWidth = 80

type replyKind uint8

const (
	replyStatus replyKind = iota
	replyInteger
	replyBulk
	replyList
	replyError
)

type reply struct {
	kind replyKind
	str  string
	n    int
	list []string
}

func statusReply(s string) reply { return reply{kind: replyStatus, str: s} }
func intReply(n int) reply       { return reply{kind: replyInteger, n: n} }
func bulkReply(s string) reply   { return reply{kind: replyBulk, str: s} }
func listReply(l []string) reply { return reply{kind: replyList, list: l} }
func errorReply(err error) reply { return reply{kind: replyError, str: err.Error()} }

func boolReply(b bool) reply {
	if b {
		return intReply(1)
	}
	return intReply(0)
}

// format renders the reply. Raw output is meant for pipes: one value per
// line, no decoration.
func (r reply) format(raw bool, width int) string {
	switch r.kind {
	case replyStatus:
		return r.str
	case replyInteger:
		if raw {
			return strconv.Itoa(r.n)
		}
		return fmt.Sprintf("(integer) %d", r.n)
	case replyBulk:
		if raw {
			return r.str
		}
		return strconv.Quote(r.str)
	case replyError:
		return "(error) " + r.str
	case replyList:
		if raw {
			return strings.Join(r.list, "\n")
		}
		if len(r.list) == 0 {
			return "(empty set)"
		}
		return columns(r.list, width)
	}
	return ""
}

// columns lays items out top to bottom, left to right, in as many columns
// as fit in width.
func columns(items []string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	colw := 0
	for _, it := range items {
		if n := utf8.RuneCountInString(it); n > colw {
			colw = n
		}
	}
	colw += 2

	cols := width / colw
	if cols < 1 {
		cols = 1
	}
	rows := (len(items) + cols - 1) / cols

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(items) {
				break
			}
			cell := items[i]
			if c+1 < cols && (c+1)*rows+r < len(items) {
				cell += strings.Repeat(" ", colw-utf8.RuneCountInString(cell))
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}
