package cli

import (
	"bufio"
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/convert/convpos"
	"evilboard/src/editor"
	"evilboard/src/editor/stransform"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// EditorCLI drives one editing session from a terminal.
type EditorCLI struct {
	session *editor.Session
	board   *board.Board
	in      *os.File
	out     io.Writer

	view   Viewport
	cursor base.Coord
	anchor *base.Coord
}

func NewEditorCLI(s *editor.Session) *EditorCLI {
	return &EditorCLI{
		session: s,
		board:   s.Board(),
		in:      os.Stdin,
		out:     os.Stdout,
		view:    NewViewport(base.NewCoord(4, 4), 24, 16),
		cursor:  base.NewCoord(4, 4),
	}
}

// raw processing
// - arrow keys move the cursor, viewport follows
// - space anchors/sets the selection, ESC clears it
// - [ ] rotate, h/v flip, i invert, x delete, c/p copy/paste, f fill
// - m moves the selection onto the cursor, u/r undo/redo
// - : opens a line command, w copies the position to the clipboard
// - q or Ctrl+C to exit
func (c *EditorCLI) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	c.redraw()
	fmt.Fprint(c.out, "\r\narrows move, space selects, : for commands, q to quit\r\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprintln(c.out, "\r\nInterrupted")
			return nil
		}
		if b == 0x1b { // escape sequence, possibly an arrow key
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 != '[' {
				// bare ESC: drop the selection
				c.anchor = nil
				c.session.ClearSelection()
				c.redraw()
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			switch b2 {
			case 'A':
				c.moveCursor(0, 1)
			case 'B':
				c.moveCursor(0, -1)
			case 'C':
				c.moveCursor(1, 0)
			case 'D':
				c.moveCursor(-1, 0)
			}
			continue
		}

		switch b {
		case 'q', 'Q':
			fmt.Fprintln(c.out, "\r\nQuitting")
			return nil
		case ' ':
			if c.anchor == nil {
				a := c.cursor.Clone()
				c.anchor = &a
				c.session.SetSelection(a, a)
			} else {
				c.session.SetSelection(*c.anchor, c.cursor)
				c.anchor = nil
			}
			c.redraw()
		case '[':
			c.session.Rotate(false)
			c.redraw()
		case ']':
			c.session.Rotate(true)
			c.redraw()
		case 'h':
			c.session.FlipHorizontal()
			c.redraw()
		case 'v':
			c.session.FlipVertical()
			c.redraw()
		case 'i':
			c.session.InvertColor()
			c.redraw()
		case 'x':
			if _, ok := c.session.Selection(); ok {
				c.session.Delete()
			} else {
				c.session.DeletePiece(c.cursor)
			}
			c.redraw()
		case 'c':
			c.session.Copy()
			c.redraw()
		case 'p':
			c.pasteAtCursor()
			c.redraw()
		case 'f':
			c.fillToCursor()
			c.redraw()
		case 'm':
			c.moveSelectionToCursor()
			c.redraw()
		case 'u':
			c.session.Undo()
			c.redraw()
		case 'r':
			c.session.Redo()
			c.redraw()
		case 'w':
			pos := convpos.ConvertBoardToPosition(c.board)
			if err := clipboard.WriteAll(pos); err != nil {
				fmt.Fprintf(c.out, "\r\nclipboard: %v\r\n", err)
			} else {
				fmt.Fprint(c.out, "\r\nposition copied\r\n")
			}
		case ':':
			line, err := c.readLine(r)
			if err != nil {
				return err
			}
			if quit := c.runCommand(line); quit {
				return nil
			}
			c.redraw()
		}
	}
}

// RunLineMode is the fallback for non-terminal input: one command per
// line, same verbs as the ':' prompt.
func (c *EditorCLI) RunLineMode() error {
	sc := bufio.NewScanner(c.in)
	c.redraw()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if quit := c.runCommand(line); quit {
			return nil
		}
		c.redraw()
	}
	return sc.Err()
}

func (c *EditorCLI) redraw() {
	fmt.Fprint(c.out, "\033[2J\033[H")
	var sel *base.BBox
	if box, ok := c.session.Selection(); ok {
		sel = &box
	}
	PrintViewport(c.out, c.board, c.view, sel, &c.cursor)
	fmt.Fprintf(c.out, "cursor %s  pieces %d", c.cursor, c.board.Count())
	if sel != nil {
		fmt.Fprintf(c.out, "  sel %s", sel)
	}
	if c.session.CanUndo() {
		fmt.Fprint(c.out, "  [undo]")
	}
	if c.session.CanRedo() {
		fmt.Fprint(c.out, "  [redo]")
	}
	fmt.Fprint(c.out, "\r\n")
}

func (c *EditorCLI) moveCursor(dx, dy int64) {
	c.cursor = c.cursor.Add(base.NewCoord(dx, dy))
	c.view.Follow(c.cursor)
	if c.anchor != nil {
		c.session.SetSelection(*c.anchor, c.cursor)
	}
	c.redraw()
}

// pasteAtCursor anchors the clipboard's tiling at the cursor. The target
// is the current selection when one is set, otherwise a single square at
// the cursor, which pastes exactly one copy.
func (c *EditorCLI) pasteAtCursor() {
	target, ok := c.session.Selection()
	if !ok {
		target = base.NewBBox(c.cursor, c.cursor)
	}
	c.session.Paste(target)
}

// fillToCursor tiles the selection toward the cursor: sideways when the
// cursor is left or right of the box, otherwise up or down.
func (c *EditorCLI) fillToCursor() {
	sel, ok := c.session.Selection()
	if !ok {
		return
	}
	one := big.NewInt(1)
	var fill base.BBox
	switch {
	case c.cursor.X.Cmp(sel.Right) > 0:
		fill = base.NewBBox(
			base.Coord{X: new(big.Int).Add(sel.Right, one), Y: sel.Bottom},
			base.Coord{X: c.cursor.X, Y: sel.Top})
	case c.cursor.X.Cmp(sel.Left) < 0:
		fill = base.NewBBox(
			base.Coord{X: c.cursor.X, Y: sel.Bottom},
			base.Coord{X: new(big.Int).Sub(sel.Left, one), Y: sel.Top})
	case c.cursor.Y.Cmp(sel.Top) > 0:
		fill = base.NewBBox(
			base.Coord{X: sel.Left, Y: new(big.Int).Add(sel.Top, one)},
			base.Coord{X: sel.Right, Y: c.cursor.Y})
	case c.cursor.Y.Cmp(sel.Bottom) < 0:
		fill = base.NewBBox(
			base.Coord{X: sel.Left, Y: c.cursor.Y},
			base.Coord{X: sel.Right, Y: new(big.Int).Sub(sel.Bottom, one)})
	default:
		return // cursor inside the selection
	}
	c.session.Fill(fill)
}

func (c *EditorCLI) moveSelectionToCursor() {
	sel, ok := c.session.Selection()
	if !ok {
		return
	}
	bl, _ := sel.Corners()
	c.session.Translate(c.cursor.Sub(bl))
}

func (c *EditorCLI) readLine(r *bufio.Reader) (string, error) {
	fmt.Fprint(c.out, "\r\n:")
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '\r' || b == '\n' {
			return strings.TrimSpace(sb.String()), nil
		}
		if b == 0x1b {
			return "", nil
		}
		if b >= 32 && b <= 126 {
			sb.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

// runCommand executes one line command. Returns true on quit.
func (c *EditorCLI) runCommand(line string) bool {
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "q", "quit":
		return true
	case "place":
		// place <letter> <x,y> [+]
		if len(fields) < 3 {
			c.report("usage: place <letter> <x,y> [+]")
			return false
		}
		t := base.ConvertPieceFromRune(rune(fields[1][0]))
		if t == base.InvalidPiece {
			c.report("unknown piece letter %q", fields[1])
			return false
		}
		coord, err := base.ParseCoord(fields[2])
		if err != nil {
			c.report("%v", err)
			return false
		}
		rights := len(fields) > 3 && fields[3] == "+"
		c.session.PlacePiece(coord, t, rights)
	case "rm":
		if len(fields) < 2 {
			c.report("usage: rm <x,y>")
			return false
		}
		coord, err := base.ParseCoord(fields[1])
		if err != nil {
			c.report("%v", err)
			return false
		}
		c.session.DeletePiece(coord)
	case "sel":
		if len(fields) < 3 {
			c.report("usage: sel <x,y> <x,y>")
			return false
		}
		c1, err1 := base.ParseCoord(fields[1])
		c2, err2 := base.ParseCoord(fields[2])
		if err1 != nil || err2 != nil {
			c.report("bad corners")
			return false
		}
		c.session.SetSelection(c1, c2)
	case "unsel":
		c.session.ClearSelection()
	case "move":
		if len(fields) < 2 {
			c.report("usage: move <dx,dy>")
			return false
		}
		vec, err := base.ParseCoord(fields[1])
		if err != nil {
			c.report("%v", err)
			return false
		}
		c.session.Translate(vec)
	case "rot":
		cw := len(fields) < 2 || fields[1] != "ccw"
		c.session.Rotate(cw)
	case "flip":
		if len(fields) > 1 && fields[1] == "v" {
			c.session.FlipVertical()
		} else {
			c.session.FlipHorizontal()
		}
	case "invert":
		c.session.InvertColor()
	case "del":
		c.session.Delete()
	case "copy":
		c.session.Copy()
	case "paste":
		if len(fields) > 1 {
			coord, err := base.ParseCoord(fields[1])
			if err != nil {
				c.report("%v", err)
				return false
			}
			c.session.Paste(base.NewBBox(coord, coord))
		} else {
			c.pasteAtCursor()
		}
	case "fill":
		if len(fields) < 3 {
			c.report("usage: fill <x,y> <x,y>")
			return false
		}
		c1, err1 := base.ParseCoord(fields[1])
		c2, err2 := base.ParseCoord(fields[2])
		if err1 != nil || err2 != nil {
			c.report("bad corners")
			return false
		}
		c.session.Fill(base.NewBBox(c1, c2))
	case "goto":
		if len(fields) < 2 {
			c.report("usage: goto <x,y>")
			return false
		}
		coord, err := base.ParseCoord(fields[1])
		if err != nil {
			c.report("%v", err)
			return false
		}
		c.cursor = coord
		c.view = NewViewport(coord, c.view.W, c.view.H)
	case "undo":
		c.session.Undo()
	case "redo":
		c.session.Redo()
	case "pos":
		c.report("%s", convpos.ConvertBoardToPosition(c.board))
	case "export":
		// selection as a position fragment
		if sel, ok := c.session.Selection(); ok {
			pieces := stransform.PiecesInBox(c.board, sel)
			c.report("%s", convpos.FormatRegion(c.board, pieces))
		} else {
			c.report("no selection")
		}
	default:
		c.report("unknown command %q", fields[0])
	}
	return false
}

func (c *EditorCLI) report(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "\r\n"+format+"\r\n", args...)
}
