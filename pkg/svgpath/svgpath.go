// Package svgpath reads SVG path data, as written by the stroke capture
// page or any vector editor, into strokes.
//
// The accepted grammar is the moveto, lineto, horizontal and vertical
// lineto, cubic curveto and closepath subset of the SVG path syntax, in
// both absolute and relative forms. Numbers follow the SVG number
// production: optional sign, optional fraction, optional exponent.
package svgpath

import (
	"fmt"
	"strconv"
)

type Command byte

const (
	LineTo    Command = 'L'
	CurveTo   Command = 'C'
	ClosePath Command = 'Z'
)

func (c Command) String() string {
	return string(c)
}

// DrawTo is one segment of a subpath, in absolute coordinates. X1/Y1 and
// X2/Y2 are the control points of a CurveTo. A ClosePath ends at the
// subpath start.
type DrawTo struct {
	Command Command
	X, Y    float64
	X1, Y1  float64
	X2, Y2  float64
}

// SubPath starts at X, Y and runs through DrawTo.
type SubPath struct {
	X, Y   float64
	DrawTo []*DrawTo
}

// SyntaxError reports malformed path data. Offset is the byte position of
// the problem.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: at offset %d: %s", e.Offset, e.Msg)
}

type state struct {
	data     string
	index    int
	subPaths []*SubPath
	group    *SubPath
	currentX float64
	currentY float64
	// start of the last subpath, where a closepath returns to
	startX, startY float64
}

// Parse parses a path data string.
func Parse(data string) ([]*SubPath, error) {
	s := &state{data: data}
	err := s.parse()
	return s.subPaths, err
}

func (s *state) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: s.index, Msg: fmt.Sprintf(format, args...)}
}

func (s *state) parse() error {
	s.whitespace()
	if s.peek() == 0 {
		return nil
	}
	if c := s.peek(); c != 'M' && c != 'm' {
		return s.errorf("path data must start with a moveto, got %q", string(c))
	}
	for {
		s.whitespace()
		c := s.peek()
		if c == 0 {
			return nil
		}
		var err error
		switch c {
		case 'M', 'm':
			err = s.parseMoveTo()
		case 'L', 'l':
			err = s.parseLineTo()
		case 'H', 'h':
			err = s.parseAxisLineTo(true)
		case 'V', 'v':
			err = s.parseAxisLineTo(false)
		case 'C', 'c':
			err = s.parseCurveTo()
		case 'Z', 'z':
			s.parseClosePath()
		default:
			return s.errorf("unsupported command %q", string(c))
		}
		if err != nil {
			return err
		}
	}
}

// arguments repeatedly parses one argument group with parse until no more
// groups follow. At least one group is required.
func (s *state) arguments(parse func() error) error {
	if err := parse(); err != nil {
		return err
	}
	for {
		saved := s.index
		s.commaWhitespace()
		if !s.numberAhead() {
			s.index = saved
			return nil
		}
		if err := parse(); err != nil {
			return err
		}
	}
}

func (s *state) parseMoveTo() error {
	relative := s.next() == 'm'
	s.whitespace()

	x, y, err := s.parseCoordinatePair()
	if err != nil {
		return err
	}
	if relative {
		x += s.currentX
		y += s.currentY
	}
	s.currentX, s.currentY = x, y
	s.startX, s.startY = x, y
	s.group = &SubPath{X: x, Y: y}
	s.subPaths = append(s.subPaths, s.group)

	// Further pairs are implicit linetos.
	saved := s.index
	s.commaWhitespace()
	if !s.numberAhead() {
		s.index = saved
		return nil
	}
	return s.arguments(func() error { return s.lineTo(relative) })
}

// ensureSubPath starts a subpath at the current point when a drawing
// command follows a closepath directly.
func (s *state) ensureSubPath() {
	if s.group == nil {
		s.group = &SubPath{X: s.currentX, Y: s.currentY}
		s.startX, s.startY = s.currentX, s.currentY
		s.subPaths = append(s.subPaths, s.group)
	}
}

func (s *state) add(d *DrawTo) {
	s.group.DrawTo = append(s.group.DrawTo, d)
	s.currentX, s.currentY = d.X, d.Y
}

func (s *state) lineTo(relative bool) error {
	x, y, err := s.parseCoordinatePair()
	if err != nil {
		return err
	}
	if relative {
		x += s.currentX
		y += s.currentY
	}
	s.add(&DrawTo{Command: LineTo, X: x, Y: y})
	return nil
}

func (s *state) parseLineTo() error {
	relative := s.next() == 'l'
	s.whitespace()
	s.ensureSubPath()
	return s.arguments(func() error { return s.lineTo(relative) })
}

func (s *state) parseAxisLineTo(horizontal bool) error {
	c := s.next()
	relative := c == 'h' || c == 'v'
	s.whitespace()
	s.ensureSubPath()
	return s.arguments(func() error {
		n, err := s.parseNumber()
		if err != nil {
			return err
		}
		x, y := s.currentX, s.currentY
		switch {
		case horizontal && relative:
			x += n
		case horizontal:
			x = n
		case relative:
			y += n
		default:
			y = n
		}
		s.add(&DrawTo{Command: LineTo, X: x, Y: y})
		return nil
	})
}

func (s *state) parseCurveTo() error {
	relative := s.next() == 'c'
	s.whitespace()
	s.ensureSubPath()
	return s.arguments(func() error {
		var coords [6]float64
		for i := 0; i < 6; i += 2 {
			if i > 0 {
				s.commaWhitespace()
			}
			x, y, err := s.parseCoordinatePair()
			if err != nil {
				return err
			}
			if relative {
				x += s.currentX
				y += s.currentY
			}
			coords[i], coords[i+1] = x, y
		}
		s.add(&DrawTo{
			Command: CurveTo,
			X1:      coords[0], Y1: coords[1],
			X2: coords[2], Y2: coords[3],
			X: coords[4], Y: coords[5],
		})
		return nil
	})
}

func (s *state) parseClosePath() {
	s.next()
	if s.group != nil {
		s.group.DrawTo = append(s.group.DrawTo,
			&DrawTo{Command: ClosePath, X: s.startX, Y: s.startY})
	}
	s.currentX, s.currentY = s.startX, s.startY
	s.group = nil
}

// parseCoordinatePair parses "coordinate comma-wsp? coordinate".
func (s *state) parseCoordinatePair() (float64, float64, error) {
	x, err := s.parseNumber()
	if err != nil {
		return 0, 0, err
	}
	s.commaWhitespace()
	y, err := s.parseNumber()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// numberAhead reports whether a number starts at the current position.
func (s *state) numberAhead() bool {
	c := s.peek()
	return c == '+' || c == '-' || c == '.' || ('0' <= c && c <= '9')
}

// parseNumber parses sign? (digits | digits? "." digits | digits ".")
// exponent?
func (s *state) parseNumber() (float64, error) {
	start := s.index
	if c := s.peek(); c == '+' || c == '-' {
		s.next()
	}
	intDigits := s.digits()
	fracDigits := 0
	if s.peek() == '.' {
		s.next()
		fracDigits = s.digits()
	}
	if intDigits == 0 && fracDigits == 0 {
		s.index = start
		return 0, s.errorf("expected a number, got %q", s.rest())
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		saved := s.index
		s.next()
		if c := s.peek(); c == '+' || c == '-' {
			s.next()
		}
		if s.digits() == 0 {
			s.index = saved
			return 0, s.errorf("expected an exponent")
		}
	}
	n, err := strconv.ParseFloat(s.data[start:s.index], 64)
	if err != nil {
		return 0, &SyntaxError{Offset: start, Msg: err.Error()}
	}
	return n, nil
}

func (s *state) digits() int {
	count := 0
	for c := s.peek(); '0' <= c && c <= '9'; c = s.peek() {
		s.next()
		count++
	}
	return count
}

// whitespace consumes "wsp*" and returns the number of bytes consumed.
func (s *state) whitespace() int {
	count := 0
	for {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.next()
			count++
		default:
			return count
		}
	}
}

// commaWhitespace consumes an optional "(wsp+ comma? wsp*) | (comma wsp*)".
func (s *state) commaWhitespace() bool {
	if s.whitespace() > 0 || s.peek() == ',' {
		if s.peek() == ',' {
			s.next()
		}
		s.whitespace()
		return true
	}
	return false
}

// peek returns the next byte without consuming it, or 0 at the end.
func (s *state) peek() byte {
	if s.index < len(s.data) {
		return s.data[s.index]
	}
	return 0
}

// next consumes and returns the next byte, or 0 at the end.
func (s *state) next() byte {
	if s.index < len(s.data) {
		i := s.index
		s.index++
		return s.data[i]
	}
	return 0
}

func (s *state) rest() string {
	rest := s.data[s.index:]
	if len(rest) > 10 {
		rest = rest[:10] + "..."
	}
	return rest
}
