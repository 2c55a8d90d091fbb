package svgpath

type Function struct {
	Name string
	Args []float64
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ParseFunctions parses a list of "name(arg, arg ...)" calls, as found in
// transform attributes. An empty string yields no functions.
func ParseFunctions(functions string) ([]*Function, error) {
	s := &state{data: functions}
	return s.parseFunctions()
}

func (s *state) parseFunctions() ([]*Function, error) {
	var functions []*Function
	// (wsp* identifier wsp* "(" wsp* number (comma-wsp number)* wsp* ")" comma-wsp?)*
	for {
		s.commaWhitespace()
		if s.peek() == 0 {
			return functions, nil
		}

		c := s.next()
		if !isLetter(c) {
			s.index--
			return functions, s.errorf("identifier must start with a letter, got %q", string(c))
		}
		start := s.index - 1
		for c := s.peek(); isLetter(c) || ('0' <= c && c <= '9') || c == '_' || c == '-'; c = s.peek() {
			s.next()
		}
		function := &Function{Name: s.data[start:s.index]}
		functions = append(functions, function)

		s.whitespace()
		if c := s.next(); c != '(' {
			return functions, s.errorf("expected \"(\", got %q", string(c))
		}

		s.whitespace()
		if s.numberAhead() {
			err := s.arguments(func() error {
				n, err := s.parseNumber()
				if err != nil {
					return err
				}
				function.Args = append(function.Args, n)
				return nil
			})
			if err != nil {
				return functions, err
			}
		}

		s.whitespace()
		if c := s.next(); c != ')' {
			return functions, s.errorf("expected \")\", got %q", string(c))
		}
	}
}
