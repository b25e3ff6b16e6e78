package game

import "fmt"

// Pattern notation: g = Correct, y = Misplaced, '-' = Wrong.
// ParsePattern also accepts 'x' and '.' for Wrong, and upper case.
func Pattern(vs []Verdict) string {
	b := make([]byte, len(vs))
	for i, v := range vs {
		switch v {
		case Correct:
			b[i] = 'g'
		case Misplaced:
			b[i] = 'y'
		case Wrong:
			b[i] = '-'
		default:
			b[i] = '?'
		}
	}
	return string(b)
}

// ParsePattern decodes a g/y/- pattern into verdicts.
func ParsePattern(s string) ([]Verdict, error) {
	out := make([]Verdict, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g', 'G':
			out[i] = Correct
		case 'y', 'Y':
			out[i] = Misplaced
		case '-', 'x', 'X', '.':
			out[i] = Wrong
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidVerdict, s[i], i)
		}
	}
	return out, nil
}
