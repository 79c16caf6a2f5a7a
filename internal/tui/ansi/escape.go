package ansi

import "github.com/charmbracelet/x/ansi"

// ConsumeEscape returns the position just past the ANSI escape sequence
// starting at i. A byte that does not start a sequence is consumed alone.
func ConsumeEscape(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	if s[i] != 0x1b {
		return i + 1
	}

	j := i + 1
	if j >= len(s) {
		return j
	}

	switch s[j] {
	case '[': // CSI
		j++
		for j < len(s) {
			c := s[j]
			j++
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
	case ']': // OSC, terminated by BEL or ST
		j++
		for j < len(s) && s[j] != 0x07 {
			if s[j] == 0x1b && j+1 < len(s) && s[j+1] == '\\' {
				j++
				break
			}
			j++
		}
		if j < len(s) {
			j++
		}
	default:
		j++
	}
	return j
}

// Strip removes all ANSI escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}
