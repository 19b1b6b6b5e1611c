package expand

import (
	"strconv"
	"strings"
	"time"
)

// FormatDate renders t using a letter-based date pattern such as
// "yyyy-MM-dd_HH-mm-ss".
//
// A run of one pattern letter is a field whose width is the run length.
// Text between single quotes is copied literally, "''" is a quote, and
// every other non-letter character is copied as is. Letters without a
// meaning render as nothing. An empty pattern yields "".
func FormatDate(pattern string, t time.Time) string {
	var out strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		c := runes[i]

		switch {
		case c == '\'':
			i = copyQuoted(&out, runes, i)
		case isPatternLetter(c):
			n := 1
			for i+n < len(runes) && runes[i+n] == c {
				n++
			}
			out.WriteString(formatField(c, n, t))
			i += n
		default:
			out.WriteRune(c)
			i++
		}
	}

	return out.String()
}

// copyQuoted handles a quote at runes[i] and returns the index after it.
// An unterminated quote makes the rest of the pattern literal.
func copyQuoted(out *strings.Builder, runes []rune, i int) int {
	if i+1 < len(runes) && runes[i+1] == '\'' {
		out.WriteRune('\'')
		return i + 2
	}

	i++
	for i < len(runes) {
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				out.WriteRune('\'')
				i += 2
				continue
			}
			return i + 1
		}
		out.WriteRune(runes[i])
		i++
	}
	return i
}

func isPatternLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func formatField(letter rune, n int, t time.Time) string {
	switch letter {
	case 'G':
		if t.Year() <= 0 {
			return "BC"
		}
		return "AD"
	case 'u':
		return pad(isoWeekday(t), n)
	case 'y':
		return formatYear(t.Year(), n)
	case 'Y':
		year, _ := t.ISOWeek()
		return formatYear(year, n)
	case 'M', 'L':
		switch {
		case n >= 4:
			return t.Month().String()
		case n == 3:
			return t.Month().String()[:3]
		}
		return pad(int(t.Month()), n)
	case 'd':
		return pad(t.Day(), n)
	case 'D':
		return pad(t.YearDay(), n)
	case 'F':
		return pad((t.Day()-1)/7+1, n)
	case 'W':
		return pad(weekOfMonth(t), n)
	case 'E':
		if n >= 4 {
			return t.Weekday().String()
		}
		return t.Weekday().String()[:3]
	case 'a':
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case 'H':
		return pad(t.Hour(), n)
	case 'k':
		if t.Hour() == 0 {
			return pad(24, n)
		}
		return pad(t.Hour(), n)
	case 'K':
		return pad(t.Hour()%12, n)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, n)
	case 'm':
		return pad(t.Minute(), n)
	case 's':
		return pad(t.Second(), n)
	case 'S':
		return pad(t.Nanosecond()/int(time.Millisecond), n)
	case 'w':
		_, week := t.ISOWeek()
		return pad(week, n)
	case 'z':
		name, _ := t.Zone()
		return name
	case 'Z':
		return t.Format("-0700")
	case 'X':
		if _, offset := t.Zone(); offset == 0 {
			return "Z"
		}
		switch n {
		case 1:
			return t.Format("-07")
		case 2:
			return t.Format("-0700")
		}
		return t.Format("-07:00")
	}
	return ""
}

func formatYear(year, n int) string {
	if n == 2 {
		return pad(year%100, 2)
	}
	return pad(year, n)
}

// weekOfMonth counts weeks starting on Sunday, the first partial week being 1
func weekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return (t.Day()+int(first.Weekday())-1)/7 + 1
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	neg := v < 0
	if neg {
		s = s[1:]
	}
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if neg {
		return "-" + s
	}
	return s
}
