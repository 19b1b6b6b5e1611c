package expand

import (
	"os"
	"os/user"
	"strings"
	"time"
)

const (
	// DefaultDatePattern is used by the bare ${NOW} placeholder
	DefaultDatePattern = "yyyy-MM-dd_HH-mm-ss"

	placeholderOpen  = "${"
	placeholderClose = '}'
	nowPrefix        = "NOW;"
)

// Context carries the values a single expansion may substitute.
// Timestamp is captured once so every ${NOW} family placeholder in a
// template agrees.
type Context struct {
	BaseName  string
	Timestamp time.Time
	User      string
}

// NewContext captures the current time for one expansion
func NewContext(baseName, osUser string) Context {
	return Context{
		BaseName:  baseName,
		Timestamp: time.Now(),
		User:      osUser,
	}
}

// Segment is one piece of a template: a literal run, or the body of a
// placeholder.
type Segment struct {
	Text        string
	Placeholder bool
}

// Segments splits template into literal runs and placeholder bodies in
// source order. A placeholder spans "${" to the first following "}".
// "${}" and an unterminated "${" stay literal.
func Segments(template string) []Segment {
	var segs []Segment
	var lit strings.Builder

	rest := template
	for {
		start := strings.Index(rest, placeholderOpen)
		if start < 0 {
			break
		}
		bodyStart := start + len(placeholderOpen)
		end := strings.IndexByte(rest[bodyStart:], placeholderClose)
		if end < 0 {
			break
		}
		if end == 0 {
			lit.WriteString(rest[:bodyStart])
			rest = rest[bodyStart:]
			continue
		}

		lit.WriteString(rest[:start])
		if lit.Len() > 0 {
			segs = append(segs, Segment{Text: lit.String()})
			lit.Reset()
		}
		segs = append(segs, Segment{Text: rest[bodyStart : bodyStart+end], Placeholder: true})
		rest = rest[bodyStart+end+1:]
	}

	lit.WriteString(rest)
	if lit.Len() > 0 {
		segs = append(segs, Segment{Text: lit.String()})
	}
	return segs
}

// Expand substitutes every placeholder in template, left to right.
// Substituted values are written as is and never scanned again.
func Expand(template string, ctx Context) string {
	var out strings.Builder
	out.Grow(len(template))

	for _, seg := range Segments(template) {
		if seg.Placeholder {
			out.WriteString(resolve(seg.Text, ctx))
			continue
		}
		out.WriteString(seg.Text)
	}
	return out.String()
}

// Placeholders returns the placeholder bodies of template in source order
func Placeholders(template string) []string {
	var bodies []string
	for _, seg := range Segments(template) {
		if seg.Placeholder {
			bodies = append(bodies, seg.Text)
		}
	}
	return bodies
}

// IsKnown reports whether body resolves to something other than the
// unknown-placeholder fallback
func IsKnown(body string) bool {
	switch body {
	case "NOW", "USER", "NAME":
		return true
	}
	return strings.HasPrefix(body, nowPrefix)
}

func resolve(body string, ctx Context) string {
	switch body {
	case "NOW":
		return FormatDate(DefaultDatePattern, ctx.Timestamp)
	case "USER":
		return ctx.User
	case "NAME":
		return ctx.BaseName
	}
	if pattern, ok := strings.CutPrefix(body, nowPrefix); ok {
		return FormatDate(pattern, ctx.Timestamp)
	}
	return ""
}

// OSUser returns the login name of the current user, falling back to the
// USER and USERNAME environment variables.
func OSUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}
