// Package expand resolves filename templates.
//
// A template is plain text with ${...} placeholders. The body of a
// placeholder runs from "${" up to the first following "}" and selects
// the substituted value:
//
//	${NAME}            the base name entered by the user
//	${USER}            the operating-system user
//	${NOW}             the invocation timestamp as yyyy-MM-dd_HH-mm-ss
//	${NOW;<pattern>}   the invocation timestamp in a custom date pattern
//
// Any other body resolves to the empty string. Expansion never fails and
// substituted text is never scanned again, so a base name containing
// "${...}" lands in the result verbatim.
package expand
