package depfile

import "strings"

// ParseMakeRule reads the Makefile rule GCC and Clang write for -MD:
//
//	build/main.o: src/main.c include/a.h \
//	  include/b.h
//
// Every backslash is removed, the text is split on whitespace, and the first
// token (the rule's target) is dropped. Tokens keep their original order.
//
// A record with no tokens at all carries no information and is reported as
// missing. A target with no prerequisites yields an empty, valid list.
func ParseMakeRule(data []byte) ([]string, bool) {
	tokens := strings.Fields(strings.ReplaceAll(string(data), `\`, ""))
	if len(tokens) == 0 {
		return nil, false
	}
	return tokens[1:], true
}
