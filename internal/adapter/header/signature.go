package header

import "strings"

// The helpers below recover names from a declaration line by slicing text;
// they do not parse C++.

// LastParamName returns the identifier of the last parameter of decl.
//
//	Color Parse(const std::string& name) -> name
func LastParamName(decl string) string {
	params := lastSegment(stripCallTail(decl), "(")
	return bareIdentifier(lastSegment(params, ","))
}

// FirstParamName returns the identifier of the first parameter of decl.
//
//	std::ostream& operator<<(std::ostream& os, Color value) -> os
func FirstParamName(decl string) string {
	params := afterFirst(stripCallTail(decl), "(")
	return bareIdentifier(firstSegment(params, ","))
}

// MethodName returns the function identifier of decl without return type,
// pointer or reference decoration.
//
//	const char* ToString(Color value) -> ToString
func MethodName(decl string) string {
	head := firstSegment(stripCallTail(decl), "(")
	head = strings.TrimSpace(lastSegment(head, "*"))
	head = strings.TrimSpace(lastSegment(head, "&"))
	return lastField(head)
}

func stripCallTail(decl string) string {
	decl = strings.TrimRight(strings.TrimSpace(decl), ";")
	return strings.TrimRight(decl, ")")
}

func bareIdentifier(param string) string {
	param = strings.TrimSpace(param)
	param = strings.TrimSpace(lastSegment(param, "&"))
	return lastField(param)
}

func afterFirst(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}

func lastSegment(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}

func firstSegment(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

func lastField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
