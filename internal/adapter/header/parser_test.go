package header

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"friendlyenum/internal/domain"
)

const colorHeader = `// Color.h
#pragma once

#include <string>
#include <ostream>

enum class Color
{
    Red,
    Green,
    Blue = 5
};

const char* ToString(Color value);
std::ostream& operator<<(std::ostream& os, Color value);
Color Parse(const std::string& name);
`

func TestParse_ColorExample(t *testing.T) {
	model := NewParser(nil).ParseString(colorHeader)

	want := &domain.HeaderModel{
		Enum: domain.EnumDefinition{
			Name: "Color",
			Members: []domain.EnumMember{
				{Name: "Red"},
				{Name: "Green"},
				{Name: "Blue", Value: "5", HasValue: true},
			},
			Unknown: domain.EnumMember{Name: "Blue", Value: "5", HasValue: true},
		},
		ToString: &domain.DeclarationSignature{Role: domain.RoleToString, Text: "const char* ToString(Color value)"},
		ToStream: &domain.DeclarationSignature{Role: domain.RoleToStream, Text: "std::ostream& operator<<(std::ostream& os, Color value)"},
		Parse:    &domain.DeclarationSignature{Role: domain.RoleParse, Text: "Color Parse(const std::string& name)"},
	}

	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("unexpected model (-want +got):\n%s", diff)
	}
}

func TestParse_PreambleAndPostamble(t *testing.T) {
	content := `#ifndef FRUIT_H
#define FRUIT_H
namespace food {

// a comment that disappears
enum class Fruit
{
    Apple,
#if HAS_PEAR
    Pear,
#endif
    Unknown
};

std::string FruitName(Fruit fruit);
void Unrelated(int x);
}  // namespace food
#endif
`
	model := NewParser(nil).ParseString(content)

	if diff := cmp.Diff([]string{"namespace food {"}, model.Preamble); diff != "" {
		t.Errorf("unexpected preamble (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"}  // namespace food"}, model.Postamble); diff != "" {
		t.Errorf("unexpected postamble (-want +got):\n%s", diff)
	}

	names := memberNames(model.Enum.Members)
	if diff := cmp.Diff([]string{"Apple", "Pear", "Unknown"}, names); diff != "" {
		t.Errorf("unexpected members (-want +got):\n%s", diff)
	}
	if model.ToString == nil || model.ToString.Text != "std::string FruitName(Fruit fruit)" {
		t.Errorf("expected std::string declaration bound to to-string, got %+v", model.ToString)
	}
	if model.ToStream != nil {
		t.Errorf("expected no to-stream declaration, got %+v", model.ToStream)
	}
	if model.Parse != nil {
		t.Errorf("expected no parse declaration, got %+v", model.Parse)
	}
}

func TestParse_KeepsLeadingIndentation(t *testing.T) {
	content := "namespace n {\n  enum class E {\n    A,\n    B\n  };\n  int Helper();\n  struct S {\n  };\n}\n"
	model := NewParser(nil).ParseString(content)

	if diff := cmp.Diff([]string{"namespace n {"}, model.Preamble); diff != "" {
		t.Errorf("unexpected preamble (-want +got):\n%s", diff)
	}
	// "int Helper();" and "  };" are declaration candidates and are dropped.
	if diff := cmp.Diff([]string{"  struct S {", "}"}, model.Postamble); diff != "" {
		t.Errorf("unexpected postamble (-want +got):\n%s", diff)
	}
	if model.Enum.Name != "E" {
		t.Errorf("expected enum name E, got %q", model.Enum.Name)
	}
}

func TestParse_CRLFAndTrailingWhitespace(t *testing.T) {
	content := "struct Fwd;\r\nenum class Mode : int\r\n{\r\n  On = 1, \r\n  Off = 0\r\n};\r\nconst char* ModeName(Mode m);  \r\n"
	model := NewParser(nil).ParseString(content)

	if model.Enum.Name != "Mode" {
		t.Errorf("expected enum name Mode, got %q", model.Enum.Name)
	}
	want := []domain.EnumMember{
		{Name: "On", Value: "1", HasValue: true},
		{Name: "Off", Value: "0", HasValue: true},
	}
	if diff := cmp.Diff(want, model.Enum.Members); diff != "" {
		t.Errorf("unexpected members (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"struct Fwd;"}, model.Preamble); diff != "" {
		t.Errorf("unexpected preamble (-want +got):\n%s", diff)
	}
	if model.ToString == nil || model.ToString.Text != "const char* ModeName(Mode m)" {
		t.Errorf("unexpected to-string declaration: %+v", model.ToString)
	}
}

func TestParse_ValueSplitOnce(t *testing.T) {
	model := NewParser(nil).Parse([]string{
		"enum class Flags",
		"{",
		"    Mixed = A == B,",
		"",
		"    Plain",
		"}",
	})

	want := []domain.EnumMember{
		{Name: "Mixed", Value: "A == B", HasValue: true},
		{Name: "Plain"},
	}
	if diff := cmp.Diff(want, model.Enum.Members); diff != "" {
		t.Errorf("unexpected members (-want +got):\n%s", diff)
	}
}

func TestParse_LaterDeclarationOverwrites(t *testing.T) {
	model := NewParser(nil).Parse([]string{
		"enum class Dir { ",
		"North,",
		"South",
		"};",
		"const char* First(Dir d);",
		"const char* Second(Dir d);",
		"Dir ParseA(const std::string& s);",
		"Dir ParseB(const std::string& s);",
	})

	if model.ToString == nil || model.ToString.Text != "const char* Second(Dir d)" {
		t.Errorf("expected later to-string declaration to win, got %+v", model.ToString)
	}
	if model.Parse == nil || model.Parse.Text != "Dir ParseB(const std::string& s)" {
		t.Errorf("expected later parse declaration to win, got %+v", model.Parse)
	}
}

func TestParse_UnknownMember(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		want    string
	}{
		{"synonym in the middle", []string{"A", "Error", "B"}, "Error"},
		{"synonym first", []string{"Undefined", "A", "B"}, "Undefined"},
		{"first synonym wins", []string{"A", "Error", "Unknown"}, "Error"},
		{"no synonym", []string{"A", "Error2", "B"}, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []string{"enum class E", "{"}
			for _, m := range tt.members {
				lines = append(lines, m+",")
			}
			lines = append(lines, "};")

			model := NewParser(nil).Parse(lines)
			if model.Enum.Unknown.Name != tt.want {
				t.Errorf("expected unknown %q, got %q", tt.want, model.Enum.Unknown.Name)
			}
		})
	}
}

func TestParse_CustomSynonyms(t *testing.T) {
	model := NewParser([]string{"Invalid"}).Parse([]string{
		"enum class E", "{", "Unknown,", "Invalid,", "Last", "};",
	})
	if model.Enum.Unknown.Name != "Invalid" {
		t.Errorf("expected unknown Invalid, got %q", model.Enum.Unknown.Name)
	}
}

func TestParse_NoEnum(t *testing.T) {
	model := NewParser(nil).Parse([]string{
		"int x;",
		"const char* ToString(int v);",
	})

	if model.Enum.Name != "" {
		t.Errorf("expected empty enum name, got %q", model.Enum.Name)
	}
	if len(model.Enum.Members) != 0 {
		t.Errorf("expected no members, got %v", model.Enum.Members)
	}
	if model.ToString != nil || model.Parse != nil {
		t.Error("expected no bound declarations without an enum")
	}
	if diff := cmp.Diff([]string{"int x;", "const char* ToString(int v);"}, model.Preamble); diff != "" {
		t.Errorf("unexpected preamble (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"valid", []string{"enum class E", "{", "A,", "B", "};"}, nil},
		{"no enum", []string{"int x;"}, ErrNoEnum},
		{"no members", []string{"enum class E", "{", "};"}, ErrNoMembers},
		{"duplicate", []string{"enum class E", "{", "A,", "B,", "A", "};"}, ErrDuplicateMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(p.Parse(tt.lines))
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	if got := SplitLines(""); got != nil {
		t.Errorf("expected nil for empty content, got %v", got)
	}
	if diff := cmp.Diff([]string{"a", "", "b"}, SplitLines("a\n\nb\n")); diff != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", diff)
	}
}

func memberNames(members []domain.EnumMember) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}
