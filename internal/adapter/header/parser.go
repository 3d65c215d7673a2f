package header

import (
	"strings"
	"unicode"

	"friendlyenum/internal/domain"
)

// DefaultUnknownSynonyms are the member names preferred as the fallback value.
var DefaultUnknownSynonyms = []string{"Unknown", "Undefined", "Error"}

const enumClassPrefix = "enum class "

type scanMode int

const (
	modePreamble scanMode = iota
	modeEnumBody
	modePostamble
)

type Parser struct {
	synonyms []string
}

func NewParser(unknownSynonyms []string) *Parser {
	if len(unknownSynonyms) == 0 {
		unknownSynonyms = DefaultUnknownSynonyms
	}
	return &Parser{synonyms: unknownSynonyms}
}

// Parse builds a model from the lines of a header. Comment and preprocessor
// lines are dropped wherever they appear.
func (p *Parser) Parse(lines []string) *domain.HeaderModel {
	model := &domain.HeaderModel{}
	var decls []string
	mode := modePreamble

	for _, line := range lines {
		sline := strings.TrimSpace(line)
		if strings.HasPrefix(sline, "//") || strings.HasPrefix(sline, "#") {
			continue
		}

		if strings.HasPrefix(sline, enumClassPrefix) {
			model.Enum.Name = enumName(sline)
			mode = modeEnumBody
			continue
		}

		kept := strings.TrimRightFunc(line, unicode.IsSpace)

		switch mode {
		case modePreamble:
			if kept != "" {
				model.Preamble = append(model.Preamble, kept)
			}
		case modeEnumBody:
			if sline == "{" {
				continue
			}
			if strings.HasPrefix(sline, "}") {
				mode = modePostamble
				continue
			}
			if member, ok := parseMember(sline); ok {
				model.Enum.Members = append(model.Enum.Members, member)
			}
		case modePostamble:
			if strings.HasSuffix(sline, ";") {
				decls = append(decls, strings.TrimRight(kept, "; "))
			} else if kept != "" {
				model.Postamble = append(model.Postamble, kept)
			}
		}
	}

	for _, decl := range decls {
		role, ok := classify(decl, model.Enum.Name)
		if !ok {
			continue
		}
		sig := &domain.DeclarationSignature{Role: role, Text: decl}
		switch role {
		case domain.RoleToString:
			model.ToString = sig
		case domain.RoleToStream:
			model.ToStream = sig
		case domain.RoleParse:
			model.Parse = sig
		}
	}

	model.Enum.Unknown = p.unknownMember(model.Enum.Members)
	return model
}

// ParseString splits content into lines and parses them.
func (p *Parser) ParseString(content string) *domain.HeaderModel {
	return p.Parse(SplitLines(content))
}

// SplitLines splits on '\n'; a trailing '\r' is left for the trimming done
// by Parse.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func enumName(sline string) string {
	fields := strings.Fields(sline)
	if len(fields) < 3 {
		return ""
	}
	return fields[2]
}

func parseMember(sline string) (domain.EnumMember, bool) {
	sline = strings.TrimSpace(strings.TrimSuffix(sline, ","))
	if sline == "" {
		return domain.EnumMember{}, false
	}
	parts := strings.SplitN(sline, "=", 2)
	if len(parts) == 2 {
		return domain.EnumMember{
			Name:     strings.TrimSpace(parts[0]),
			Value:    strings.TrimSpace(parts[1]),
			HasValue: true,
		}, true
	}
	return domain.EnumMember{Name: sline}, true
}

func classify(decl, enumName string) (domain.DeclarationRole, bool) {
	switch {
	case strings.HasPrefix(decl, "const char"), strings.HasPrefix(decl, "std::string "):
		return domain.RoleToString, true
	case strings.HasPrefix(decl, "std::ostream"):
		return domain.RoleToStream, true
	case enumName != "" && strings.HasPrefix(decl, enumName):
		return domain.RoleParse, true
	}
	return 0, false
}

func (p *Parser) unknownMember(members []domain.EnumMember) domain.EnumMember {
	if len(members) == 0 {
		return domain.EnumMember{}
	}
	for _, m := range members {
		for _, s := range p.synonyms {
			if m.Name == s {
				return m
			}
		}
	}
	return members[len(members)-1]
}
