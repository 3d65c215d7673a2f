package cppgen

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"friendlyenum/internal/adapter/header"
	"friendlyenum/internal/domain"
)

// DefaultSystemIncludes are emitted after the header include whether or not
// the generated bodies use them.
var DefaultSystemIncludes = []string{"map", "sstream", "iostream"}

var ErrStreamWithoutToString = errors.New("stream operator declared without a to-string function")

var implementation = template.Must(template.New("implementation").Parse(implementationTemplate))

type Generator struct {
	systemIncludes []string
}

func New(systemIncludes []string) *Generator {
	if systemIncludes == nil {
		systemIncludes = DefaultSystemIncludes
	}
	return &Generator{systemIncludes: systemIncludes}
}

type fileArgs struct {
	IncludeName    string
	SystemIncludes []string
	Preamble       []string
	ToString       *toStringArgs
	ToStream       *toStreamArgs
	Parse          *parseArgs
	Postamble      []string
}

type toStringArgs struct {
	Decl     string
	Param    string
	EnumName string
	Members  []domain.EnumMember
	Unknown  string
}

type toStreamArgs struct {
	Decl         string
	Stream       string
	Param        string
	ToStringName string
}

type parseEntry struct {
	Name string
	Sep  string
}

type parseArgs struct {
	Decl     string
	Param    string
	EnumName string
	Entries  []parseEntry
	Unknown  string
}

// Generate renders the implementation file for model.
func (g *Generator) Generate(model *domain.HeaderModel) (string, error) {
	args, err := g.buildArgs(model)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := implementation.ExecuteTemplate(&buf, "Implementation", args); err != nil {
		return "", fmt.Errorf("rendering %s: %w", model.Enum.Name, err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (g *Generator) buildArgs(model *domain.HeaderModel) (*fileArgs, error) {
	enum := model.Enum
	args := &fileArgs{
		IncludeName:    filepath.Base(model.Path),
		SystemIncludes: g.systemIncludes,
		Preamble:       model.Preamble,
		Postamble:      model.Postamble,
	}
	if model.Path == "" {
		args.IncludeName = enum.Name + ".h"
	}

	if model.ToString != nil {
		args.ToString = &toStringArgs{
			Decl:     model.ToString.Text,
			Param:    header.LastParamName(model.ToString.Text),
			EnumName: enum.Name,
			Members:  enum.Members,
			Unknown:  enum.Unknown.Name,
		}
	}

	if model.ToStream != nil {
		if model.ToString == nil {
			return nil, fmt.Errorf("%s: %w", model.ToStream.Text, ErrStreamWithoutToString)
		}
		args.ToStream = &toStreamArgs{
			Decl:         model.ToStream.Text,
			Stream:       header.FirstParamName(model.ToStream.Text),
			Param:        header.LastParamName(model.ToStream.Text),
			ToStringName: header.MethodName(model.ToString.Text),
		}
	}

	if model.Parse != nil {
		args.Parse = &parseArgs{
			Decl:     model.Parse.Text,
			Param:    header.LastParamName(model.Parse.Text),
			EnumName: enum.Name,
			Entries:  sortedEntries(enum.Members),
			Unknown:  enum.Unknown.Name,
		}
	}

	return args, nil
}

// sortedEntries orders the parse table by member name so the generated file
// does not change when members are reordered in the header.
func sortedEntries(members []domain.EnumMember) []parseEntry {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	sort.SliceStable(names, func(i, j int) bool { return names[i] < names[j] })

	entries := make([]parseEntry, len(names))
	for i, name := range names {
		entries[i] = parseEntry{Name: name, Sep: ","}
	}
	if len(entries) > 0 {
		entries[len(entries)-1].Sep = ""
	}
	return entries
}
