package domain

import "time"

// EnumMember is one enumerator of a scoped enum, in declaration order.
type EnumMember struct {
	Name     string `yaml:"name" json:"name"`
	Value    string `yaml:"value,omitempty" json:"value,omitempty"`
	HasValue bool   `yaml:"has_value" json:"has_value"`
}

type EnumDefinition struct {
	Name    string       `yaml:"name" json:"name"`
	Members []EnumMember `yaml:"members" json:"members"`
	Unknown EnumMember   `yaml:"unknown" json:"unknown"`
}

// DeclarationRole is the job a trailing declaration plays for the enum.
type DeclarationRole int

const (
	RoleToString DeclarationRole = iota
	RoleToStream
	RoleParse
)

func (r DeclarationRole) String() string {
	switch r {
	case RoleToString:
		return "to-string"
	case RoleToStream:
		return "to-stream"
	case RoleParse:
		return "parse"
	}
	return "unknown"
}

// MarshalYAML keeps inspect output readable.
func (r DeclarationRole) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// DeclarationSignature is a raw trailing declaration line with the trailing
// semicolon removed.
type DeclarationSignature struct {
	Role DeclarationRole `yaml:"role" json:"role"`
	Text string          `yaml:"text" json:"text"`
}

// HeaderModel is everything the generator needs from one header.
type HeaderModel struct {
	Path      string                `yaml:"path" json:"path"`
	Enum      EnumDefinition        `yaml:"enum" json:"enum"`
	ToString  *DeclarationSignature `yaml:"to_string,omitempty" json:"to_string,omitempty"`
	ToStream  *DeclarationSignature `yaml:"to_stream,omitempty" json:"to_stream,omitempty"`
	Parse     *DeclarationSignature `yaml:"parse,omitempty" json:"parse,omitempty"`
	Preamble  []string              `yaml:"preamble" json:"preamble"`
	Postamble []string              `yaml:"postamble" json:"postamble"`
}

type Outcome string

const (
	OutcomeWritten   Outcome = "written"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeStale     Outcome = "stale"
	OutcomeFailed    Outcome = "failed"
)

// GenerationRecord remembers the last result for one implementation file.
type GenerationRecord struct {
	Implementation string    `json:"implementation"`
	Header         string    `json:"header"`
	EnumName       string    `json:"enum_name"`
	ContentHash    string    `json:"content_hash"`
	Outcome        Outcome   `json:"outcome"`
	GeneratedAt    time.Time `json:"generated_at"`
}
