package cppgen

// Every line emitted below ends in a newline; Generate drops the final one so
// the file ends on its last line.
const implementationTemplate = `
{{- define "Implementation" -}}
#include "{{ .IncludeName }}"
{{ range .SystemIncludes -}}
#include <{{ . }}>
{{ end }}
{{ range .Preamble -}}
{{ . }}
{{ end -}}
{{ with .ToString }}{{ template "ToString" . }}{{ end -}}
{{ with .ToStream }}{{ template "ToStream" . }}{{ end -}}
{{ with .Parse }}{{ template "Parse" . }}{{ end -}}
{{ range .Postamble -}}
{{ . }}
{{ end -}}
{{- end }}

{{ define "ToString" }}{{ .Decl }}
{
    switch ({{ .Param }})
    {
{{ range .Members }}    case {{ $.EnumName }}::{{ .Name }}:
        return "{{ .Name }}";
{{ end }}    }
    // Unreachable code
    return "{{ .Unknown }}";
}

{{ end }}

{{ define "ToStream" }}{{ .Decl }}
{
    return {{ .Stream }} << {{ .ToStringName }}({{ .Param }});
}

{{ end }}

{{ define "Parse" }}{{ .Decl }}
{
    static std::map<std::string, {{ .EnumName }}> nameToValue =
    {
{{ range .Entries }}        { "{{ .Name }}", {{ $.EnumName }}::{{ .Name }} }{{ .Sep }}
{{ end }}    };
    auto it = nameToValue.find({{ .Param }});
    if (it == nameToValue.end())
    {
        return {{ .EnumName }}::{{ .Unknown }};
    }
    return it->second;
}

{{ end }}
`
