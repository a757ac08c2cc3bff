// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Generator is the tool name written into the header banner.
const Generator = "mixgen"

var headerTmpl = template.Must(template.New("header").Funcs(template.FuncMap{
	"row": formatRow,
}).Parse(`/*
* This file is automatically generated by {{.Generator}} - do not edit.
*/

#ifndef _MIXER_MULTI_TABLES
#define _MIXER_MULTI_TABLES

enum class MultirotorGeometry : MultirotorGeometryUnderlyingType {
{{- range .Entries}}
	{{.Enum}} = {{.Index}},
{{- end}}

	MAX_GEOMETRY
}; // enum class MultirotorGeometry

namespace {
{{- range .Entries}}
const MultirotorMixer::Rotor _config_{{.Name}}[] = {
{{- range .Rows}}
	{ {{row .}} },
{{- end}}
};
{{end}}
const MultirotorMixer::Rotor *_config_index[] = {
{{- range .Entries}}
	&_config_{{.Name}}[0],
{{- end}}
};

const unsigned _config_rotor_count[] = {
{{- range .Entries}}
	{{.RotorCount}}, /* {{.Name}} */
{{- end}}
};

const char* _config_key[] = {
{{- range .Entries}}
	"{{.Key}}",	/* {{.Name}} */
{{- end}}
};

} // anonymous namespace

#endif /* _MIXER_MULTI_TABLES */

`))

// formatRow renders coefficients as "%9f" separated by ", ".
func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprintf("%9f", v)
	}

	return strings.Join(parts, ", ")
}

// WriteHeader renders t as the multirotor mixer C++ header.
func WriteHeader(w io.Writer, t *Table) error {
	if t == nil {
		return errors.New("table: WriteHeader: nil table")
	}

	return headerTmpl.Execute(w, struct {
		Generator string
		*Table
	}{Generator, t})
}
