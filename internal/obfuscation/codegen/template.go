package codegen

const sealedSource = `// Code generated by constguard generate. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
{{- if .HasFloat}}
	"math"
{{- end}}

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/service"
)

const (
	{{.Group}}KeyA uint64 = {{hex64 .KeyA}}
	{{.Group}}KeyB uint64 = {{hex64 .KeyB}}
)

func {{.Group}}Key() uint64 {
	return {{.Group}}KeyA ^ {{.Group}}KeyB
}

var {{.Group}}Constants = []domain.ConstantInfo{
{{- range .Entries}}
	{Name: "{{.Name}}", Kind: {{kindIdent .Kind}}},
{{- end}}
}
{{range .Entries}}
// {{.Func}} returns {{if .Doc}}{{.Doc}}{{else}}the sealed constant {{.Name}}{{end}}.
{{- if eq .Kind "float64"}}
func {{.Func}}() float64 {
	return math.Float64frombits(service.Reverse64({{hex64 .Word64}}, {{$.Group}}Key(), "{{.Name}}"))
}
{{- else if eq .Kind "int32"}}
func {{.Func}}() int32 {
	return int32(service.Reverse32({{hex32 .Word32}}, {{$.Group}}Key(), "{{.Name}}"))
}
{{- else}}
func {{.Func}}() domain.Decimal {
	return {{$.Group}}Decimal([4]uint32{ {{- hex32 (index .Words 0)}}, {{hex32 (index .Words 1)}}, {{hex32 (index .Words 2)}}, {{hex32 (index .Words 3) -}} }, "{{.Name}}")
}
{{- end}}
{{end}}
{{- if .HasDecimal}}
func {{.Group}}Decimal(words [4]uint32, name string) domain.Decimal {
	key := {{.Group}}Key()
	for slot := range words {
		words[slot] = service.Reverse32(words[slot], key, service.DecimalSlotID(name, slot))
	}
	return service.DecodeDecimal(words)
}
{{end}}
type {{.Group}}Source struct{}

func ({{.Group}}Source) Name() string { return "{{.Group}}" }

func ({{.Group}}Source) Family() domain.Family { return domain.FamilyKeyed }

func ({{.Group}}Source) Value(name string, kind domain.Kind) (domain.Value, error) {
	value := domain.Value{Group: "{{.Group}}", Name: name, Kind: kind}

	switch {
{{- range .Entries}}
	case name == "{{.Name}}" && kind == {{kindIdent .Kind}}:
		{{- if eq .Kind "float64"}}
		value.Float64 = {{.Func}}()
		{{- else if eq .Kind "int32"}}
		value.Int32 = {{.Func}}()
		{{- else}}
		value.Decimal = {{.Func}}()
		{{- end}}
{{- end}}
	default:
		return domain.Value{}, fmt.Errorf("%w: {{.Group}}/%s (%s)", domain.ErrConstantNotFound, name, kind)
	}

	return value, nil
}
`
