package scaffold

import (
	"bytes"
	"fmt"
	"path"
	"sort"
	"text/template"

	scaffoldtmpl "github.com/example/stackgen/internal/templates/scaffold"
)

// Generator renders artifacts from the embedded templates.
type Generator struct {
	funcs template.FuncMap
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{
		funcs: scaffoldtmpl.TemplateFuncs(),
	}
}

// emitter binds an artifact kind to its template and target path.
type emitter struct {
	kind     Kind
	template string
	path     func(in EmitInput) string
}

// emitters run in this order. Order carries no meaning beyond a stable report.
var emitters = []emitter{
	{KindModel, "backend/entity.ts", func(in EmitInput) string {
		return path.Join(in.Layout.BackendDir, in.Names.FileStem, in.Names.FileStem+".entity.ts")
	}},
	{KindCreateDTO, "backend/create-dto.ts", func(in EmitInput) string {
		return path.Join(in.Layout.BackendDir, in.Names.FileStem, "dto", "create-"+in.Names.FileStem+".dto.ts")
	}},
	{KindUpdateDTO, "backend/update-dto.ts", func(in EmitInput) string {
		return path.Join(in.Layout.BackendDir, in.Names.FileStem, "dto", "update-"+in.Names.FileStem+".dto.ts")
	}},
	{KindService, "backend/service.ts", func(in EmitInput) string {
		return path.Join(in.Layout.BackendDir, in.Names.FileStem, in.Names.FileStem+".service.ts")
	}},
	{KindController, "backend/controller.ts", func(in EmitInput) string {
		return path.Join(in.Layout.BackendDir, in.Names.FileStem, in.Names.FileStem+".controller.ts")
	}},
	{KindMigration, "backend/migration.ts", func(in EmitInput) string {
		return path.Join(in.Layout.MigrationsDir, migrationFileBase(in)+".ts")
	}},
	{KindClientModel, "client/model.ts", func(in EmitInput) string {
		return path.Join(in.Layout.ClientDir, "models", in.Names.FileStem+".model.ts")
	}},
	{KindClientService, "client/service.ts", func(in EmitInput) string {
		return path.Join(in.Layout.ClientDir, "services", in.Names.FileStem+".service.ts")
	}},
}

// Kinds lists every artifact kind in emission order.
func Kinds() []Kind {
	kinds := make([]Kind, len(emitters))
	for i, e := range emitters {
		kinds[i] = e.kind
	}
	return kinds
}

// Emit renders every selected artifact. Client artifacts are omitted when
// in.SkipClient is set; the server-side artifacts do not depend on them.
func (g *Generator) Emit(in EmitInput) ([]GenerationUnit, error) {
	var units []GenerationUnit
	for _, e := range emitters {
		if in.SkipClient && e.kind.IsClient() {
			continue
		}
		unit, err := g.emit(e, in)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// EmitKind renders a single artifact kind.
func (g *Generator) EmitKind(kind Kind, in EmitInput) (GenerationUnit, error) {
	for _, e := range emitters {
		if e.kind == kind {
			return g.emit(e, in)
		}
	}
	return GenerationUnit{}, fmt.Errorf("unknown artifact kind %q", kind)
}

func (g *Generator) emit(e emitter, in EmitInput) (GenerationUnit, error) {
	content, err := g.renderTemplate(e.template, newArtifactData(e.kind, in))
	if err != nil {
		return GenerationUnit{}, fmt.Errorf("failed to render %s: %w", e.template, err)
	}
	return GenerationUnit{
		Kind:    e.kind,
		Path:    e.path(in),
		Content: content,
	}, nil
}

// renderTemplate renders an artifact template.
func (g *Generator) renderTemplate(name string, data any) (string, error) {
	tmplContent, err := scaffoldtmpl.GetTemplate(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Funcs(g.funcs).Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Manifests returns the export lines for the given units, one group per
// manifest file. Migrations are loaded by glob and are never listed.
func Manifests(in EmitInput, units []GenerationUnit) []ManifestEntry {
	stem := in.Names.FileStem
	var entries []ManifestEntry
	for _, u := range units {
		switch u.Kind {
		case KindModel:
			entries = append(entries, ManifestEntry{
				Manifest: path.Join(in.Layout.BackendDir, "entities.ts"),
				Line:     fmt.Sprintf("export * from './%s/%s.entity';", stem, stem),
				Kind:     u.Kind,
			})
		case KindCreateDTO:
			entries = append(entries, ManifestEntry{
				Manifest: path.Join(in.Layout.BackendDir, stem, "dto", "index.ts"),
				Line:     fmt.Sprintf("export * from './create-%s.dto';", stem),
				Kind:     u.Kind,
			})
		case KindUpdateDTO:
			entries = append(entries, ManifestEntry{
				Manifest: path.Join(in.Layout.BackendDir, stem, "dto", "index.ts"),
				Line:     fmt.Sprintf("export * from './update-%s.dto';", stem),
				Kind:     u.Kind,
			})
		case KindClientModel:
			entries = append(entries, ManifestEntry{
				Manifest: path.Join(in.Layout.ClientDir, "models", "index.ts"),
				Line:     fmt.Sprintf("export * from './%s.model';", stem),
				Kind:     u.Kind,
			})
		case KindClientService:
			entries = append(entries, ManifestEntry{
				Manifest: path.Join(in.Layout.ClientDir, "services", "index.ts"),
				Line:     fmt.Sprintf("export * from './%s.service';", stem),
				Kind:     u.Kind,
			})
		}
	}
	return entries
}

func migrationFileBase(in EmitInput) string {
	return in.Stamp.FileLabel() + "-create-" + in.Names.CollectionName
}

// fieldView is a FieldSpec pre-rendered for templates. Every artifact reads
// the same view, so a field cannot be nullable in one file and required in
// another.
type fieldView struct {
	Name        string
	TSType      string
	ColumnType  string
	Optional    bool
	IsTimestamp bool
	Validator   string
	Decl        string // "isActive?: boolean | null"
	PartialDecl string // "name?: string"
}

// artifactData is the template input shared by all artifacts.
type artifactData struct {
	Names            EntityNames
	Fields           []fieldView
	ClassName        string
	APIPath          string
	ValidatorImports []string
	NeedsTransformer bool
}

func newArtifactData(kind Kind, in EmitInput) artifactData {
	declared := DeclaredFields(in.Fields)
	views := make([]fieldView, len(declared))
	for i, f := range declared {
		views[i] = newFieldView(f)
	}

	data := artifactData{
		Names:     in.Names,
		Fields:    views,
		ClassName: MigrationClassName(in.Names, in.Stamp),
		APIPath:   path.Join("/", in.Layout.APIPrefix, in.Names.CollectionName),
	}

	switch kind {
	case KindCreateDTO:
		data.ValidatorImports, data.NeedsTransformer = validatorImports(views, false)
	case KindUpdateDTO:
		data.ValidatorImports, data.NeedsTransformer = validatorImports(views, true)
	}

	return data
}

func newFieldView(f FieldSpec) fieldView {
	tsType := f.ValueType.TSType()

	decl := f.Name + ": " + tsType
	partial := f.Name + "?: " + tsType
	if f.Optional {
		decl = f.Name + "?: " + tsType + " | null"
		partial = decl
	}

	return fieldView{
		Name:        f.Name,
		TSType:      tsType,
		ColumnType:  f.ColumnType,
		Optional:    f.Optional,
		IsTimestamp: f.ValueType == Timestamp,
		Validator:   validatorFor(f.ValueType),
		Decl:        decl,
		PartialDecl: partial,
	}
}

// validatorFor returns the class-validator decorator for a value type.
func validatorFor(v ValueType) string {
	switch v {
	case Integer:
		return "IsInt"
	case Decimal:
		return "IsNumber"
	case Boolean:
		return "IsBoolean"
	case Timestamp:
		return "IsDate"
	case Identifier:
		return "IsUUID"
	default:
		return "IsString"
	}
}

// validatorImports collects the decorators a DTO uses, sorted.
func validatorImports(fields []fieldView, allOptional bool) ([]string, bool) {
	seen := make(map[string]bool)
	transformer := false
	for _, f := range fields {
		seen[f.Validator] = true
		if f.Optional || allOptional {
			seen["IsOptional"] = true
		}
		if f.IsTimestamp {
			transformer = true
		}
	}

	imports := make([]string, 0, len(seen))
	for name := range seen {
		imports = append(imports, name)
	}
	sort.Strings(imports)
	return imports, transformer
}
