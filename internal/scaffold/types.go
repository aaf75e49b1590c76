// Package scaffold turns an entity name and a field DSL into a consistent set of
// generated source artifacts and the manifest lines that export them.
//
// Everything in this package is pure: no file system, no clock. The caller
// supplies the migration stamp and applies the results.
package scaffold

// FieldSpec is one requested column of an entity.
type FieldSpec struct {
	Name       string    // as written: "isActive"
	RawType    string    // type token as written, trimmed: "Boolean"
	Optional   bool      // marked with '?' on either side of ':'
	ValueType  ValueType // resolved once from RawType
	ColumnType string    // storage column type, resolved with ValueType
	Known      bool      // false when RawType fell back to DefaultResolution
}

// EntityNames holds every naming variant used by the emitters.
type EntityNames struct {
	TypeName       string // "Product"
	InstanceName   string // "product"
	CollectionName string // "products"
	FileStem       string // "product", kebab-case for paths and imports
}

// Kind identifies the architectural role of a generated artifact.
type Kind string

const (
	KindModel         Kind = "model"
	KindCreateDTO     Kind = "create-dto"
	KindUpdateDTO     Kind = "update-dto"
	KindService       Kind = "service"
	KindController    Kind = "controller"
	KindMigration     Kind = "migration"
	KindClientModel   Kind = "client-model"
	KindClientService Kind = "client-service"
)

// IsClient reports whether the kind belongs to the client side.
func (k Kind) IsClient() bool {
	return k == KindClientModel || k == KindClientService
}

// GenerationUnit is one artifact ready to be written.
type GenerationUnit struct {
	Kind    Kind
	Path    string // relative to the project root, slash separated
	Content string
}

// ManifestEntry is one export line that must be present in a manifest file.
type ManifestEntry struct {
	Manifest string // manifest path relative to the project root
	Line     string
	Kind     Kind // artifact the line exports
}

// Layout configures where artifacts land, relative to the project root.
type Layout struct {
	BackendDir    string
	MigrationsDir string
	ClientDir     string
	APIPrefix     string
}

// DefaultLayout returns the layout used when no configuration is present.
func DefaultLayout() Layout {
	return Layout{
		BackendDir:    "src",
		MigrationsDir: "src/migrations",
		ClientDir:     "client/src",
		APIPrefix:     "/api",
	}
}

// EmitInput is everything an emitter may look at.
type EmitInput struct {
	Names      EntityNames
	Fields     []FieldSpec
	Stamp      MigrationStamp
	Layout     Layout
	SkipClient bool
}
