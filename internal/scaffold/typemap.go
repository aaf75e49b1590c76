package scaffold

import "strings"

// ValueType is the closed set of abstract field types.
type ValueType int

const (
	Text ValueType = iota
	Integer
	Decimal
	Boolean
	Timestamp
	Identifier
)

// String returns the enum name.
func (v ValueType) String() string {
	switch v {
	case Text:
		return "Text"
	case Integer:
		return "Integer"
	case Decimal:
		return "Decimal"
	case Boolean:
		return "Boolean"
	case Timestamp:
		return "Timestamp"
	case Identifier:
		return "Identifier"
	default:
		return "ValueType(?)"
	}
}

// TSType returns the TypeScript value type used by every artifact.
func (v ValueType) TSType() string {
	switch v {
	case Integer, Decimal:
		return "number"
	case Boolean:
		return "boolean"
	case Timestamp:
		return "Date"
	default:
		return "string"
	}
}

// Resolution is the pair a type token maps to.
type Resolution struct {
	ValueType  ValueType
	ColumnType string
}

// DefaultResolution is used for any token missing from the table.
var DefaultResolution = Resolution{ValueType: Text, ColumnType: "varchar"}

// typeTable is keyed by lower-cased token.
var typeTable = map[string]Resolution{
	"string":  {Text, "varchar"},
	"text":    {Text, "text"},
	"number":  {Decimal, "decimal"},
	"int":     {Integer, "int"},
	"float":   {Decimal, "float"},
	"decimal": {Decimal, "decimal"},
	"boolean": {Boolean, "boolean"},
	"date":    {Timestamp, "timestamp"},
	"uuid":    {Identifier, "uuid"},
}

// knownOrder is the display order of the table.
var knownOrder = []string{"string", "text", "number", "int", "float", "decimal", "boolean", "date", "uuid"}

// ResolveType maps a type token to its resolution. The second result is false
// when the token is not in the table and DefaultResolution was returned.
func ResolveType(token string) (Resolution, bool) {
	r, ok := typeTable[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return DefaultResolution, false
	}
	return r, true
}

// TypeEntry is one row of the type table.
type TypeEntry struct {
	Token string
	Resolution
}

// KnownTypes lists the type table in a stable order.
func KnownTypes() []TypeEntry {
	entries := make([]TypeEntry, len(knownOrder))
	for i, token := range knownOrder {
		entries[i] = TypeEntry{Token: token, Resolution: typeTable[token]}
	}
	return entries
}
