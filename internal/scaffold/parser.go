package scaffold

import (
	"regexp"
	"strings"
)

// optionalMarker marks a field as optional on either side of ':'.
const optionalMarker = "?"

// defaultTypeToken is used when a field has nothing after ':'.
const defaultTypeToken = "string"

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ParseFields parses the field DSL into an ordered slice of FieldSpec.
// Format: "name:string,price:number,isActive?:boolean" (the '?' may also
// follow the type: "isActive:boolean?").
func ParseFields(spec string) ([]FieldSpec, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, ErrEmptySpec
	}

	tokens := strings.Split(spec, ",")
	fields := make([]FieldSpec, 0, len(tokens))

	for i, token := range tokens {
		field, err := parseField(i, token)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

// parseField parses a single "name[?]:type[?]" token.
func parseField(index int, token string) (FieldSpec, error) {
	malformed := func(reason string) error {
		return &FieldSpecError{Index: index, Token: token, Reason: reason}
	}

	if strings.TrimSpace(token) == "" {
		return FieldSpec{}, malformed("empty field")
	}

	name, typeToken, found := strings.Cut(token, ":")
	if !found {
		return FieldSpec{}, malformed("expected 'name:type'")
	}

	name = strings.TrimSpace(name)
	typeToken = strings.TrimSpace(typeToken)

	optional := false
	if strings.HasSuffix(name, optionalMarker) {
		optional = true
		name = strings.TrimSpace(strings.TrimSuffix(name, optionalMarker))
	}
	if strings.HasSuffix(typeToken, optionalMarker) {
		optional = true
		typeToken = strings.TrimSpace(strings.TrimSuffix(typeToken, optionalMarker))
	}

	if name == "" {
		return FieldSpec{}, malformed("empty field name")
	}
	if !identifierRe.MatchString(name) {
		return FieldSpec{}, malformed("field name must be an identifier")
	}
	if typeToken == "" {
		typeToken = defaultTypeToken
	}

	resolved, known := ResolveType(typeToken)

	return FieldSpec{
		Name:       name,
		RawType:    typeToken,
		Optional:   optional,
		ValueType:  resolved.ValueType,
		ColumnType: resolved.ColumnType,
		Known:      known,
	}, nil
}

// IsReservedField reports whether a field collides with the generated primary
// key. Only the exact name "id" is reserved; "parentId" is an ordinary field.
func IsReservedField(f FieldSpec) bool {
	return f.Name == "id"
}

// DeclaredFields returns the fields emitters declare, in input order, without
// the reserved primary key.
func DeclaredFields(fields []FieldSpec) []FieldSpec {
	declared := make([]FieldSpec, 0, len(fields))
	for _, f := range fields {
		if IsReservedField(f) {
			continue
		}
		declared = append(declared, f)
	}
	return declared
}
