package scaffold

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

var entityNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DeriveNames computes every naming variant of an entity exactly once.
// Only the first character is re-cased; the rest is kept as written.
func DeriveNames(entity string) (EntityNames, error) {
	name := strings.TrimSpace(entity)
	if name == "" {
		return EntityNames{}, &EntityNameError{Name: entity, Reason: "name is empty"}
	}
	if !entityNameRe.MatchString(name) {
		return EntityNames{}, &EntityNameError{Name: entity, Reason: "name must be an identifier"}
	}

	stem := fileStem(name)
	if strings.Trim(stem, "_-") == "" {
		return EntityNames{}, &EntityNameError{Name: entity, Reason: "unusable: no letters or digits for a file name"}
	}

	instance := lowerFirst(name)

	return EntityNames{
		TypeName:       upperFirst(name),
		InstanceName:   instance,
		CollectionName: Pluralize(instance),
		FileStem:       stem,
	}, nil
}

// fileStem kebab-cases each underscore-separated segment of name and keeps the
// underscores, so orderItem and order_item get distinct stems. Acronym runs
// are folded first: HTTPServer becomes http-server, userID becomes user-id.
func fileStem(name string) string {
	segments := strings.Split(name, "_")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = inflect.Dasherize(foldAcronyms(seg))
		}
	}
	return strings.Join(segments, "_")
}

// foldAcronyms lower-cases every upper-case rune that follows another
// upper-case rune, unless it starts a new word ("HTTPServer" -> "HttpServer").
func foldAcronyms(s string) string {
	r := []rune(s)
	out := make([]rune, len(r))
	for i, c := range r {
		out[i] = c
		if i == 0 || !unicode.IsUpper(c) || !unicode.IsUpper(r[i-1]) {
			continue
		}
		if i+1 < len(r) && unicode.IsLower(r[i+1]) {
			continue
		}
		out[i] = unicode.ToLower(c)
	}
	return string(out)
}

// Pluralize appends a literal "s". Irregular plurals are not handled.
func Pluralize(s string) string {
	return s + "s"
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
