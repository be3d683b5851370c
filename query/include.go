package query

import (
	"strings"

	"github.com/neuronlabs/sideload/errors"
)

// Inclusion parameter symbols.
const (
	// Separator is the symbol that separates inclusion paths within the parameter.
	// Example: include=author,comments
	//						  ^
	Separator = ","
	// NestedSeparator is the symbol used for the nested relation fields access.
	// Example: include=comments.author
	//							^
	NestedSeparator = "."
	// Wildcard is the include-all token. Used as the whole parameter it marks
	// the full tree for inclusion, used as the last path segment it marks the
	// subtree of given relation.
	// Example: include=comments.*
	//							 ^
	Wildcard = "*"

	// DefaultNestedLimit is the default maximum number of the nested separators
	// within a single inclusion path.
	DefaultNestedLimit = 3
)

// IncludedRelation is a single node of the inclusion request tree. It carries
// the relation field name and the inclusions requested below that relation.
type IncludedRelation struct {
	// Field is the relation field name.
	Field string
	// All marks every bound relation field of the related resources for
	// inclusion, recursively, bounded by the renderer nested limit.
	All bool
	// IncludedRelations are the inclusions requested below this relation,
	// ordered by their first mention within the parameter.
	IncludedRelations []*IncludedRelation
}

// Relation gets the child inclusion node for provided relation 'field'.
// Returns nil if the field is not requested below this node.
func (i *IncludedRelation) Relation(field string) *IncludedRelation {
	return findRelation(i.IncludedRelations, field)
}

// IncludeRequest is the root of the inclusion request tree built from a
// single include parameter.
type IncludeRequest struct {
	// All marks every bound relation field of the primary resources for
	// inclusion, recursively, bounded by the renderer nested limit.
	All bool
	// IncludedRelations are the requested top level inclusions ordered by
	// their first mention within the parameter.
	IncludedRelations []*IncludedRelation
}

// Relation gets the top level inclusion node for provided relation 'field'.
// Returns nil if the field is not requested.
func (r *IncludeRequest) Relation(field string) *IncludedRelation {
	return findRelation(r.IncludedRelations, field)
}

// Empty checks if the request contains no inclusions at all.
func (r *IncludeRequest) Empty() bool {
	return !r.All && len(r.IncludedRelations) == 0
}

// String implements fmt.Stringer interface. It writes the request back in
// its parameter form with the paths normalized to their first mention order.
func (r *IncludeRequest) String() string {
	if r.All {
		return Wildcard
	}
	sb := &strings.Builder{}
	writePaths(sb, nil, r.IncludedRelations)
	return sb.String()
}

// ParseIncludes parses the raw value of the include parameter into the
// inclusion request tree using the default nested limit. An empty parameter
// results in an empty request.
func ParseIncludes(param string) (*IncludeRequest, error) {
	return ParseIncludesLimit(param, DefaultNestedLimit)
}

// ParseIncludesLimit parses the raw value of the include parameter into the
// inclusion request tree. Paths with more than 'nestedLimit' nested
// separators are rejected. Duplicated paths are merged, the field order of
// the first mention is preserved.
func ParseIncludesLimit(param string, nestedLimit int) (*IncludeRequest, error) {
	req := &IncludeRequest{}
	param = strings.TrimSpace(param)
	if param == "" {
		return req, nil
	}
	for _, path := range strings.Split(param, Separator) {
		path = strings.TrimSpace(path)
		if path == "" {
			return nil, errors.WrapDetf(ErrInvalidParameter, "included parameter: '%s' contains an empty inclusion path", param).
				SetDetails("One of the include paths is empty.")
		}
		if strings.Count(path, NestedSeparator) > nestedLimit {
			return nil, errors.WrapDetf(ErrTooDeep, "inclusion path: '%s' exceeds the maximum nested limit: '%d'", path, nestedLimit).
				SetDetailsf("Include path: '%s' is too deep. The maximum nested level is: '%d'.", path, nestedLimit)
		}
		if err := req.addPath(path); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (r *IncludeRequest) addPath(path string) error {
	children := &r.IncludedRelations
	all := &r.All

	segments := strings.Split(path, NestedSeparator)
	for i, segment := range segments {
		if segment == Wildcard {
			if i != len(segments)-1 {
				return errors.WrapDetf(ErrInvalidParameter, "inclusion path: '%s' uses the wildcard at a non terminal segment", path).
					SetDetailsf("Include path: '%s' - the '%s' token is allowed only as the last path segment.", path, Wildcard)
			}
			*all = true
			return nil
		}
		if err := validateSegment(path, segment); err != nil {
			return err
		}

		node := findRelation(*children, segment)
		if node == nil {
			node = &IncludedRelation{Field: segment}
			*children = append(*children, node)
		}
		children = &node.IncludedRelations
		all = &node.All
	}
	return nil
}

func validateSegment(path, segment string) error {
	if segment == "" {
		return errors.WrapDetf(ErrInvalidParameter, "inclusion path: '%s' contains an empty field segment", path).
			SetDetailsf("Include path: '%s' contains an empty field name.", path)
	}
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return errors.WrapDetf(ErrInvalidParameter, "inclusion path segment: '%s' contains an illegal character: '%c'", segment, r).
				SetDetailsf("Include field: '%s' contains an illegal character: '%c'.", segment, r)
		}
	}
	return nil
}

func findRelation(relations []*IncludedRelation, field string) *IncludedRelation {
	for _, relation := range relations {
		if relation.Field == field {
			return relation
		}
	}
	return nil
}

func writePaths(sb *strings.Builder, prefix []string, relations []*IncludedRelation) {
	for _, relation := range relations {
		path := append(prefix, relation.Field)
		if len(relation.IncludedRelations) == 0 && !relation.All {
			if sb.Len() != 0 {
				sb.WriteString(Separator)
			}
			sb.WriteString(strings.Join(path, NestedSeparator))
			continue
		}
		if relation.All {
			if sb.Len() != 0 {
				sb.WriteString(Separator)
			}
			sb.WriteString(strings.Join(append(path, Wildcard), NestedSeparator))
		}
		writePaths(sb, path, relation.IncludedRelations)
	}
}
