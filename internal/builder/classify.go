package builder

import (
	"fmt"

	"github.com/statlang/statlang/internal/errors"
	"github.com/statlang/statlang/internal/models"
)

// Classify decides whether a value renders as a single scalar text or a
// fixed-size array of texts, and renders it. Objects are not
// classifiable; the builder turns them into namespaces before ever
// calling here.
func Classify(value models.Value) (models.Rendered, error) {
	switch v := value.(type) {
	case models.Object:
		return nil, errors.NewBuildError("an object cannot be rendered as a constant", nil)
	case models.Array:
		elems := make(models.ArrayText, 0, len(v))
		for i, elem := range v {
			if _, ok := elem.(models.Object); ok {
				return nil, errors.NewBuildError(
					fmt.Sprintf("array element %d is an object, everything except an object was expected", i),
					errors.ErrArrayContainsObject,
				)
			}
			elems = append(elems, scalarText(elem))
		}
		return elems, nil
	default:
		return models.ScalarText(scalarText(value)), nil
	}
}

// scalarText renders a non-object value as constant text: strings
// verbatim, numbers as their source literal, booleans as true/false,
// null as the empty string. A nested array collapses to its compact
// JSON text; its elements are not inspected further.
func scalarText(value models.Value) string {
	switch v := value.(type) {
	case models.String:
		return string(v)
	case models.Number:
		return string(v)
	case models.Bool:
		if v {
			return "true"
		}
		return "false"
	case models.Null:
		return ""
	default:
		return models.JSONText(value)
	}
}
