// Package builder constructs the namespace tree for a parsed
// localization document: it classifies values, normalizes identifiers
// and mirrors the document's object hierarchy as nested namespaces.
package builder

import (
	"fmt"

	"github.com/statlang/statlang/internal/config"
	"github.com/statlang/statlang/internal/errors"
	"github.com/statlang/statlang/internal/models"
)

// Builder builds a namespace tree from a models.Value document. A
// Builder is good for one document; create a fresh one per invocation.
type Builder struct {
	cfg *config.Config
	// seen tracks normalized identifiers per namespace so sibling
	// collisions fail instead of silently shadowing each other
	seen map[*models.Namespace]map[string]struct{}
}

// NewBuilder creates a new Builder instance with default configuration.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(config.NewConfig())
}

// NewBuilderWithConfig creates a new Builder instance with custom configuration.
func NewBuilderWithConfig(cfg *config.Config) *Builder {
	return &Builder{
		cfg:  cfg,
		seen: make(map[*models.Namespace]map[string]struct{}),
	}
}

// Build constructs the namespace tree for doc. fileName is the source
// file's base name; it becomes the constant identifier when the whole
// document is a bare scalar. Any failure aborts the build whole, a
// partial tree is never returned.
func (b *Builder) Build(doc models.Value, fileName string) (*models.Namespace, error) {
	root := &models.Namespace{Name: b.cfg.RootName}
	if err := b.buildInto(root, doc, fileName); err != nil {
		return nil, err
	}
	return root, nil
}

// buildInto dispatches on the three shapes a document level can take:
// an object contributing members, an array of objects merged as
// siblings, or a bare scalar identified by the file name.
func (b *Builder) buildInto(ns *models.Namespace, value models.Value, fileName string) error {
	switch v := value.(type) {
	case models.Object:
		for _, member := range v {
			if err := b.addMember(ns, member.Key, member.Value); err != nil {
				return err
			}
		}
		return nil
	case models.Array:
		// Root collapse: an array of objects is sugar for composing
		// several objects at one level, so elements merge into ns
		// without an extra nesting step.
		for i, elem := range v {
			obj, ok := elem.(models.Object)
			if !ok {
				return errors.NewBuildError(
					fmt.Sprintf("expected an object at root array element %d, got %s", i, models.JSONText(elem)),
					errors.ErrArrayRootContainsNonObject,
				)
			}
			if err := b.buildInto(ns, obj, fileName); err != nil {
				return err
			}
		}
		return nil
	default:
		// Bare scalar document: exactly one constant, named after the
		// source file rather than any JSON key.
		rendered, err := Classify(v)
		if err != nil {
			return err
		}
		return b.appendEntry(ns, b.constName(fileName), &models.ConstantEntry{
			Identifier: b.constName(fileName),
			Value:      rendered,
		})
	}
}

// addMember appends one object member to ns: nested objects recurse
// into child namespaces, everything else classifies into a constant.
func (b *Builder) addMember(ns *models.Namespace, key string, value models.Value) error {
	switch v := value.(type) {
	case models.Object:
		child := &models.Namespace{Name: b.namespaceName(key)}
		if err := b.buildInto(child, v, ""); err != nil {
			return err
		}
		return b.appendEntry(ns, child.Name, child)
	default:
		rendered, err := Classify(v)
		if err != nil {
			return errors.NewBuildError(
				fmt.Sprintf("cannot render value of key '%s'", key),
				err,
			)
		}
		return b.appendEntry(ns, b.constName(key), &models.ConstantEntry{
			Identifier: b.constName(key),
			Value:      rendered,
		})
	}
}

// appendEntry adds entry to ns unless its identifier collides with a
// sibling after normalization.
func (b *Builder) appendEntry(ns *models.Namespace, identifier string, entry models.Entry) error {
	ids := b.seen[ns]
	if ids == nil {
		ids = make(map[string]struct{})
		b.seen[ns] = ids
	}
	if _, dup := ids[identifier]; dup {
		name := ns.Name
		if name == "" {
			name = models.DefaultRootName
		}
		return errors.NewBuildError(
			fmt.Sprintf("identifier '%s' appears twice in namespace '%s'", identifier, name),
			errors.ErrDuplicateIdentifier,
		)
	}
	ids[identifier] = struct{}{}
	ns.Entries = append(ns.Entries, entry)
	return nil
}
