package checkout

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// ErrInvalidMutation is returned for a checkout document the client cannot use.
var ErrInvalidMutation = errors.New("invalid checkout mutation")

//go:embed storefront.graphql
var storefrontSchemaSDL string

var (
	schemaOnce sync.Once
	schema     *ast.Schema
	schemaErr  error
)

func storefrontSchema() (*ast.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gqlparser.LoadSchema(&ast.Source{Name: "storefront.graphql", Input: storefrontSchemaSDL})
	})
	return schema, schemaErr
}

// ValidateMutation checks a checkout document against the Storefront schema.
// The document must define the CheckoutCreate mutation taking $input and must
// select the fields the client decodes: checkout.webUrl and checkoutUserErrors.message.
func ValidateMutation(query string) error {
	s, err := storefrontSchema()
	if err != nil {
		return fmt.Errorf("load storefront schema: %w", err)
	}

	doc, errs := gqlparser.LoadQuery(s, query)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMutation, errs.Error())
	}

	op := doc.Operations.ForName(checkoutCreateOperation)
	if op == nil || op.Operation != ast.Mutation {
		return fmt.Errorf("%w: mutation %s not defined", ErrInvalidMutation, checkoutCreateOperation)
	}
	if op.VariableDefinitions.ForName("input") == nil {
		return fmt.Errorf("%w: variable $input not declared", ErrInvalidMutation)
	}

	create := selectedField(op.SelectionSet, "checkoutCreate")
	if create == nil {
		return fmt.Errorf("%w: checkoutCreate not selected", ErrInvalidMutation)
	}
	for _, path := range [][]string{{"checkout", "webUrl"}, {"checkoutUserErrors", "message"}} {
		if selectedPath(create.SelectionSet, path...) == nil {
			return fmt.Errorf("%w: %s.%s not selected", ErrInvalidMutation, path[0], path[1])
		}
	}
	return nil
}

// selectedField finds an unaliased field, since responses are decoded by field name.
func selectedField(set ast.SelectionSet, name string) *ast.Field {
	for _, sel := range set {
		if f, ok := sel.(*ast.Field); ok && f.Name == name && f.Alias == name {
			return f
		}
	}
	return nil
}

func selectedPath(set ast.SelectionSet, path ...string) *ast.Field {
	var f *ast.Field
	for _, name := range path {
		if f = selectedField(set, name); f == nil {
			return nil
		}
		set = f.SelectionSet
	}
	return f
}
