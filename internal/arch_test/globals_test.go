package arch_test

import (
	"go/ast"
	"go/token"
	"strings"
	"testing"
)

// constLikePrefixes names package vars that are treated as constants by
// convention: the TUI's lipgloss colors and styles.
var constLikePrefixes = map[string][]string{
	"tui": {"style", "color"},
}

// TestNoMutableGlobalState rejects package-level vars other than error
// sentinels, sync and atomic values, literals and lookup tables.
func TestNoMutableGlobalState(t *testing.T) {
	t.Parallel()

	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			fset, files := parsePackage(t, pkg)
			for _, f := range files {
				for _, decl := range f.Decls {
					gd, ok := decl.(*ast.GenDecl)
					if !ok || gd.Tok != token.VAR {
						continue
					}
					for _, spec := range gd.Specs {
						vs := spec.(*ast.ValueSpec)
						for i, name := range vs.Names {
							if !constLike(pkg, name.Name, vs, i) {
								t.Errorf("%s: mutable package state %s; pass it through a constructor instead",
									fset.Position(name.Pos()), name.Name)
							}
						}
					}
				}
			}
		})
	}
}

func constLike(pkg, name string, vs *ast.ValueSpec, i int) bool {
	if name == "_" {
		return true
	}
	for _, p := range constLikePrefixes[pkg] {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	if sel, ok := vs.Type.(*ast.SelectorExpr); ok {
		if x, ok := sel.X.(*ast.Ident); ok && (x.Name == "sync" || x.Name == "atomic") {
			return true
		}
	}
	if i >= len(vs.Values) {
		return false
	}
	switch v := vs.Values[i].(type) {
	case *ast.BasicLit, *ast.CompositeLit:
		return true
	case *ast.CallExpr:
		fn := selectorName(v.Fun)
		return fn == "errors.New" || fn == "fmt.Errorf"
	}
	return false
}

func selectorName(expr ast.Expr) string {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return ""
	}
	x, ok := sel.X.(*ast.Ident)
	if !ok {
		return ""
	}
	return x.Name + "." + sel.Sel.Name
}
