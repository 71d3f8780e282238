package arch_test

import (
	"go/ast"
	"testing"
)

// sharedInterfaces lists interfaces that live beside their implementations
// because consumers in other packages import them. assets.Source is
// implemented by DirSource, HTTPSource and the ManifestSource and Limited
// decorators.
var sharedInterfaces = map[string]map[string]bool{
	"assets": {"Source": true},
}

// TestInterfacePlacement flags an interface declared in the same package
// as a type whose method set covers it, unless listed in sharedInterfaces.
func TestInterfacePlacement(t *testing.T) {
	t.Parallel()

	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			_, files := parsePackage(t, pkg)

			ifaces := make(map[string][]string)
			methods := make(map[string]map[string]bool)
			for _, f := range files {
				for _, decl := range f.Decls {
					switch d := decl.(type) {
					case *ast.GenDecl:
						for _, spec := range d.Specs {
							ts, ok := spec.(*ast.TypeSpec)
							if !ok {
								continue
							}
							if it, ok := ts.Type.(*ast.InterfaceType); ok {
								for _, m := range it.Methods.List {
									for _, n := range m.Names {
										ifaces[ts.Name.Name] = append(ifaces[ts.Name.Name], n.Name)
									}
								}
							}
						}
					case *ast.FuncDecl:
						recv := receiverName(d.Recv)
						if recv == "" {
							continue
						}
						if methods[recv] == nil {
							methods[recv] = make(map[string]bool)
						}
						methods[recv][d.Name.Name] = true
					}
				}
			}

			for iface, want := range ifaces {
				if len(want) == 0 || sharedInterfaces[pkg][iface] {
					continue
				}
				for typ, have := range methods {
					if coversAll(have, want) {
						t.Errorf("interface %s is implemented by %s in the same package; declare it where it is consumed", iface, typ)
					}
				}
			}
		})
	}
}

func receiverName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func coversAll(have map[string]bool, want []string) bool {
	for _, m := range want {
		if !have[m] {
			return false
		}
	}
	return true
}
