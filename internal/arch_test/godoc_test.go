package arch_test

import (
	"go/ast"
	"strings"
	"testing"
)

// TestExportedSymbolsHaveGoDoc requires a comment starting with the symbol
// name on every exported declaration. Members of a documented const or var
// group, or with a trailing comment, pass on their own.
func TestExportedSymbolsHaveGoDoc(t *testing.T) {
	t.Parallel()

	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			fset, files := parsePackage(t, pkg)
			for _, f := range files {
				for _, decl := range f.Decls {
					for _, miss := range undocumented(decl) {
						t.Errorf("%s: exported %s has no GoDoc comment", fset.Position(miss.Pos()), miss.Name)
					}
				}
			}
		})
	}
}

// undocumented returns the exported names declared by decl that lack
// documentation.
func undocumented(decl ast.Decl) []*ast.Ident {
	var out []*ast.Ident
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Name.IsExported() && exportedRecv(d.Recv) && !documents(d.Doc, d.Name.Name) {
			out = append(out, d.Name)
		}
	case *ast.GenDecl:
		grouped := len(d.Specs) > 1
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				doc := s.Doc
				if doc == nil && !grouped {
					doc = d.Doc
				}
				if s.Name.IsExported() && !documents(doc, s.Name.Name) {
					out = append(out, s.Name)
				}
			case *ast.ValueSpec:
				for _, name := range s.Names {
					if !name.IsExported() {
						continue
					}
					if grouped && (hasText(d.Doc) || hasText(s.Comment) || documents(s.Doc, name.Name)) {
						continue
					}
					doc := s.Doc
					if doc == nil && !grouped {
						doc = d.Doc
					}
					if !documents(doc, name.Name) {
						out = append(out, name)
					}
				}
			}
		}
	}
	return out
}

func documents(doc *ast.CommentGroup, name string) bool {
	return doc != nil && strings.HasPrefix(strings.TrimSpace(doc.Text()), name)
}

func hasText(c *ast.CommentGroup) bool {
	return c != nil && strings.TrimSpace(c.Text()) != ""
}

// exportedRecv reports whether a method belongs to an exported type; plain
// functions count as exported.
func exportedRecv(recv *ast.FieldList) bool {
	if recv == nil || len(recv.List) == 0 {
		return true
	}
	expr := recv.List[0].Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.Ident:
			return e.IsExported()
		default:
			return false
		}
	}
}
