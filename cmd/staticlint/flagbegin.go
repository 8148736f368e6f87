package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const loadingPkgSuffix = "internal/loading"

// FlagBeginAnalyzer reports calls of loading.Flag.Begin whose end function is
// lost. Such a flag reports loading until the process exits.
var FlagBeginAnalyzer = &analysis.Analyzer{
	Name:     "flagbeginlint",
	Doc:      "reports loading.Flag.Begin calls whose end function is discarded",
	Run:      runFlagBegin,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runFlagBegin(pass *analysis.Pass) (interface{}, error) {
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.GoStmt)(nil),
		(*ast.DeferStmt)(nil),
		(*ast.AssignStmt)(nil),
	}

	ins.Preorder(nodeFilter, func(n ast.Node) {
		switch stmt := n.(type) {
		case *ast.ExprStmt:
			if call, ok := stmt.X.(*ast.CallExpr); ok && isFlagBegin(pass.TypesInfo, call) {
				reportDiscarded(pass, call)
			}
		case *ast.GoStmt:
			if isFlagBegin(pass.TypesInfo, stmt.Call) {
				reportDiscarded(pass, stmt.Call)
			}
		case *ast.DeferStmt:
			if isFlagBegin(pass.TypesInfo, stmt.Call) {
				pass.Reportf(stmt.Call.Pos(), "deferred %s starts the operation at return, call the end function instead",
					render(pass.Fset, stmt.Call))
			}
		case *ast.AssignStmt:
			if len(stmt.Lhs) != len(stmt.Rhs) {
				return
			}
			for i, rhs := range stmt.Rhs {
				call, ok := rhs.(*ast.CallExpr)
				if !ok || !isFlagBegin(pass.TypesInfo, call) {
					continue
				}
				if id, ok := stmt.Lhs[i].(*ast.Ident); ok && id.Name == "_" {
					reportDiscarded(pass, call)
				}
			}
		}
	})

	return nil, nil
}

func reportDiscarded(pass *analysis.Pass, call *ast.CallExpr) {
	pass.Reportf(call.Pos(), "end function of %s is discarded", render(pass.Fset, call))
}

// isFlagBegin reports whether call invokes Begin on a Flag declared in a
// package ending in internal/loading.
func isFlagBegin(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Name() != "Begin" {
		return false
	}

	recv := fn.Type().(*types.Signature).Recv()
	if recv == nil {
		return false
	}

	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	return obj.Name() == "Flag" && obj.Pkg() != nil && strings.HasSuffix(obj.Pkg().Path(), loadingPkgSuffix)
}
