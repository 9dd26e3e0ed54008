// Package copyablecheck provides a go/analysis based analyzer that reports
// deferred-logging arguments whose types are not safe to copy and therefore
// force the logging pipeline onto its eager formatting path.
package copyablecheck

import (
	"errors"
	"flag"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"pkt.systems/copyable/typecheck"
)

// Flags for the analyzer.
var (
	deferredFuncs string
	trustedTypes  string
)

func init() {
	Analyzer.Flags.StringVar(&deferredFuncs, "funcs", "",
		"comma-separated deferred-logging functions whose variadic arguments are checked (e.g., pkg.Func or pkg.Type.Method)")
	Analyzer.Flags.StringVar(&trustedTypes, "trust", "",
		"comma-separated fully qualified type names to treat as safe to copy (e.g., time.Time)")
}

// Analyzer reports arguments at configured deferred-logging call sites whose
// static types classify as not safe to copy. Without -funcs it does nothing.
var Analyzer = &analysis.Analyzer{
	Name:     "copyablecheck",
	Doc:      "reports logging arguments whose types force eager formatting",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	targets := splitSet(deferredFuncs)
	if len(targets) == 0 {
		return nil, nil
	}
	checker := typecheck.New(splitList(trustedTypes)...)

	skipFiles := buildSkipFiles(pass)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if skipFiles[pass.Fset.Position(call.Pos()).Filename] {
			return
		}
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || !targets[qualifiedName(fn)] {
			return
		}
		checkCall(pass, checker, call, fn)
	})

	return nil, nil
}

// checkCall classifies every expression passed to the variadic tail of a
// matched call and reports the ones that will be formatted eagerly.
func checkCall(pass *analysis.Pass, checker *typecheck.Checker, call *ast.CallExpr, fn *types.Func) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || !sig.Variadic() {
		return
	}
	if call.Ellipsis.IsValid() {
		// Spread slice: the element expressions are not visible here.
		return
	}
	fixed := sig.Params().Len() - 1
	for i := fixed; i < len(call.Args); i++ {
		arg := call.Args[i]
		tv, ok := pass.TypesInfo.Types[arg]
		if !ok || tv.Type == nil {
			continue
		}
		if basic, ok := types.Unalias(tv.Type).(*types.Basic); ok && basic.Kind() == types.UntypedNil {
			// Nothing to tag or register for a nil literal.
			continue
		}
		if checker.IsCopyable(tv.Type) {
			continue
		}
		pass.Reportf(arg.Pos(),
			"argument type %s is not safe to copy and will be formatted eagerly (tag it with a CopyLoggable method or pass -trust)",
			types.TypeString(tv.Type, types.RelativeTo(pass.Pkg)))
	}
}

// buildSkipFiles creates a set of filenames to skip. Generated files are
// always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)
	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			skipFiles[pass.Fset.Position(file.Pos()).Filename] = true
		}
	}
	return skipFiles
}

// qualifiedName renders fn the way the -funcs flag spells it: pkg.Func for
// package functions, pkg.Type.Method for methods (pointer receivers and
// interface methods included).
func qualifiedName(fn *types.Func) string {
	if sig, ok := fn.Type().(*types.Signature); ok {
		if recv := sig.Recv(); recv != nil {
			t := recv.Type()
			if ptr, ok := t.(*types.Pointer); ok {
				t = ptr.Elem()
			}
			named, ok := types.Unalias(t).(*types.Named)
			if !ok {
				return ""
			}
			obj := named.Obj()
			if obj.Pkg() == nil {
				return obj.Name() + "." + fn.Name()
			}
			return obj.Pkg().Path() + "." + obj.Name() + "." + fn.Name()
		}
	}
	if fn.Pkg() == nil {
		return fn.Name()
	}
	return fn.Pkg().Path() + "." + fn.Name()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, p := range splitList(s) {
		set[p] = true
	}
	return set
}
