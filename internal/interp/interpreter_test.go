package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

// run lexes, parses, resolves, and evaluates src, returning stdout and
// the runtime errors reported.
func run(t *testing.T, src string, opts ...interp.Option) (string, []string) {
	t.Helper()
	toks, lexErrs := lexer.New(src).Scan()
	require.Empty(t, lexErrs)
	stmts, parseErrs := parser.New(toks).Parse()
	require.Empty(t, parseErrs)
	resolveErrs := resolver.New().Resolve(stmts)
	require.Empty(t, resolveErrs)

	var out bytes.Buffer
	allOpts := append([]interp.Option{interp.WithStdout(&out)}, opts...)
	runtimeErrs := interp.New(&out, allOpts...).Interpret(stmts)

	msgs := make([]string, len(runtimeErrs))
	for i, e := range runtimeErrs {
		msgs[i] = e.Error()
	}
	return out.String(), msgs
}

func TestArithmeticAndPrint(t *testing.T) {
	out, errs := run(t, "let a = 1; let b = 2; print(a + b);")
	require.Empty(t, errs)
	assert.Equal(t, "3\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, errs := run(t, "function add(x,y){ return x+y; } print(add(40,2));")
	require.Empty(t, errs)
	assert.Equal(t, "42\n", out)
}

func TestClosureCaptureSurvivesScopeExit(t *testing.T) {
	out, errs := run(t, `let c = 0; function mk(){ let x = 10; function get(){ return x; } x = x + 1; return get; } print(mk()());`)
	require.Empty(t, errs)
	assert.Equal(t, "11\n", out)
}

func TestClassInstantiationAndMethodCall(t *testing.T) {
	out, errs := run(t, `class Car { constructor(n){ this.n = n; } name(){ return this.n; } } let r = new Car("F1"); print(r.name());`)
	require.Empty(t, errs)
	assert.Equal(t, "F1\n", out)
}

func TestSingleInheritanceSuperCall(t *testing.T) {
	out, errs := run(t, `class A { greet(){ return "A"; } } class B extends A { greet(){ return super.greet() + "B"; } } print(new B().greet());`)
	require.Empty(t, errs)
	assert.Equal(t, "AB\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, errs := run(t, `let i = 0; while (i < 3) { print(i); i = i + 1; }`)
	require.Empty(t, errs)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestShadowingPrintsInnerThenOuter(t *testing.T) {
	out, errs := run(t, `let a=1; { let a=2; print(a); } print(a);`)
	require.Empty(t, errs)
	assert.Equal(t, "2\n1\n", out)
}

func TestAssignmentExpressionReturnsAssignedValue(t *testing.T) {
	out, errs := run(t, `let a=0; print(a=5);`)
	require.Empty(t, errs)
	assert.Equal(t, "5\n", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	out, errs := run(t, `function f(a,b){ print("called"); return 1; } f(1);`)
	assert.Empty(t, out, "body must not execute on arity mismatch")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Runtime Error")
}

func TestInstantiatingWithoutNewIsRuntimeError(t *testing.T) {
	_, errs := run(t, `class C {} C();`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "new")
}

func TestThisBindingInsideMethod(t *testing.T) {
	out, errs := run(t, `class C { constructor(){ this.tag = "x"; } check(){ return this.tag; } } print(new C().check());`)
	require.Empty(t, errs)
	assert.Equal(t, "x\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, errs := run(t, `print(z);`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "undefined variable 'z'")
}

func TestUndefinedGlobalAssignmentIsRuntimeError(t *testing.T) {
	_, errs := run(t, `z = 1;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "undefined variable 'z'")
}

func TestRuntimeErrorInOneStatementDoesNotHaltTheNext(t *testing.T) {
	out, errs := run(t, `print(z); print("still runs");`)
	require.Len(t, errs, 1)
	assert.Equal(t, "still runs\n", out)
}

func TestReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	_, errs := run(t, `return 1;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "'return' outside of a function")
}

func TestTernaryEvaluatesOnlySelectedBranch(t *testing.T) {
	out, errs := run(t, `function boom(){ print("boom"); return 1; } print(true ? 1 : boom());`)
	require.Empty(t, errs)
	assert.Equal(t, "1\n", out)
}

func TestPrefixAndPostfixIncrement(t *testing.T) {
	out, errs := run(t, `let x = 1; print(++x); print(x++); print(x);`)
	require.Empty(t, errs)
	assert.Equal(t, "2\n2\n3\n", out)
}

func TestStringConcatenationViaPlus(t *testing.T) {
	out, errs := run(t, `print("a" + 1);`)
	require.Empty(t, errs)
	assert.Equal(t, "a1\n", out)
}

func TestCrossTypeEqualityIsFalse(t *testing.T) {
	out, errs := run(t, `print("1" == 1);`)
	require.Empty(t, errs)
	assert.Equal(t, "false\n", out)
}

func TestPowerOperator(t *testing.T) {
	out, errs := run(t, `print(2^10);`)
	require.Empty(t, errs)
	assert.Equal(t, "1024\n", out)
}

func TestDuplicateDeclarationInBlockScopeIsRuntimeError(t *testing.T) {
	_, errs := run(t, `{ let a = 1; let a = 2; }`)
	require.Len(t, errs, 1)
}

func TestTopLevelRedeclarationIsAllowed(t *testing.T) {
	out, errs := run(t, `let a = 1; let a = 2; print(a);`)
	require.Empty(t, errs)
	assert.Equal(t, "2\n", out)
}

func TestClockNativeUsesInjectedSource(t *testing.T) {
	out, errs := run(t, `print(clock());`, interp.WithClock(func() float64 { return 123 }))
	require.Empty(t, errs)
	assert.Equal(t, "123\n", out)
}

func TestCompoundAssignmentDesugarsToBinaryOp(t *testing.T) {
	out, errs := run(t, `let total = 10; total += 5; total -= 2; total *= 3; total /= 2; print(total);`)
	require.Empty(t, errs)
	assert.Equal(t, "19.5\n", out)
}

func TestStrNativeCoercesToString(t *testing.T) {
	out, errs := run(t, `print(str(42) + "!");`)
	require.Empty(t, errs)
	assert.Equal(t, "42!\n", out)
}
