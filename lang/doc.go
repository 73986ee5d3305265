// Package lang implements vcalc, a small numeric expression language with
// integers, floats, vectors, variables and single-parameter functions.
//
// Source text passes through three stages: [Lex] produces lexemes, [Parse]
// builds a syntax tree annotated with source spans, and [Interpret] evaluates
// the tree against a mutable [Env]. [Run] chains the stages for a single
// expression; [Exec] does the same for newline-separated programs.
//
// Programs parsed by [ParseSource] and [Exec] are cached per label and
// source text until [ClearCache].
//
// # Grammar
//
// Informal EBNF, weakest binding first:
//
//	Expr    → Comp '=' Expr            (Comp is a variable or call: assignment)
//	        | Comp ('=' Comp)*         (otherwise: equality)
//	Comp    → Arith (CompOp Arith)*    CompOp: != < > <= >= is
//	Arith   → Term (('+' | '-') Term)*
//	Term    → Power (('*' | '/' | '%') Power)*
//	Power   → Factor ('^' Factor)*
//	Factor  → '-' Factor | Hash
//	Hash    → Call ('#' Call)*
//	Call    → Atom ('(' Expr ')')*     ('(' must touch the callee)
//	Atom    → Int | Float | Ident | 'pi' | 'inf' | '(' Expr ')' | '[' Expr* ']'
//
// # Example
//
// A session in the interactive shell:
//
//	> v = [1 2 3]
//	[1, 2, 3]
//	> v + [10 20]
//	[11, 22]
//	> v # 2
//	3
//	> sq(x) = x * x
//	function(x) = x * x
//	> sq(v) / 2
//	[0.5, 2, 4.5]
//
// # Functions
//
// A function value captures its parameter name and unevaluated body, and
// nothing else. Each call evaluates the body in a new environment holding
// only the function's own name and its parameter, so functions may recurse
// but cannot see the caller's variables.
//
// Unbound names applied to an argument resolve to [Builtins], which are
// evaluated with expr-lang.
//
// # Diagnostics
//
// Every failure is an [*Error] that renders as
//
//	ERROR: <detail> - <label> <ln: L, column: C>
//
// with a 0-based line and column.
package lang
