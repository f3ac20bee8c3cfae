/*
Package slac implements the Simple Logic & Arithmetic Compiler, an
embeddable expression engine: a short boolean or arithmetic expression is
compiled into a structured tree, optionally rewritten, validated against a
host-supplied environment and evaluated to a single dynamically-typed
value.

# Pipeline

	source ── Tokenize ──> []Token ── Parse ──> Expression
	                                              │
	                            Optimize / OptimizeAll (optional)
	                                              │
	                 CheckVariablesAndFunctions (optional, advisory)
	                                              │
	                                  Execute ──> Value

Each stage is independent: a compiled Expression is an immutable tree that
may be shared across goroutines and evaluated repeatedly against different
environments.

# Expression Syntax

	<expr>    := <or>
	<or>      := <and> ('or' <and>)*
	<and>     := <equality> ('and' <equality>)*
	<equality>:= <cmp> (('=' | '<>') <cmp>)*
	<cmp>     := <term> (('<' | '>' | '<=' | '>=') <term>)*
	<term>    := <factor> (('+' | '-') <factor>)*
	<factor>  := <unary> (('*' | '/' | 'div' | 'mod') <unary>)*
	<unary>   := ('-' | 'not') <unary> | <call>
	<call>    := <primary> ('(' <args> ')')?
	<primary> := number | 'string' | true | false | identifier
	           | '(' <expr> ')' | '[' <args> ']'

Keywords and identifiers are case-insensitive; identifiers may contain
letters, digits, '_' and '-'.

# Values

A Value is one of Boolean, Number (float64), String or Array. The '+'
operator is overloaded: numeric addition, string concatenation and array
concatenation. All other operators require matching operand types; a
mismatch is a runtime error, never a silent coercion.

A reference to a variable the environment does not know evaluates to an
empty "no value" rather than failing, so expressions like

	does_not_exist = ''

are well-defined (and true).

# Short-Circuit Evaluation

'and' and 'or' only evaluate their right operand when the left one does
not already decide the result. The reserved three-parameter if_then call
is eagerly evaluated like any other function call; Optimize rewrites it
into a dedicated ternary node that evaluates only the selected branch:

	ast, _ := slac.Compile("if_then(x > 0, 1/x, 0)")
	ast = slac.Optimize(ast) // 1/x is no longer evaluated when x <= 0

# Environments

The host supplies variables and native functions through the Environment
interface. StaticEnvironment is a ready-made registry with
case-insensitive, last-write-wins registration. The function standard
library lives in the stdlib subpackage and is entirely optional.
*/
package slac
