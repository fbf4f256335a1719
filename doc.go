// Package symexpr parses, evaluates, and prints flat infix integer expressions
// that may contain symbolic terms.
//
// The grouping rule is simple: within each parenthesized level,
// the leftmost operator at the shallowest depth splits the expression. There
// is no precedence between operators, so "2 * 3 + 4" is "2 * (3 + 4)", which
// is 14. Use parentheses to say what you mean.
//
// Symbols like "x" or "sin(x)" parse into trees and print back out, but they
// cannot be evaluated yet; Eval reports an *UnimplementedError for them.
package symexpr
