// Package fuzztests houses Go fuzz harnesses that exercise the early
// analysis pipeline (source -> lexer -> parser). Its goal is to smoke test
// robustness and guard against panics on arbitrary inputs: the front end
// must either tokenize and parse or return an error, never crash.
package fuzztests
