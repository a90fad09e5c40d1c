// Package ec is the engine of a stack-based (RPN) engineering calculator.
// It hosts the tokenizer, the action dispatch machinery, the stack machine
// and the number formatting subsystem. The interactive front end lives in
// cmd/ec and only touches the engine through calc.Calculator.
package ec

const (
	Version     = "2.0.0"
	VersionDate = "2026-08-30"
)
