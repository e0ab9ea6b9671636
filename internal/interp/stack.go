package interp

import "github.com/stockerssld/myst/internal/value"

// stack is the evaluator's operand stack (spec §2, §3.4): the visitor
// pushes one Value per successfully evaluated expression, and a block
// of N children must leave exactly one net value behind — the last
// child's result — once its own children's intermediates are popped.
type stack struct {
	values []value.Value
}

func (s *stack) push(v value.Value) { s.values = append(s.values, v) }

func (s *stack) pop() value.Value {
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v
}

func (s *stack) top() value.Value { return s.values[len(s.values)-1] }

func (s *stack) len() int { return len(s.values) }
