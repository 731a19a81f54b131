package process

import (
	"errors"
	"fmt"
)

// ErrInvalidClass is returned when a priority outside 0..3 reaches the engine.
var ErrInvalidClass = errors.New("process: invalid priority class")

// Class represents a priority class. Every class is bound to exactly one
// scheduling policy, one CPU and one memory pool.
type Class int

const (
	// ClassZero is served first-come-first-served on CPU-1 out of the reserved pool.
	ClassZero Class = iota
	// ClassHigh is served shortest-job-first on CPU-2.
	ClassHigh
	// ClassMedium is served round robin with the medium quantum on CPU-2.
	ClassMedium
	// ClassLow is served round robin with the low quantum on CPU-2.
	ClassLow
)

// Classes lists all classes in dispatch order.
var Classes = []Class{ClassZero, ClassHigh, ClassMedium, ClassLow}

// Policy names a scheduling discipline
type Policy string

const (
	PolicyFCFS       Policy = "FCFS"
	PolicySJF        Policy = "SJF"
	PolicyRoundRobin Policy = "RR"
)

const (
	CPU1 = "CPU-1"
	CPU2 = "CPU-2"
)

// ParseClass converts a raw priority into a Class
func ParseClass(priority int) (Class, error) {
	class := Class(priority)
	if !class.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidClass, priority)
	}
	return class, nil
}

// Valid returns true for classes 0..3
func (c Class) Valid() bool {
	return c >= ClassZero && c <= ClassLow
}

// Policy returns the scheduling policy bound to the class
func (c Class) Policy() Policy {
	switch c {
	case ClassZero:
		return PolicyFCFS
	case ClassHigh:
		return PolicySJF
	default:
		return PolicyRoundRobin
	}
}

// CPU returns the label of the CPU serving the class
func (c Class) CPU() string {
	if c == ClassZero {
		return CPU1
	}
	return CPU2
}

// Reserved returns true when the class draws memory from the reserved pool.
func (c Class) Reserved() bool {
	return c == ClassZero
}

func (c Class) String() string {
	return fmt.Sprintf("priority-%d", int(c))
}
