package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an argument is invalid
	// (wrong index vector length, zero-length hyperslab axis, negative count).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when an axis or coordinate lies outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRankMismatch is returned when an operand has a different rank than the array.
	ErrRankMismatch = errors.New("rank mismatch")

	// ErrInvalidRank is returned by New when the rank is below 1 or above MaxRank.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrModified is returned by an Enumerator once the array was mutated after
	// the enumerator was created.
	ErrModified = errors.New("array was modified; enumeration operation may not execute")

	// ErrCapacityOverflow is returned when a requested extent cannot be addressed.
	ErrCapacityOverflow = errors.New("capacity overflow")
)

// ErrLengthMismatch indicates an index vector whose length differs from the array rank.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("input array is of incorrect length: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrAxisOutOfRange indicates an axis argument outside [0, rank).
//
// It matches ErrIndexOutOfRange via errors.Is.
type ErrAxisOutOfRange struct {
	Axis int
	Rank int
}

func (e *ErrAxisOutOfRange) Error() string {
	return fmt.Sprintf("axis %d out of range for rank %d", e.Axis, e.Rank)
}

func (e *ErrAxisOutOfRange) Unwrap() error { return ErrIndexOutOfRange }
