package presetenv

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for resolution failures. Every typed error below matches
// one of these with errors.Is.
var (
	// ErrInvalidTargetVersion indicates a target environment version that is
	// not a valid semantic version.
	ErrInvalidTargetVersion = errors.New("invalid target version")

	// ErrInvalidCandidateVersion indicates a support table version that
	// cannot be normalized to a semantic version.
	ErrInvalidCandidateVersion = errors.New("invalid candidate version")

	// ErrUnknownIdentifier indicates a transform name with no registered
	// handler.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrInvalidOption indicates an option value outside its allowed set.
	ErrInvalidOption = errors.New("invalid option")
)

// TargetVersionError reports a target environment whose version is not a
// valid semantic version.
type TargetVersionError struct {
	Environment string
	Value       string
}

func (e *TargetVersionError) Error() string {
	return fmt.Sprintf("invalid target version for %s: %s is not a valid semantic version",
		e.Environment, strconv.Quote(e.Value))
}

func (e *TargetVersionError) Unwrap() error {
	return ErrInvalidTargetVersion
}

// CandidateVersionError reports a support table version that could not be
// normalized.
type CandidateVersionError struct {
	Environment string
	Value       string
	Err         error
}

func (e *CandidateVersionError) Error() string {
	return fmt.Sprintf("invalid support version for %s: %s: %v",
		e.Environment, strconv.Quote(e.Value), e.Err)
}

func (e *CandidateVersionError) Unwrap() []error {
	return []error{ErrInvalidCandidateVersion, e.Err}
}

// UnknownIdentifierError reports a transform name missing from every
// registry consulted.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return "unknown identifier " + strconv.Quote(e.Name)
}

func (e *UnknownIdentifierError) Unwrap() error {
	return ErrUnknownIdentifier
}
