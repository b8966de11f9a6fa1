package model

import "fmt"

// RuleError carries jurisdiction context for rule-table failures
type RuleError struct {
	Country CountryCode
	Rule    string
	Message string
	Cause   error
}

func (e *RuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Country, e.Rule, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Country, e.Rule, e.Message)
}

func (e *RuleError) Unwrap() error {
	return e.Cause
}

// NewRuleError creates a new rule error
func NewRuleError(country CountryCode, rule, message string, cause error) *RuleError {
	return &RuleError{
		Country: country,
		Rule:    rule,
		Message: message,
		Cause:   cause,
	}
}

// DecodeError represents failures reading invoice input at the boundary
type DecodeError struct {
	Source  string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode failed [%s]: %s (%v)", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode failed [%s]: %s", e.Source, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeError creates a new decode error
func NewDecodeError(source, message string, cause error) *DecodeError {
	return &DecodeError{
		Source:  source,
		Message: message,
		Cause:   cause,
	}
}
