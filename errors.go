package stacklang

import "fmt"

// Error kinds implement spec §7's table as distinct named types, the
// same idiom as the teacher's haltError/progError/storError: small types
// that carry just enough context to format a message, checkable with
// errors.As instead of string matching.

// StackUnderflowError is raised by popping an empty parameter stack.
type StackUnderflowError struct{ Word string }

func (e StackUnderflowError) Error() string {
	return fmt.Sprintf("%v: parameter stack underflow", e.Word)
}

// ReturnStackUnderflowError is raised by peeking/popping an empty return stack.
type ReturnStackUnderflowError struct{}

func (ReturnStackUnderflowError) Error() string { return "return stack underflow" }

// CompilationStackUnderflowError is raised by ; without a matching :
// (or ] without a matching [).
type CompilationStackUnderflowError struct{ Word string }

func (e CompilationStackUnderflowError) Error() string {
	return fmt.Sprintf("%v: compilation stack underflow", e.Word)
}

// UnknownWordError is raised when the cursor yields a token that is
// neither a dictionary entry nor a parseable literal.
type UnknownWordError struct{ Token string }

func (e UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word: %q", e.Token)
}

// BadBranchError is raised when branch's offset cell is not a finite number.
type BadBranchError struct{ Got Value }

func (e BadBranchError) Error() string {
	return fmt.Sprintf("branch: not a finite number offset: %#v", e.Got)
}

// BadStackForZeroBranchError is raised when 0branch finds a non-number
// on top of the parameter stack.
type BadStackForZeroBranchError struct{ Got Value }

func (e BadStackForZeroBranchError) Error() string {
	return fmt.Sprintf("0branch: not a number: %#v", e.Got)
}

// BadStackFrameError is raised when -stackFrame's preconditions are
// violated: either operand isn't a CompiledCell, or they name different entries.
type BadStackFrameError struct{ A, B Value }

func (e BadStackFrameError) Error() string {
	return fmt.Sprintf("-stackFrame: bad operands: %#v, %#v", e.A, e.B)
}

// CloneNonArrayError is raised by clone on a non-array value.
type CloneNonArrayError struct{ Got Value }

func (e CloneNonArrayError) Error() string {
	return fmt.Sprintf("clone: not an array: %#v", e.Got)
}

// EachNeedsArrayError is raised when each's TOS is not an array.
type EachNeedsArrayError struct{ Got Value }

func (e EachNeedsArrayError) Error() string {
	return fmt.Sprintf("each: not an array: %#v", e.Got)
}

// CompileNowNotPrimitiveError is raised when compileNow:'s target word
// does not parse as a literal primitive.
type CompileNowNotPrimitiveError struct{ Token string }

func (e CompileNowNotPrimitiveError) Error() string {
	return fmt.Sprintf("compileNow: not a literal primitive: %q", e.Token)
}

// UncallableCalledError is raised when an anonymous placeholder
// primitive (compiled as a stand-in, never meant to run) is invoked.
type UncallableCalledError struct{ Why string }

func (e UncallableCalledError) Error() string {
	return fmt.Sprintf("uncallable placeholder invoked: %v", e.Why)
}

// BadRegexError is raised when re/ or match/'s literal text fails to
// compile as a regular expression.
type BadRegexError struct {
	Pattern string
	Err     error
}

func (e BadRegexError) Error() string {
	return fmt.Sprintf("bad regex %q: %v", e.Pattern, e.Err)
}

func (e BadRegexError) Unwrap() error { return e.Err }

// MatchOperandError is raised when match's two operands are not
// (regex, string) in the expected positions.
type MatchOperandError struct{ Regex, Str Value }

func (e MatchOperandError) Error() string {
	return fmt.Sprintf("match: bad operands: %#v, %#v", e.Regex, e.Str)
}

// NotArrayError is raised by an array primitive (push, pop, first, nth,
// spread) whose operand is not an *Array.
type NotArrayError struct {
	Word string
	Got  Value
}

func (e NotArrayError) Error() string {
	return fmt.Sprintf("%v: not an array: %#v", e.Word, e.Got)
}

// NotSettableError is raised by ! or @ when the popped token is not a
// CompiledCell (the engine's only getter/setter-carrying Value).
type NotSettableError struct{ Got Value }

func (e NotSettableError) Error() string {
	return fmt.Sprintf("not a settable token: %#v", e.Got)
}

// ControlStackLimitError is raised when pushing to the control stack
// (each/endeach, >control) would exceed Context.ControlStackLimit.
type ControlStackLimitError struct{ Limit int }

func (e ControlStackLimitError) Error() string {
	return fmt.Sprintf("control stack exceeded limit of %v", e.Limit)
}

// UserThrowError is raised by throwNewError with an arbitrary message.
type UserThrowError struct{ Message string }

func (e UserThrowError) Error() string { return e.Message }
