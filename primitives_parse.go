package stacklang

import "regexp"

// registerParsePrimitives implements spec §4.7's literal/parsing words
// and the match operation that re/ and match/ compile calls to.
func registerParsePrimitives(dict *Dictionary) {
	dict.Define("'", quoteStringPrimitive, true)
	dict.Define("(", commentPrimitive, true)
	dict.Define("re/", reSlashPrimitive, true)
	dict.Define("match/", matchSlashPrimitive, true)
	dict.Define("word", wordPrimitive, true)
	dict.Define("match", matchPrimitive, false)
}

// quoteStringPrimitive is "'" (spec §4.7): advance past one mandatory
// space, consume up to and including the next ', and compile lit + the
// resulting string.
func quoteStringPrimitive(ctx *Context) {
	ctx.Input.SkipOneSpace()
	s := ctx.Input.Consume(byte('\''), true, false)
	compileHere(ctx, CallItem(litPrimitive))
	compileHere(ctx, LitItem(String(s)))
}

// commentPrimitive is "(" (spec §4.7): immediate comment, consume
// through the next ).
func commentPrimitive(ctx *Context) {
	ctx.Input.Consume(byte(')'), true, false)
}

// reSlashPrimitive is "re/ REGEX/" (spec §4.7): advance past one space,
// consume through /, compile lit + the compiled regex.
func reSlashPrimitive(ctx *Context) {
	ctx.Input.SkipOneSpace()
	pattern := ctx.Input.Consume(byte('/'), true, false)
	re := compileRegex(pattern)
	compileHere(ctx, CallItem(litPrimitive))
	compileHere(ctx, LitItem(re))
}

// matchSlashPrimitive is "match/ REGEX/" (spec §4.7): same parsing as
// re/, but compiles lit regex swap match so the regex ends up below the
// string already sitting on the stack, in the order match expects.
func matchSlashPrimitive(ctx *Context) {
	ctx.Input.SkipOneSpace()
	pattern := ctx.Input.Consume(byte('/'), true, false)
	re := compileRegex(pattern)
	compileHere(ctx, CallItem(litPrimitive))
	compileHere(ctx, LitItem(re))
	compileHere(ctx, CallItem(swapPrimitive))
	compileHere(ctx, CallItem(matchPrimitive))
}

func compileRegex(pattern string) Regexp {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(BadRegexError{Pattern: pattern, Err: err})
	}
	return Regexp{re}
}

// wordPrimitive is "word" (spec §4.7): read one whitespace-delimited
// token from the cursor and push it. Immediate so it behaves the same
// compiled or at top level.
func wordPrimitive(ctx *Context) {
	ctx.Stack.Push(String(ctx.Input.ConsumeWord()))
}

// matchPrimitive is "match" (spec §4.7/§4.10 worked example): pop a
// string, then a regex, and push an array of the full match followed by
// its capture groups, or Null if there is no match.
func matchPrimitive(ctx *Context) {
	strV := ctx.Stack.Pop()
	reV := ctx.Stack.Pop()
	s, strOK := strV.(String)
	re, reOK := reV.(Regexp)
	if !strOK || !reOK {
		panic(MatchOperandError{Regex: reV, Str: strV})
	}
	groups := re.FindStringSubmatch(string(s))
	if groups == nil {
		ctx.Stack.Push(Null{})
		return
	}
	arr := NewArray()
	for _, g := range groups {
		arr.Items = append(arr.Items, String(g))
	}
	ctx.Stack.Push(arr)
}
