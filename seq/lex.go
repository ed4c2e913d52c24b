package seq

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	parenBlockToken
	bracketBlockToken
	singleQuotedToken
	doubleQuotedToken
	comaTerminatorToken
)

var (
	whitespaceMatcher     = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	parenBlockMatcher     = parsly.NewToken(parenBlockToken, "( .... )", matcher.NewBlock('(', ')', '\\'))
	bracketBlockMatcher   = parsly.NewToken(bracketBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
	singleQuotedMatcher   = parsly.NewToken(singleQuotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
	doubleQuotedMatcher   = parsly.NewToken(doubleQuotedToken, `" .... "`, matcher.NewQuote('"', '\\'))
	comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
)
