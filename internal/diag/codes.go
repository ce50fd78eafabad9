package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004
	LexTokenTooLong        Code = 1005

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2002
	SynExpectIdentifier Code = 2003
	SynUnclosedTag      Code = 2004
	SynUnclosedBlock    Code = 2005
	SynUnexpectedEndTag Code = 2006
	SynUnknownTag       Code = 2007
	SynForMissingIn     Code = 2008
	SynSetExpectAssign  Code = 2009
	SynUnclosedParen    Code = 2010
	SynUnclosedBracket  Code = 2011
	SynDuplicateElse    Code = 2012
	SynExtendsNotFirst  Code = 2013

	// Правила линтера
	LintInfo              Code = 3000
	LintNoneComparison    Code = 3001
	LintEmptyBlock        Code = 3002
	LintConstantCondition Code = 3003
	LintRedundantNot      Code = 3004

	// Ввод-вывод
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedComment: "Unterminated comment",
	LexBadNumber:           "Bad number literal",
	LexTokenTooLong:        "Token too long",
	SynInfo:                "Syntax information",
	SynUnexpectedToken:     "Unexpected token",
	SynExpectExpression:    "Expected expression",
	SynExpectIdentifier:    "Expected identifier",
	SynUnclosedTag:         "Unclosed tag",
	SynUnclosedBlock:       "Unclosed block",
	SynUnexpectedEndTag:    "Unexpected end tag",
	SynUnknownTag:          "Unknown tag",
	SynForMissingIn:        "Missing 'in' in for loop",
	SynSetExpectAssign:     "Expected '=' in set",
	SynUnclosedParen:       "Unclosed parenthesis",
	SynUnclosedBracket:     "Unclosed bracket",
	SynDuplicateElse:       "Duplicate else branch",
	SynExtendsNotFirst:     "Extends is not the first tag",
	LintInfo:               "Lint information",
	LintNoneComparison:     "Comparison to none",
	LintEmptyBlock:         "Empty block",
	LintConstantCondition:  "Constant condition",
	LintRedundantNot:       "Redundant double negation",
	IOInfo:                 "I/O information",
	IOLoadFileError:        "Failed to load file",
	IOWriteError:           "Failed to write file",
}

// ID returns the stable short form, e.g. "SYN2001" or "LNT3002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLint reports whether c belongs to a lint rule rather than to parsing.
func (c Code) IsLint() bool { return c >= LintInfo && c < IOInfo }
