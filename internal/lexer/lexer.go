package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/bindweld/bindweld/internal/token"
)

// Lexer tokenizes the binding generator's output. It recognizes the small
// surface the parser needs (idents, keywords, delimiters, paths, arrows) and
// carries everything else — string literals, numbers, body-level operators —
// as opaque tokens so function bodies can be skipped as balanced groups.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespaceAndComments()

	switch l.ch {
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '<':
		tok = newToken(token.LANGLE, l.ch, l.line, l.column)
	case '>':
		tok = newToken(token.RANGLE, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case '#':
		tok = newToken(token.HASH, l.ch, l.line, l.column)
	case '!':
		tok = newToken(token.BANG, l.ch, l.line, l.column)
	case '&':
		tok = newToken(token.AMP, l.ch, l.line, l.column)
	case ':':
		if l.peekChar() == ':' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.PATHSEP, Lexeme: "::", Line: line, Column: col}
		} else {
			tok = newToken(token.COLON, l.ch, l.line, l.column)
		}
	case '-':
		if l.peekChar() == '>' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Line: line, Column: col}
		} else {
			tok = newToken(token.OTHER, l.ch, l.line, l.column)
		}
	case '"':
		return l.readString()
	case '\'':
		return l.readCharOrLifetime()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
	default:
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		// Body-level punctuation (., |, =, +, *, ...) is carried opaquely.
		tok = newToken(token.OTHER, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.LookupIdent(lexeme), Lexeme: lexeme, Line: line, Column: col}
}

func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	start := l.position
	for unicode.IsDigit(l.ch) || l.ch == '.' || l.ch == '_' || isIdentStart(l.ch) {
		// Numeric literals may carry type suffixes (42i64) or dots (3.14);
		// the exact shape does not matter, bodies are never interpreted.
		l.readChar()
	}
	return token.Token{Type: token.NUMBER, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

// readString consumes a double-quoted string literal, honoring escapes so
// braces inside literals never unbalance body skipping.
func (l *Lexer) readString() token.Token {
	line, col := l.line, l.column
	start := l.position
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == 0 {
		return token.Token{Type: token.ILLEGAL, Lexeme: "unterminated string", Line: line, Column: col}
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

// readCharOrLifetime disambiguates 'a' (char literal) from 'py (lifetime).
func (l *Lexer) readCharOrLifetime() token.Token {
	line, col := l.line, l.column
	start := l.position
	l.readChar() // consume quote

	if isIdentStart(l.ch) {
		identStart := l.position
		for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
			l.readChar()
		}
		if l.ch == '\'' {
			// Single-rune char literal like 'a'
			l.readChar()
			return token.Token{Type: token.CHAR, Lexeme: l.input[start:l.position], Line: line, Column: col}
		}
		return token.Token{Type: token.LIFETIME, Lexeme: l.input[identStart:l.position], Line: line, Column: col}
	}

	// Escaped or symbolic char literal: '\n', '\'', '{'
	if l.ch == '\\' {
		l.readChar()
	}
	l.readChar()
	if l.ch != '\'' {
		return token.Token{Type: token.ILLEGAL, Lexeme: "unterminated char literal", Line: line, Column: col}
	}
	l.readChar()
	return token.Token{Type: token.CHAR, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			depth := 1
			for depth > 0 && l.ch != 0 {
				if l.ch == '/' && l.peekChar() == '*' {
					depth++
					l.readChar()
				} else if l.ch == '*' && l.peekChar() == '/' {
					depth--
					l.readChar()
				}
				l.readChar()
			}
			continue
		}
		return
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func newToken(tokenType token.TokenType, ch rune, line, column int) token.Token {
	return token.Token{Type: tokenType, Lexeme: string(ch), Line: line, Column: column}
}
