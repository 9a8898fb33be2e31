package parser

import "github.com/dhamidi/mjc/minijava/lexer"

var statementStart = []lexer.Kind{
	lexer.TokenLBrace,
	lexer.TokenIf,
	lexer.TokenWhile,
	lexer.TokenSystem,
	lexer.TokenID,
}

func (p *Parser) parseStatements() error {
	for p.at(statementStart...) {
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	return nil
}

// Statement := '{' Statement* '}'
//
//	| 'if' '(' Exp ')' Statement 'else' Statement
//	| 'while' '(' Exp ')' Statement
//	| 'System' '.' 'out' '.' 'println' '(' Exp ')' ';'
//	| ID '=' Exp ';'
//	| ID '[' Exp ']' '=' Exp ';'
func (p *Parser) parseStatement() error {
	switch p.current.Kind {
	case lexer.TokenLBrace:
		p.advance()
		if err := p.parseStatements(); err != nil {
			return err
		}
		return p.expect(lexer.TokenRBrace)
	case lexer.TokenIf:
		p.advance()
		if err := p.parseCondition(); err != nil {
			return err
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
		if err := p.expect(lexer.TokenElse); err != nil {
			return err
		}
		return p.parseStatement()
	case lexer.TokenWhile:
		p.advance()
		if err := p.parseCondition(); err != nil {
			return err
		}
		return p.parseStatement()
	case lexer.TokenSystem:
		p.advance()
		for _, kind := range []lexer.Kind{lexer.TokenDot, lexer.TokenOut, lexer.TokenDot, lexer.TokenPrintln} {
			if err := p.expect(kind); err != nil {
				return err
			}
		}
		if err := p.parseCondition(); err != nil {
			return err
		}
		return p.expect(lexer.TokenSemi)
	case lexer.TokenID:
		p.advance()
		return p.parseAssignment()
	default:
		return p.unexpected()
	}
}

// parseCondition parses '(' Exp ')'.
func (p *Parser) parseCondition() error {
	if err := p.expect(lexer.TokenLParen); err != nil {
		return err
	}
	if err := p.parseExp(); err != nil {
		return err
	}
	return p.expect(lexer.TokenRParen)
}

// parseAssignment is entered after the target identifier.
func (p *Parser) parseAssignment() error {
	switch p.current.Kind {
	case lexer.TokenAssign:
		p.advance()
	case lexer.TokenLBrack:
		p.advance()
		if err := p.parseExp(); err != nil {
			return err
		}
		if err := p.expect(lexer.TokenRBrack); err != nil {
			return err
		}
		if err := p.expect(lexer.TokenAssign); err != nil {
			return err
		}
	default:
		return p.unexpected()
	}
	if err := p.parseExp(); err != nil {
		return err
	}
	return p.expect(lexer.TokenSemi)
}
