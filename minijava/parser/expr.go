package parser

import "github.com/dhamidi/mjc/minijava/lexer"

// Binary levels fold left: each parses one operand of the next level, then
// loops while the current token is one of its operators.
//
//	Exp       := AndExp ('&&' AndExp)*
//	AndExp    := LtExp ('<' LtExp)*
//	LtExp     := AddSubExp (('+'|'-') AddSubExp)*
//	AddSubExp := TimesExp ('*' TimesExp)*
func (p *Parser) parseExp() error {
	return p.parseBinary(p.parseAndExp, lexer.TokenAnd)
}

func (p *Parser) parseAndExp() error {
	return p.parseBinary(p.parseLtExp, lexer.TokenLT)
}

func (p *Parser) parseLtExp() error {
	return p.parseBinary(p.parseAddSubExp, lexer.TokenAdd, lexer.TokenSub)
}

func (p *Parser) parseAddSubExp() error {
	return p.parseBinary(p.parseTimesExp, lexer.TokenTimes)
}

func (p *Parser) parseBinary(operand func() error, ops ...lexer.Kind) error {
	if err := operand(); err != nil {
		return err
	}
	for p.at(ops...) {
		p.advance()
		if err := operand(); err != nil {
			return err
		}
	}
	return nil
}

// TimesExp := '!'* NotExp
func (p *Parser) parseTimesExp() error {
	for p.at(lexer.TokenNot) {
		p.advance()
	}
	return p.parseNotExp()
}

// NotExp := PrimaryExp ( '.' ID '(' ExpList ')' | '[' Exp ']' | '.' 'length' )*
func (p *Parser) parseNotExp() error {
	if err := p.parsePrimaryExp(); err != nil {
		return err
	}
	for p.at(lexer.TokenDot, lexer.TokenLBrack) {
		if p.at(lexer.TokenLBrack) {
			p.advance()
			if err := p.parseExp(); err != nil {
				return err
			}
			if err := p.expect(lexer.TokenRBrack); err != nil {
				return err
			}
			continue
		}

		p.advance()
		if p.at(lexer.TokenLength) {
			p.advance()
			continue
		}
		if err := p.expect(lexer.TokenID); err != nil {
			return err
		}
		if err := p.expect(lexer.TokenLParen); err != nil {
			return err
		}
		if err := p.parseExpList(); err != nil {
			return err
		}
		if err := p.expect(lexer.TokenRParen); err != nil {
			return err
		}
	}
	return nil
}

// PrimaryExp := '(' Exp ')' | NUM | 'true' | 'false' | 'this' | ID
//
//	| 'new' 'int' '[' Exp ']'
//	| 'new' ID '(' ')'
func (p *Parser) parsePrimaryExp() error {
	switch p.current.Kind {
	case lexer.TokenLParen:
		p.advance()
		if err := p.parseExp(); err != nil {
			return err
		}
		return p.expect(lexer.TokenRParen)
	case lexer.TokenNum, lexer.TokenTrue, lexer.TokenFalse, lexer.TokenThis, lexer.TokenID:
		p.advance()
		return nil
	case lexer.TokenNew:
		p.advance()
		switch p.current.Kind {
		case lexer.TokenInt:
			p.advance()
			if err := p.expect(lexer.TokenLBrack); err != nil {
				return err
			}
			if err := p.parseExp(); err != nil {
				return err
			}
			return p.expect(lexer.TokenRBrack)
		case lexer.TokenID:
			p.advance()
			if err := p.expect(lexer.TokenLParen); err != nil {
				return err
			}
			return p.expect(lexer.TokenRParen)
		default:
			return p.unexpected()
		}
	default:
		return p.unexpected()
	}
}

// ExpList := (Exp (',' Exp)*)?
func (p *Parser) parseExpList() error {
	if p.at(lexer.TokenRParen) {
		return nil
	}
	if err := p.parseExp(); err != nil {
		return err
	}
	for p.at(lexer.TokenComma) {
		p.advance()
		if err := p.parseExp(); err != nil {
			return err
		}
	}
	return nil
}
