// Package parser implements a recursive-descent parser for ΓΛΩΣΣΑ: no
// backtracking, no error recovery — the first syntax error is fatal, per
// spec §4.2.
package parser

import (
	"fmt"
	"strconv"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/lexer"
)

// Precedence levels, low to high, matching spec §4.2: Η < ΚΑΙ < ΟΧΙ <
// relational < additive < multiplicative < unary minus < primary. ΟΧΙ is a
// prefix operator, not a binary one, so it has no entry in the binary
// precedence table below; its operand is parsed at precRelational so that
// `ΟΧΙ a > b` reads as `ΟΧΙ (a > b)`.
const (
	precLowest = iota
	precOr
	precAnd
	_ // precedence slot reserved for ΟΧΙ (prefix, not binary)
	precRelational
	precAdditive
	precMultiplicative
	precUnary
)

var binaryPrecedence = map[lexer.TokenType]int{
	lexer.OR:       precOr,
	lexer.AND:      precAnd,
	lexer.EQ:       precRelational,
	lexer.NE:       precRelational,
	lexer.LT:       precRelational,
	lexer.LE:       precRelational,
	lexer.GT:       precRelational,
	lexer.GE:       precRelational,
	lexer.PLUS:     precAdditive,
	lexer.MINUS:    precAdditive,
	lexer.ASTERISK: precMultiplicative,
	lexer.SLASH:    precMultiplicative,
	lexer.INT_DIV:  precMultiplicative,
	lexer.INT_MOD:  precMultiplicative,
}

var typeKeywords = map[lexer.TokenType]ast.Type{
	lexer.TYPE_INTEGER:   ast.INTEGER,
	lexer.TYPE_REAL:      ast.REAL,
	lexer.TYPE_BOOLEAN:   ast.BOOLEAN,
	lexer.TYPE_CHARACTER: ast.CHARACTER,
}

// Parser is a recursive-descent parser over a token stream. A syntax error
// aborts parsing immediately: Parser carries no error-recovery state.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser that pulls tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func syntaxErr(line int, format string, args ...any) *errors.GlossaError {
	return errors.New(errors.Syntactic, line, format, args...)
}

func (p *Parser) expect(t lexer.TokenType) *errors.GlossaError {
	if p.cur.Type != t {
		return syntaxErr(p.cur.Line, "αναμενόταν %s, βρέθηκε %s", t, describe(p.cur))
	}
	p.nextToken()
	return nil
}

func describe(tok lexer.Token) string {
	if tok.Literal == "" {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s (%q)", tok.Type, tok.Literal)
}

// ParseProgram parses the full token stream into a Program. It returns the
// first syntax error encountered, if any.
func (p *Parser) ParseProgram() (*ast.Program, *errors.GlossaError) {
	var leading []*ast.Subprogram
	for p.cur.Type == lexer.PROCEDURE || p.cur.Type == lexer.FUNCTION {
		sub, err := p.parseSubprogram()
		if err != nil {
			return nil, err
		}
		leading = append(leading, sub)
	}

	startLine := p.cur.Line
	if err := p.expect(lexer.PROGRAM); err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.IDENT {
		return nil, syntaxErr(p.cur.Line, "αναμενόταν όνομα προγράμματος, βρέθηκε %s", describe(p.cur))
	}
	name := p.cur.Literal
	p.nextToken()

	prog := &ast.Program{Name: name, SourceLine: startLine}

	if p.cur.Type == lexer.CONSTANTS {
		p.nextToken()
		consts, err := p.parseConstants()
		if err != nil {
			return nil, err
		}
		prog.Constants = consts
	}

	if p.cur.Type == lexer.VARIABLES {
		p.nextToken()
		vars, err := p.parseVariableDecls()
		if err != nil {
			return nil, err
		}
		prog.Variables = vars
	}

	if err := p.expect(lexer.BEGIN_PROGRAM); err != nil {
		return nil, err
	}

	body, err := p.parseStatementList(lexer.END_PROGRAM)
	if err != nil {
		return nil, err
	}
	prog.Body = body

	if err := p.expect(lexer.END_PROGRAM); err != nil {
		return nil, err
	}

	var trailing []*ast.Subprogram
	for p.cur.Type == lexer.PROCEDURE || p.cur.Type == lexer.FUNCTION {
		sub, err := p.parseSubprogram()
		if err != nil {
			return nil, err
		}
		trailing = append(trailing, sub)
	}

	if p.cur.Type != lexer.EOF {
		return nil, syntaxErr(p.cur.Line, "μη αναμενόμενο περιεχόμενο μετά το τέλος του προγράμματος: %s", describe(p.cur))
	}

	prog.Subprograms = append(leading, trailing...)
	return prog, nil
}

func (p *Parser) parseConstants() ([]*ast.ConstDecl, *errors.GlossaError) {
	var out []*ast.ConstDecl
	for p.cur.Type == lexer.IDENT {
		line := p.cur.Line
		name := p.cur.Literal
		p.nextToken()
		if err := p.expect(lexer.EQ); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.ConstDecl{Name: name, Value: value, SourceLine: line})
	}
	return out, nil
}

func (p *Parser) parseVariableDecls() ([]*ast.VarDecl, *errors.GlossaError) {
	var out []*ast.VarDecl
	for {
		typ, ok := typeKeywords[p.cur.Type]
		if !ok {
			break
		}
		line := p.cur.Line
		p.nextToken()
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		items, err := p.parseVarItems()
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.VarDecl{Type: typ, Items: items, SourceLine: line})
	}
	return out, nil
}

func (p *Parser) parseVarItems() ([]ast.VarItem, *errors.GlossaError) {
	var items []ast.VarItem
	for {
		if p.cur.Type != lexer.IDENT {
			return nil, syntaxErr(p.cur.Line, "αναμενόταν όνομα μεταβλητής, βρέθηκε %s", describe(p.cur))
		}
		item := ast.VarItem{Name: p.cur.Literal}
		p.nextToken()

		if p.cur.Type == lexer.LBRACK {
			p.nextToken()
			bound, err := p.parseIntLiteral()
			if err != nil {
				return nil, err
			}
			item.Bounds = append(item.Bounds, bound)
			for p.cur.Type == lexer.COMMA {
				p.nextToken()
				bound, err := p.parseIntLiteral()
				if err != nil {
					return nil, err
				}
				item.Bounds = append(item.Bounds, bound)
			}
			if err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
		}

		items = append(items, item)
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	return items, nil
}

func (p *Parser) parseIntLiteral() (int, *errors.GlossaError) {
	if p.cur.Type != lexer.INTEGER {
		return 0, syntaxErr(p.cur.Line, "αναμενόταν ακέραιο όριο πίνακα, βρέθηκε %s", describe(p.cur))
	}
	n, convErr := strconv.Atoi(p.cur.Literal)
	if convErr != nil {
		return 0, syntaxErr(p.cur.Line, "μη έγκυρο όριο πίνακα: %s", p.cur.Literal)
	}
	p.nextToken()
	return n, nil
}

// parseStatementList parses statements until the current token is one of
// the given terminators (which are not consumed).
func (p *Parser) parseStatementList(terminators ...lexer.TokenType) ([]ast.Statement, *errors.GlossaError) {
	var stmts []ast.Statement
	for !p.atTerminator(terminators) {
		if p.cur.Type == lexer.EOF {
			return nil, syntaxErr(p.cur.Line, "απρόσμενο τέλος εισόδου")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) atTerminator(terminators []lexer.TokenType) bool {
	for _, t := range terminators {
		if p.cur.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement() (ast.Statement, *errors.GlossaError) {
	switch p.cur.Type {
	case lexer.IDENT:
		return p.parseAssignment()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.BEGIN_LOOP:
		return p.parseRepeat()
	case lexer.FOR:
		return p.parseFor()
	case lexer.SELECT:
		return p.parseSelect()
	case lexer.CALL:
		return p.parseCall()
	case lexer.READ:
		return p.parseRead()
	case lexer.WRITE:
		return p.parseWrite()
	case lexer.RETURN:
		return p.parseReturn()
	default:
		return nil, syntaxErr(p.cur.Line, "μη αναμενόμενη θέση εντολής: %s", describe(p.cur))
	}
}

func (p *Parser) parseLValue() (ast.Expression, *errors.GlossaError) {
	line := p.cur.Line
	name := p.cur.Literal
	p.nextToken()

	if p.cur.Type != lexer.LBRACK {
		return &ast.Identifier{Name: name, SourceLine: line}, nil
	}
	p.nextToken()
	first, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	indices := []ast.Expression{first}
	if p.cur.Type == lexer.COMMA {
		p.nextToken()
		second, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		indices = append(indices, second)
	}
	if err := p.expect(lexer.RBRACK); err != nil {
		return nil, err
	}
	return &ast.IndexExpr{Name: name, Indices: indices, SourceLine: line}, nil
}

func (p *Parser) parseAssignment() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	target, err := p.parseLValue()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Target: target, Value: value, SourceLine: line}, nil
}

func (p *Parser) parseIf() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	stmt := &ast.IfStmt{SourceLine: line}

	p.nextToken() // consume ΑΝ
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.THEN); err != nil {
		return nil, err
	}
	body, err := p.parseStatementList(lexer.ELSEIF, lexer.ELSE, lexer.END_IF)
	if err != nil {
		return nil, err
	}
	stmt.Branches = append(stmt.Branches, ast.IfBranch{Cond: cond, Body: body})

	for p.cur.Type == lexer.ELSEIF {
		p.nextToken()
		cond, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.THEN); err != nil {
			return nil, err
		}
		body, err := p.parseStatementList(lexer.ELSEIF, lexer.ELSE, lexer.END_IF)
		if err != nil {
			return nil, err
		}
		stmt.Branches = append(stmt.Branches, ast.IfBranch{Cond: cond, Body: body})
	}

	if p.cur.Type == lexer.ELSE {
		p.nextToken()
		body, err := p.parseStatementList(lexer.END_IF)
		if err != nil {
			return nil, err
		}
		stmt.ElseBody = body
	}

	if err := p.expect(lexer.END_IF); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.DO_WHILE); err != nil {
		return nil, err
	}
	body, err := p.parseStatementList(lexer.END_WHILE)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.END_WHILE); err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body, SourceLine: line}, nil
}

func (p *Parser) parseRepeat() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	body, err := p.parseStatementList(lexer.UNTIL)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.UNTIL); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.RepeatStmt{Body: body, Cond: cond, SourceLine: line}, nil
}

func (p *Parser) parseFor() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	if p.cur.Type != lexer.IDENT {
		return nil, syntaxErr(p.cur.Line, "αναμενόταν μεταβλητή επανάληψης, βρέθηκε %s", describe(p.cur))
	}
	varName := p.cur.Literal
	p.nextToken()

	if err := p.expect(lexer.FROM); err != nil {
		return nil, err
	}
	start, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TO); err != nil {
		return nil, err
	}
	end, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	var step ast.Expression = &ast.IntegerLiteral{Value: 1, SourceLine: line}
	if p.cur.Type == lexer.STEP {
		p.nextToken()
		step, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseStatementList(lexer.END_WHILE)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.END_WHILE); err != nil {
		return nil, err
	}
	return &ast.ForStmt{Var: varName, Start: start, End: end, Step: step, Body: body, SourceLine: line}, nil
}

func (p *Parser) parseSelect() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	subject, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	stmt := &ast.SelectStmt{Subject: subject, SourceLine: line}

	for p.cur.Type == lexer.CASE {
		p.nextToken()
		if p.cur.Type == lexer.ELSE {
			p.nextToken()
			body, err := p.parseStatementList(lexer.END_SELECT)
			if err != nil {
				return nil, err
			}
			stmt.Default = body
			stmt.HasDefault = true
			break
		}

		values, err := p.parseCaseValues()
		if err != nil {
			return nil, err
		}
		body, err := p.parseStatementList(lexer.CASE, lexer.END_SELECT)
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, ast.SelectCase{Values: values, Body: body})
	}

	if err := p.expect(lexer.END_SELECT); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseCaseValues parses a comma-separated list of literals or closed
// ranges ("low ΜΕΧΡΙ high") for one ΠΕΡΙΠΤΩΣΗ arm.
func (p *Parser) parseCaseValues() ([]ast.CaseValue, *errors.GlossaError) {
	var values []ast.CaseValue
	for {
		low, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		cv := ast.CaseValue{Low: low}
		if p.cur.Type == lexer.TO {
			p.nextToken()
			high, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			cv.High = high
		}
		values = append(values, cv)
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	return values, nil
}

func (p *Parser) parseCall() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	if p.cur.Type != lexer.IDENT {
		return nil, syntaxErr(p.cur.Line, "αναμενόταν όνομα διαδικασίας, βρέθηκε %s", describe(p.cur))
	}
	name := p.cur.Literal
	p.nextToken()
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallStmt{Name: name, Args: args, SourceLine: line}, nil
}

func (p *Parser) parseRead() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	var targets []ast.Expression
	for {
		if p.cur.Type != lexer.IDENT {
			return nil, syntaxErr(p.cur.Line, "αναμενόταν μεταβλητή για ανάγνωση, βρέθηκε %s", describe(p.cur))
		}
		target, err := p.parseLValue()
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	return &ast.ReadStmt{Targets: targets, SourceLine: line}, nil
}

func (p *Parser) parseWrite() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	var values []ast.Expression
	for {
		value, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	return &ast.WriteStmt{Values: values, SourceLine: line}, nil
}

func (p *Parser) parseReturn() (ast.Statement, *errors.GlossaError) {
	line := p.cur.Line
	p.nextToken()
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value, SourceLine: line}, nil
}

func (p *Parser) parseArgList() ([]ast.Expression, *errors.GlossaError) {
	var args []ast.Expression
	if p.cur.Type == lexer.RPAREN {
		return args, nil
	}
	for {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	return args, nil
}

// ---- Expressions (precedence climbing) ----

func (p *Parser) parseExpression(minPrec int) (ast.Expression, *errors.GlossaError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := binaryPrecedence[p.cur.Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := p.cur
		p.nextToken()
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op.Type.String(), Left: left, Right: right, SourceLine: op.Line}
	}
}

func (p *Parser) parseUnary() (ast.Expression, *errors.GlossaError) {
	switch p.cur.Type {
	case lexer.MINUS:
		line := p.cur.Line
		p.nextToken()
		operand, err := p.parseExpression(precUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "-", Operand: operand, SourceLine: line}, nil
	case lexer.NOT:
		line := p.cur.Line
		p.nextToken()
		operand, err := p.parseExpression(precRelational)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "ΟΧΙ", Operand: operand, SourceLine: line}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (ast.Expression, *errors.GlossaError) {
	line := p.cur.Line
	switch p.cur.Type {
	case lexer.INTEGER:
		n, convErr := strconv.ParseInt(p.cur.Literal, 10, 64)
		if convErr != nil {
			return nil, syntaxErr(line, "μη έγκυρος ακέραιος: %s", p.cur.Literal)
		}
		p.nextToken()
		return &ast.IntegerLiteral{Value: n, SourceLine: line}, nil
	case lexer.REAL:
		f, convErr := strconv.ParseFloat(p.cur.Literal, 64)
		if convErr != nil {
			return nil, syntaxErr(line, "μη έγκυρος πραγματικός: %s", p.cur.Literal)
		}
		p.nextToken()
		return &ast.RealLiteral{Value: f, SourceLine: line}, nil
	case lexer.STRING:
		lit := p.cur.Literal
		p.nextToken()
		return &ast.StringLiteral{Value: lit, SourceLine: line}, nil
	case lexer.TRUE:
		p.nextToken()
		return &ast.BooleanLiteral{Value: true, SourceLine: line}, nil
	case lexer.FALSE:
		p.nextToken()
		return &ast.BooleanLiteral{Value: false, SourceLine: line}, nil
	case lexer.LPAREN:
		p.nextToken()
		inner, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.IDENT:
		name := p.cur.Literal
		p.nextToken()
		switch p.cur.Type {
		case lexer.LPAREN:
			p.nextToken()
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			return &ast.CallExpr{Name: name, Args: args, SourceLine: line}, nil
		case lexer.LBRACK:
			p.nextToken()
			first, err := p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			indices := []ast.Expression{first}
			if p.cur.Type == lexer.COMMA {
				p.nextToken()
				second, err := p.parseExpression(precLowest)
				if err != nil {
					return nil, err
				}
				indices = append(indices, second)
			}
			if err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
			return &ast.IndexExpr{Name: name, Indices: indices, SourceLine: line}, nil
		default:
			return &ast.Identifier{Name: name, SourceLine: line}, nil
		}
	default:
		return nil, syntaxErr(line, "μη αναμενόμενο συμβολο στην έκφραση: %s", describe(p.cur))
	}
}

func (p *Parser) parseSubprogram() (*ast.Subprogram, *errors.GlossaError) {
	line := p.cur.Line
	isFunc := p.cur.Type == lexer.FUNCTION
	kind := ast.ProcedureKind
	endTok := lexer.END_PROCEDURE
	if isFunc {
		kind = ast.FunctionKind
		endTok = lexer.END_FUNCTION
	}
	p.nextToken()

	if p.cur.Type != lexer.IDENT {
		return nil, syntaxErr(p.cur.Line, "αναμενόταν όνομα υποπρογράμματος, βρέθηκε %s", describe(p.cur))
	}
	name := p.cur.Literal
	p.nextToken()

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	sub := &ast.Subprogram{Kind: kind, Name: name, Params: params, SourceLine: line}

	if isFunc {
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		typ, ok := typeKeywords[p.cur.Type]
		if !ok {
			return nil, syntaxErr(p.cur.Line, "αναμενόταν τύπος επιστροφής, βρέθηκε %s", describe(p.cur))
		}
		sub.ReturnType = typ
		p.nextToken()
	}

	if p.cur.Type == lexer.VARIABLES {
		p.nextToken()
		vars, err := p.parseVariableDecls()
		if err != nil {
			return nil, err
		}
		sub.Variables = vars
	}

	if err := p.expect(lexer.BEGIN_PROGRAM); err != nil {
		return nil, err
	}
	body, err := p.parseStatementList(endTok)
	if err != nil {
		return nil, err
	}
	sub.Body = body
	if err := p.expect(endTok); err != nil {
		return nil, err
	}
	return sub, nil
}

func (p *Parser) parseParams() ([]ast.Param, *errors.GlossaError) {
	var params []ast.Param
	if p.cur.Type == lexer.RPAREN {
		return params, nil
	}
	for {
		if p.cur.Type != lexer.IDENT {
			return nil, syntaxErr(p.cur.Line, "αναμενόταν όνομα παραμέτρου, βρέθηκε %s", describe(p.cur))
		}
		name := p.cur.Literal
		p.nextToken()
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		typ, ok := typeKeywords[p.cur.Type]
		if !ok {
			return nil, syntaxErr(p.cur.Line, "αναμενόταν τύπος παραμέτρου, βρέθηκε %s", describe(p.cur))
		}
		p.nextToken()
		params = append(params, ast.Param{Name: name, Type: typ})
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	return params, nil
}
