package frontend

import (
	"fmt"

	"github.com/quark-lang/quark/feedback"
	"github.com/quark-lang/quark/source"
)

// Check walks a parsed Program looking for code that is legal but probably not
// what the author meant. It only ever returns warnings, so a program that
// parses always compiles
func Check(file *source.File, prog *Program) (msgs []feedback.Message) {
	for _, decl := range prog.Declarations {
		msgs = append(msgs, checkParameters(file, decl)...)
		msgs = append(msgs, checkBlock(file, decl.Body)...)
	}

	return msgs
}

// checkParameters warns about every parameter whose name was already used
// earlier in the same list
func checkParameters(file *source.File, decl *FunctionDclr) (msgs []feedback.Message) {
	if decl.Parameters == nil {
		return nil
	}

	seen := make(map[string]*Parameter)

	for _, param := range decl.Parameters.Parameters {
		first, ok := seen[param.Name]
		if !ok {
			seen[param.Name] = param
			continue
		}

		msgs = append(msgs, feedback.Warning{
			Classification: feedback.DuplicateParameterWarning,
			File:           file,
			What: feedback.Selection{
				Description: fmt.Sprintf("parameter `%s` of `%s` is declared more than once", param.Name, decl.Name),
				Span:        param.Span,
			},
			Why: []feedback.Selection{{
				Description: "first declared here",
				Span:        first.Span,
			}},
		})
	}

	return msgs
}

// checkBlock warns about statements that follow a return statement
func checkBlock(file *source.File, block *Block) (msgs []feedback.Message) {
	for i, stmt := range block.Statements {
		ret, ok := stmt.(*ReturnStmt)
		if !ok || i+1 == len(block.Statements) {
			continue
		}

		rest := block.Statements[i+1:]

		return []feedback.Message{feedback.Warning{
			Classification: feedback.UnreachableCodeWarning,
			File:           file,
			What: feedback.Selection{
				Description: "this code will never run",
				Span:        source.Join(SpanOf(rest[0]), SpanOf(rest[len(rest)-1])),
			},
			Why: []feedback.Selection{{
				Description: "the function returns here",
				Span:        SpanOf(ret),
			}},
		}}
	}

	return nil
}
