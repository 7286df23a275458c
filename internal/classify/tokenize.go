package classify

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Tokenize splits a line into shell-style words with quote awareness:
// matching quotes group tokens and are stripped from the content. An
// unterminated quote is a parse error; the caller treats that as a
// negative classification. Only top-level word splitting is wanted
// here, not full shell semantics, so operators and redirections are
// dropped rather than interpreted.
func Tokenize(text string) ([]string, error) {
	parser := syntax.NewParser(
		syntax.Variant(syntax.LangBash),
		syntax.KeepComments(false),
	)

	file, err := parser.Parse(strings.NewReader(text), "")
	if err != nil {
		return nil, err
	}

	var tokens []string
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok {
			return true
		}
		for _, word := range call.Args {
			if s := flattenWord(word); s != "" {
				tokens = append(tokens, s)
			}
		}
		// Words inside command substitutions are already represented
		// by the $() placeholder; don't descend and double-count them.
		return false
	})

	return tokens, nil
}

// flattenWord converts a parsed word to its unquoted string value.
func flattenWord(word *syntax.Word) string {
	var sb strings.Builder
	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, qp := range p.Parts {
				switch q := qp.(type) {
				case *syntax.Lit:
					sb.WriteString(q.Value)
				case *syntax.ParamExp:
					sb.WriteString("$" + q.Param.Value)
				}
			}
		case *syntax.ParamExp:
			// Variable reference; keep the raw form, classification
			// never expands anything.
			sb.WriteString("$" + p.Param.Value)
		case *syntax.CmdSubst:
			sb.WriteString("$()")
		}
	}
	return sb.String()
}

// extractUnquoted removes every quoted span from text (delimiters and
// content both) and then drops the leading command word, leaving only
// the bare argument residue. Quoted arguments legitimately carry
// natural-language-looking text, so only this residue is scanned for
// indicators. Two-pass character scan; quoting here is too stateful
// for a single regex.
func extractUnquoted(text string) string {
	var sb strings.Builder
	inQuote := false
	var quoteChar rune

	for _, c := range text {
		switch {
		case !inQuote && (c == '\'' || c == '"'):
			inQuote = true
			quoteChar = c
		case inQuote && c == quoteChar:
			inQuote = false
		case !inQuote:
			sb.WriteRune(c)
		}
	}

	unquoted := strings.TrimSpace(sb.String())
	if i := strings.IndexByte(unquoted, ' '); i >= 0 {
		return strings.TrimSpace(unquoted[i:])
	}
	return ""
}
