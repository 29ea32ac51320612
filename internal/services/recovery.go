package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/titanous/json5"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/logger"
)

var (
	errNoJSONObject = errors.New("no JSON object found")
	errNotAnObject  = errors.New("decoded value is not a JSON object")

	fencedJSONPattern = regexp.MustCompile("(?s)```json(.*?)```")
	fenceLinePattern  = regexp.MustCompile("(?m)^```json|^```|```$")

	quoteReplacer = strings.NewReplacer(
		"\n", " ",
		"\r", "",
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)
)

// RecoveryStrategy turns raw model output into a JSON object, or reports why it could not.
// A Terminal strategy that found its input but could not decode it ends the chain.
type RecoveryStrategy struct {
	Name     string
	Apply    func(text string) (map[string]any, error)
	Terminal bool
}

var (
	FencedJSON    = RecoveryStrategy{Name: "fenced_json", Apply: fencedJSON, Terminal: true}
	BracketSpan   = RecoveryStrategy{Name: "bracket_span", Apply: bracketSpan}
	UnescapedSpan = RecoveryStrategy{Name: "unescaped_span", Apply: unescapedSpan}
	LiteralSpan   = RecoveryStrategy{Name: "literal_span", Apply: literalSpan}
)

// StrictRecovery only accepts output that is valid JSON once fences and smart quotes are removed.
// A ```json block that does not decode fails the whole recovery.
func StrictRecovery() []RecoveryStrategy {
	return []RecoveryStrategy{FencedJSON, BracketSpan}
}

// LenientRecovery additionally undoes escaped newlines and accepts single quotes and Python literals.
func LenientRecovery() []RecoveryStrategy {
	fenced := FencedJSON
	fenced.Terminal = false
	return []RecoveryStrategy{fenced, BracketSpan, UnescapedSpan, LiteralSpan}
}

// RecoverJSON tries each strategy in order; the first object decoded wins.
func RecoverJSON(text string, strategies []RecoveryStrategy) (map[string]any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errNoJSONObject
	}

	var errs []error
	for _, s := range strategies {
		obj, err := s.Apply(text)
		if err == nil {
			return obj, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		if s.Terminal && !errors.Is(err, errNoJSONObject) {
			break
		}
	}

	return nil, errors.Join(errs...)
}

type ResponseRecoverer struct {
	strategies []RecoveryStrategy
	logger     *zap.Logger
}

func NewResponseRecoverer(log *zap.Logger, strategies ...RecoveryStrategy) *ResponseRecoverer {
	if len(strategies) == 0 {
		strategies = LenientRecovery()
	}
	return &ResponseRecoverer{strategies: strategies, logger: log}
}

// Recover never fails loudly: decode errors go to the operator log and the caller gets false.
func (r *ResponseRecoverer) Recover(raw string) (map[string]any, bool) {
	obj, err := RecoverJSON(raw, r.strategies)
	if err != nil {
		r.logger.Warn("could not recover JSON from model response",
			zap.Error(err),
			zap.String("response_preview", logger.TruncateForLog(raw, 300)),
		)
		return nil, false
	}
	return obj, true
}

// NormalizeQuotes flattens newlines and replaces typographic quotes with ASCII ones.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

func fencedJSON(text string) (map[string]any, error) {
	m := fencedJSONPattern.FindStringSubmatch(stripLeadingProse(text))
	if m == nil {
		return nil, errNoJSONObject
	}
	return decodeStrict(NormalizeQuotes(m[1]))
}

func bracketSpan(text string) (map[string]any, error) {
	span, ok := objectSpan(stripLeadingProse(text))
	if !ok {
		return nil, errNoJSONObject
	}
	return decodeStrict(NormalizeQuotes(span))
}

func unescapedSpan(text string) (map[string]any, error) {
	span, ok := objectSpan(stripFenceLines(text))
	if !ok {
		return nil, errNoJSONObject
	}
	return decodeStrict(unescape(span))
}

func literalSpan(text string) (map[string]any, error) {
	span, ok := objectSpan(stripFenceLines(text))
	if !ok {
		return nil, errNoJSONObject
	}

	span = rewritePythonLiterals(NormalizeQuotes(unescape(span)))

	var obj map[string]any
	if err := json5.Unmarshal([]byte(span), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotAnObject
	}
	return obj, nil
}

func decodeStrict(s string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotAnObject
	}
	return obj, nil
}

// stripLeadingProse drops everything before the first code fence, if there is one.
func stripLeadingProse(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx > 0 {
		return text[idx:]
	}
	return text
}

func stripFenceLines(text string) string {
	return strings.TrimSpace(fenceLinePattern.ReplaceAllString(strings.TrimSpace(text), ""))
}

// objectSpan returns the text between the first '{' and the last '}'.
func objectSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	return strings.ReplaceAll(s, `\\`, `\`)
}

var pythonLiterals = map[string]string{
	"True":  "true",
	"False": "false",
	"None":  "null",
}

// rewritePythonLiterals maps True/False/None to JSON outside quoted strings.
func rewritePythonLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	var quote rune
	escaped := false

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if quote != 0 {
			b.WriteRune(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}

		if c == '"' || c == '\'' {
			quote = c
			b.WriteRune(c)
			continue
		}

		if unicode.IsLetter(c) && (i == 0 || !isIdentRune(runes[i-1])) {
			j := i
			for j < len(runes) && isIdentRune(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			if lit, ok := pythonLiterals[word]; ok {
				b.WriteString(lit)
			} else {
				b.WriteString(word)
			}
			i = j - 1
			continue
		}

		b.WriteRune(c)
	}

	return b.String()
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
