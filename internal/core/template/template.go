package template

import (
	"fmt"
	"strings"
)

// The engine understands two constructs:
//
//	{{key}}                    scalar substitution, empty when absent
//	{{#each key}}...{{/each}}  iteration over a sequence of records
//
// Templates are parsed once into a small AST and evaluated per render,
// so rendering never re-parses and is deterministic for equal inputs.

type node interface {
	render(sb *strings.Builder, data map[string]any)
}

type literalNode string

func (n literalNode) render(sb *strings.Builder, _ map[string]any) {
	sb.WriteString(string(n))
}

type varNode string

func (n varNode) render(sb *strings.Builder, data map[string]any) {
	sb.WriteString(stringify(data[string(n)]))
}

type eachNode struct {
	key  string
	body []node
}

func (n eachNode) render(sb *strings.Builder, data map[string]any) {
	for _, item := range sequence(data[n.key]) {
		for _, child := range n.body {
			child.render(sb, item)
		}
	}
}

type Template struct {
	nodes []node
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
	eachPrefix = "#each"
	eachClose  = "/each"
)

// Parse compiles a template source into its AST form.
func Parse(src string) (*Template, error) {
	nodes, _, err := parseNodes(src, false)
	if err != nil {
		return nil, err
	}
	return &Template{nodes: nodes}, nil
}

// MustParse is Parse for static template sources known to be well-formed.
func MustParse(src string) *Template {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

// parseNodes consumes src until end of input or, when inLoop is set, until a
// {{/each}} tag. It returns the unconsumed remainder after that tag.
func parseNodes(src string, inLoop bool) ([]node, string, error) {
	var nodes []node
	for {
		open := strings.Index(src, openDelim)
		if open < 0 {
			if inLoop {
				return nil, "", fmt.Errorf("template: missing %q", openDelim+eachClose+closeDelim)
			}
			if src != "" {
				nodes = append(nodes, literalNode(src))
			}
			return nodes, "", nil
		}
		if open > 0 {
			nodes = append(nodes, literalNode(src[:open]))
		}
		src = src[open+len(openDelim):]

		end := strings.Index(src, closeDelim)
		if end < 0 {
			return nil, "", fmt.Errorf("template: unclosed %q tag", openDelim)
		}
		tag := strings.TrimSpace(src[:end])
		src = src[end+len(closeDelim):]

		switch {
		case tag == eachClose:
			if !inLoop {
				return nil, "", fmt.Errorf("template: %q without a matching %q", eachClose, eachPrefix)
			}
			return nodes, src, nil
		case strings.HasPrefix(tag, eachPrefix):
			key := strings.TrimSpace(strings.TrimPrefix(tag, eachPrefix))
			if key == "" {
				return nil, "", fmt.Errorf("template: %q tag without a key", eachPrefix)
			}
			if inLoop {
				return nil, "", fmt.Errorf("template: nested %q loops are not supported", eachPrefix)
			}
			body, rest, err := parseNodes(src, true)
			if err != nil {
				return nil, "", err
			}
			nodes = append(nodes, eachNode{key: key, body: body})
			src = rest
		case tag == "":
			return nil, "", fmt.Errorf("template: empty substitution tag")
		default:
			nodes = append(nodes, varNode(tag))
		}
	}
}

// Render evaluates the template against data. Missing keys render as empty
// strings, absent or non-sequence loop keys render the loop as empty.
func (t *Template) Render(data map[string]any) string {
	var sb strings.Builder
	for _, n := range t.nodes {
		n.render(&sb, data)
	}
	return sb.String()
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// sequence coerces a loop value into a slice of records. Anything else
// yields nil, which renders the loop body zero times.
func sequence(v any) []map[string]any {
	switch items := v.(type) {
	case []map[string]any:
		return items
	case []any:
		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
