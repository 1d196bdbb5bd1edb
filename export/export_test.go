package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/parser"
)

const source = `class Counter {
  field int count;
  method void bump(int by) {
    if (by > 0) { count = count + by; }
    do Output.printInt(count);
    return;
  }
}
`

func parse(t *testing.T) *ast.ClassNode {
	t.Helper()
	class, err := parser.Parse("counter.eck", strings.NewReader(source), nil)
	require.NoError(t, err)
	return class
}

func TestToYAML(t *testing.T) {
	t.Parallel()

	text, err := ToYAML(parse(t))
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &doc))
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)
	var keys []string
	for i := 0; i < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	assert.Equal(t, []string{"node", "line", "name", "vars", "subroutines"}, keys, "keys keep declaration order")

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(text), &generic))
	assert.Equal(t, "class", generic["node"])
	assert.Equal(t, 1, generic["line"])
	assert.Equal(t, "Counter", generic["name"])

	vars := generic["vars"].([]any)
	require.Len(t, vars, 1)
	assert.Equal(t, map[string]any{
		"node": "variable", "line": 2, "scope": "FIELD", "type": "INT_SCALAR", "name": "count",
	}, vars[0])

	sub := generic["subroutines"].([]any)[0].(map[string]any)
	stmts := sub["body"].(map[string]any)["statements"].([]any)
	require.Len(t, stmts, 3)

	ifNode := stmts[0].(map[string]any)
	assert.Equal(t, "if", ifNode["node"])
	assert.NotContains(t, ifNode, "else")
	cond := ifNode["condition"].(map[string]any)
	assert.Equal(t, ">", cond["op"])

	call := stmts[1].(map[string]any)["call"].(map[string]any)
	assert.Equal(t, "Output", call["receiver"])
	assert.Equal(t, "printInt", call["name"])

	assert.Equal(t, map[string]any{"node": "return", "line": 6}, stmts[2])
}

func TestYAMLQuotesAmbiguousStrings(t *testing.T) {
	t.Parallel()

	class, err := parser.Parse("a.eck", strings.NewReader(
		`class A { method void f() { x = "true"; y = "12"; z = true; } }`), nil)
	require.NoError(t, err)
	text, err := ToYAML(class)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(text), &generic))
	stmts := generic["subroutines"].([]any)[0].(map[string]any)["body"].(map[string]any)["statements"].([]any)
	value := func(i int) any {
		return stmts[i].(map[string]any)["value"].(map[string]any)["value"]
	}
	assert.Equal(t, "true", value(0))
	assert.Equal(t, "12", value(1))
	assert.Equal(t, "true", value(2), "keyword constants are exported by spelling")
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	class := parse(t)
	first, err := ToJSON(class)
	require.NoError(t, err)
	second, err := ToJSON(class)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second), "output is stable")

	var generic map[string]any
	require.NoError(t, json.Unmarshal(first, &generic))
	assert.Equal(t, "Counter", generic["name"])
	assert.InDelta(t, 1, generic["line"], 0)

	s, err := ToStruct(class)
	require.NoError(t, err)
	assert.Equal(t, "class", s.GetFields()["node"].GetStringValue())
	subs := s.GetFields()["subroutines"].GetListValue().GetValues()
	require.Len(t, subs, 1)
	assert.Equal(t, "bump", subs[0].GetStructValue().GetFields()["name"].GetStringValue())
}
