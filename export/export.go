// Package export converts Eck syntax trees into generic structured data for
// consumption by other tools. Two encodings are provided: YAML, whose keys
// appear in a fixed order, and JSON by way of a google.protobuf.Struct.
//
// Every node becomes a mapping whose first two keys are "node", naming the
// kind of node, and "line". Optional children that are absent are omitted.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tidwall/pretty"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/ecklang/eckfront/ast"
)

// ToYAML renders the tree rooted at n as a YAML document.
func ToYAML(n ast.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(describe(n).yaml()); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToStruct converts the tree rooted at n to a protobuf Struct.
func ToStruct(n ast.Node) (*structpb.Struct, error) {
	return structpb.NewStruct(describe(n).generic())
}

// ToJSON renders the tree rooted at n as indented JSON. Object keys are
// sorted.
func ToJSON(n ast.Node) ([]byte, error) {
	s, err := ToStruct(n)
	if err != nil {
		return nil, err
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return nil, err
	}
	// protojson deliberately varies its whitespace between runs.
	return pretty.PrettyOptions(data, &pretty.Options{Indent: "  "}), nil
}

// object is an ordered mapping. Values are strings, ints, *object or
// []*object.
type object struct {
	keys   []string
	values []any
}

func newObject(kind string, n ast.Node) *object {
	return new(object).set("node", kind).set("line", n.Line())
}

func (o *object) set(key string, value any) *object {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
	return o
}

func (o *object) yaml() *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, key := range o.keys {
		m.Content = append(m.Content, scalar("!!str", key), yamlValue(o.values[i]))
	}
	return m
}

func yamlValue(v any) *yaml.Node {
	switch v := v.(type) {
	case string:
		return scalar("!!str", v)
	case int:
		return scalar("!!int", strconv.Itoa(v))
	case *object:
		return v.yaml()
	case []*object:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, o := range v {
			seq.Content = append(seq.Content, o.yaml())
		}
		return seq
	default:
		panic(fmt.Sprintf("export: unexpected value %T", v))
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func (o *object) generic() map[string]any {
	m := make(map[string]any, len(o.keys))
	for i, key := range o.keys {
		switch v := o.values[i].(type) {
		case *object:
			m[key] = v.generic()
		case []*object:
			list := make([]any, len(v))
			for j, item := range v {
				list[j] = item.generic()
			}
			m[key] = list
		default:
			m[key] = v
		}
	}
	return m
}

func describeAll[N ast.Node](nodes []N) []*object {
	objs := make([]*object, len(nodes))
	for i, n := range nodes {
		objs[i] = describe(n)
	}
	return objs
}

func describe(n ast.Node) *object {
	switch n := n.(type) {
	case *ast.ClassNode:
		return newObject("class", n).
			set("name", n.Name).
			set("vars", describeAll(n.Vars)).
			set("subroutines", describeAll(n.Subroutines))

	case *ast.VarDeclNode:
		return newObject("variable", n).
			set("scope", n.Scope.String()).
			set("type", n.Type.String()).
			set("name", n.Name)

	case *ast.SubroutineNode:
		return newObject("subroutine", n).
			set("kind", n.Kind.String()).
			set("returnType", n.ReturnType.String()).
			set("name", n.Name).
			set("params", describeAll(n.Params)).
			set("body", describe(n.Body))

	case *ast.SubroutineBodyNode:
		return newObject("body", n).
			set("locals", describeAll(n.Locals)).
			set("statements", describeAll(n.Statements))

	case *ast.AssignNode:
		o := newObject("assignment", n).set("name", n.Name)
		if n.Index != nil {
			o.set("index", describe(n.Index))
		}
		return o.set("value", describe(n.Value))

	case *ast.IfNode:
		o := newObject("if", n).
			set("condition", describe(n.Cond)).
			set("then", describeAll(n.Then))
		if n.HasElse() {
			o.set("else", describeAll(n.Else))
		}
		return o

	case *ast.WhileNode:
		return newObject("while", n).
			set("condition", describe(n.Cond)).
			set("statements", describeAll(n.Body))

	case *ast.DoNode:
		return newObject("do", n).set("call", describe(n.Call))

	case *ast.ReturnNode:
		o := newObject("return", n)
		if n.Value != nil {
			o.set("value", describe(n.Value))
		}
		return o

	case *ast.CallNode:
		o := newObject("call", n)
		if n.Receiver != "" {
			o.set("receiver", n.Receiver)
		}
		return o.set("name", n.Name).set("args", describeAll(n.Args))

	case *ast.BinaryExprNode:
		return newObject("binary", n).
			set("op", n.Op.Spelling()).
			set("left", describe(n.Left)).
			set("right", describe(n.Right))

	case *ast.UnaryExprNode:
		return newObject("unary", n).
			set("op", n.Op.Spelling()).
			set("operand", describe(n.Operand))

	case *ast.ConstantNode:
		return newObject("constant", n).
			set("type", n.Type.String()).
			set("value", n.Value())

	case *ast.VarRefNode:
		o := newObject("varRef", n).set("name", n.Name)
		if n.Index != nil {
			o.set("index", describe(n.Index))
		}
		return o

	default:
		panic(fmt.Sprintf("export: unknown node type %T", n))
	}
}
