package reporter

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecklang/eckfront/ast"
)

var errBoom = errors.New("boom")

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	pos := ast.SourcePos{Filename: "a.eck", Line: 3, Col: 7, Offset: 20}
	err := Error(pos, errBoom)
	assert.Equal(t, "a.eck:3:7: boom", err.Error())
	assert.Equal(t, pos, err.GetPosition())
	assert.ErrorIs(t, err, errBoom)

	err = Errorf(ast.UnknownPos("b.eck"), "bad %d", 42)
	assert.Equal(t, "b.eck: bad 42", err.Error())
}

func TestHandlerDefaultFailsFast(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)
	require.NoError(t, h.Error())

	first := Error(ast.SourcePos{Filename: "a.eck", Line: 1, Col: 1}, errBoom)
	assert.Equal(t, first, h.HandleError(first))
	second := Error(ast.SourcePos{Filename: "b.eck", Line: 1, Col: 1}, errBoom)
	assert.Equal(t, first, h.HandleError(second), "first error wins")
	assert.Equal(t, first, h.Error())
	assert.Equal(t, first, h.ReporterError())
}

func TestHandlerSwallowingReporter(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen []ErrorWithPos
	)
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, err)
		return nil
	}))

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.HandleError(Errorf(ast.SourcePos{Filename: "f.eck", Line: i + 1, Col: 1}, "e%d", i)))
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 4)
	assert.NoError(t, h.ReporterError())
	assert.ErrorIs(t, h.Error(), ErrInvalidSource)
}

func TestHandlerErrorWithoutPosition(t *testing.T) {
	t.Parallel()

	called := false
	h := NewHandler(NewReporter(func(ErrorWithPos) error {
		called = true
		return nil
	}))
	assert.ErrorIs(t, h.HandleError(errBoom), errBoom)
	assert.False(t, called)
	assert.ErrorIs(t, h.Error(), errBoom)
}

func TestRenderer(t *testing.T) {
	t.Parallel()

	data := []byte("class A {\n\tfield int x y;\n}\n")
	info := ast.NewFileInfo("a.eck", data)
	info.AddLine(10)
	// The error points at "y" on line 2.
	err := Error(info.SourcePos(23), errors.New("expected ';'"))

	got := Renderer{ShowSnippet: true}.RenderString(err, info)
	want := "error: a.eck:2:21: expected ';'\n" +
		"   2 | " + strings.Repeat(" ", 8) + "field int x y;\n" +
		"     | " + strings.Repeat(" ", 20) + "^\n"
	assert.Equal(t, want, got)

	got = Renderer{}.RenderString(err, info)
	assert.Equal(t, "error: a.eck:2:21: expected ';'\n", got)

	got = Renderer{ShowSnippet: true}.RenderString(errBoom, info)
	assert.Equal(t, "error: boom\n", got)
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, displayWidth(""))
	assert.Equal(t, 3, displayWidth("abc"))
	assert.Equal(t, 8, displayWidth("\t"))
	assert.Equal(t, 9, displayWidth("ab\tc"))
	assert.Equal(t, 4, displayWidth("日本"), "wide characters take two cells")
}
