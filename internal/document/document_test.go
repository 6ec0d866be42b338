package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootPropertiesKeepFirstWriteOrder(t *testing.T) {
	doc := New()
	doc.SetRootProperty("--brutal-black", "#000000")
	doc.SetRootProperty("--brutal-white", "#FFFFFF")
	doc.SetRootProperty("--brutal-black", "#111111")

	assert.Equal(t, []Property{
		{Name: "--brutal-black", Value: "#111111"},
		{Name: "--brutal-white", Value: "#FFFFFF"},
	}, doc.RootProperties())

	value, ok := doc.RootProperty("--brutal-white")
	require.True(t, ok)
	assert.Equal(t, "#FFFFFF", value)
}

func TestListenersReceiveChanges(t *testing.T) {
	doc := New()
	var changes []Change
	unsubscribe := doc.Subscribe(func(c Change) { changes = append(changes, c) })

	doc.SetRootProperty("--brutal-accent", "#00FF88")
	doc.SetRootProperty("--brutal-accent", "#00FF88")
	doc.UpsertStyle("brutal-u-1", ".a { }")
	doc.RemoveStyle("brutal-u-1")
	doc.RemoveStyle("brutal-u-1")

	require.Len(t, changes, 3)
	assert.Equal(t, Change{Type: ChangeRootProperty, Name: "--brutal-accent", Value: "#00FF88"}, changes[0])
	assert.Equal(t, Change{Type: ChangeStyleUpsert, ID: "brutal-u-1", CSS: ".a { }"}, changes[1])
	assert.Equal(t, Change{Type: ChangeStyleRemove, ID: "brutal-u-1"}, changes[2])

	unsubscribe()
	doc.SetRootProperty("--brutal-accent", "#FF0000")
	assert.Len(t, changes, 3)
}

func TestStyleElementsTrackCreationOrder(t *testing.T) {
	doc := New()
	doc.UpsertStyle("b", "b{}")
	doc.UpsertStyle("a", "a{}")
	doc.UpsertStyle("b", "b2{}")

	assert.Equal(t, []StyleElement{{Scope: "b", CSS: "b2{}"}, {Scope: "a", CSS: "a{}"}}, doc.StyleElements())

	doc.RemoveStyle("b")
	_, ok := doc.Style("b")
	assert.False(t, ok)
	assert.Len(t, doc.StyleElements(), 1)
}

func TestSnapshotReplaysState(t *testing.T) {
	doc := New()
	doc.SetRootProperty("--brutal-black", "#000")
	doc.UpsertStyle("s", ".s:hover { }")

	assert.Equal(t, []Change{
		{Type: ChangeRootProperty, Name: "--brutal-black", Value: "#000"},
		{Type: ChangeStyleUpsert, ID: "s", CSS: ".s:hover { }"},
	}, doc.Snapshot())
}

func TestRenderHead(t *testing.T) {
	doc := New()
	doc.SetRootProperty("--brutal-black", "#000")
	doc.UpsertStyle("brutal-u-1", ".x { content: \"</style>\"; }")

	head := doc.RenderHead()
	assert.Contains(t, head, "<style data-brutal-theme>\n:root {\n  --brutal-black: #000;\n}\n</style>")
	assert.Contains(t, head, `<style data-brutal-utilities="brutal-u-1">`)
	assert.Contains(t, head, `<\/style>`)
	assert.Empty(t, New().RenderHead())
}
