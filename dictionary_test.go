package stacklang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryDefineAndFind(t *testing.T) {
	d := NewDictionary()
	d.Define("foo", func(*Context) {}, false)
	entry := d.Find("foo")
	require.NotNil(t, entry)
	assert.Equal(t, "foo", entry.Name)
	assert.Nil(t, d.Find("bar"))
}

func TestDictionaryShadowing(t *testing.T) {
	d := NewDictionary()
	first := d.Define("x", func(*Context) {}, false)
	second := d.Define("x", func(*Context) {}, false)
	assert.Same(t, second, d.Find("x"))
	assert.Same(t, first, second.Previous)
}

func TestDictionaryAnonymousEntryNotFindable(t *testing.T) {
	d := NewDictionary()
	anon := d.Define("", func(*Context) {}, false)
	assert.Nil(t, d.Find(""))
	assert.NotSame(t, anon, d.latest)
}

func TestDictionaryCoreWordSurvivesShadowing(t *testing.T) {
	d := NewDictionary()
	d.BeginCoreDefinitions()
	core := func(*Context) {}
	d.Define("dup", core, false)
	d.EndCoreDefinitions()

	d.Define("dup", func(*Context) {}, false) // user shadow, post core phase
	assert.NotNil(t, d.CoreWord("dup"))
	assert.Same(t, d.Find("dup"), d.latest)
}

func TestDictionaryDuplicateCoreWordPanics(t *testing.T) {
	d := NewDictionary()
	d.BeginCoreDefinitions()
	d.Define("dup", func(*Context) {}, false)
	assert.Panics(t, func() {
		d.Define("dup", func(*Context) {}, false)
	})
}

func TestDictEntryCompileAndAt(t *testing.T) {
	e := &DictEntry{}
	idx := e.Compile(LitItem(Number(42)))
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, e.Len())
	item := e.At(0)
	assert.False(t, item.IsCall())
	assert.Equal(t, Number(42), item.Literal)
}

func TestDictEntryAtOutOfRange(t *testing.T) {
	e := &DictEntry{}
	item := e.At(5)
	assert.False(t, item.IsCall())
	assert.Nil(t, item.Literal)
}
