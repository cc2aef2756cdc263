package ninja

import (
	"reflect"
	"testing"
)

func TestDocumentAppendOrder(t *testing.T) {
	doc := NewDocument()
	ret := doc.
		Variable("cflags", "-Wall").
		Rule("cc", "cc $in -o $out", RuleOptions{}).
		Build([]string{"foo.o"}, "cc", []string{"foo.c"}, EdgeOptions{}).
		Raw("# trailing")

	if ret != doc {
		t.Fatal("append methods must return the same document for chaining")
	}

	nodes := doc.Nodes()
	if len(nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(nodes))
	}
	if _, ok := nodes[0].(Binding); !ok {
		t.Errorf("node 0: expected Binding, got %T", nodes[0])
	}
	if _, ok := nodes[1].(Rule); !ok {
		t.Errorf("node 1: expected Rule, got %T", nodes[1])
	}
	if _, ok := nodes[2].(Edge); !ok {
		t.Errorf("node 2: expected Edge, got %T", nodes[2])
	}
	if raw, ok := nodes[3].(RawLine); !ok || raw.Text != "# trailing" {
		t.Errorf("node 3: expected RawLine %q, got %#v", "# trailing", nodes[3])
	}
}

func TestDocumentAcceptsDuplicatesAndUnknownRules(t *testing.T) {
	doc := NewDocument().
		Variable("cflags", "-Wall").
		Variable("cflags", "-O2").
		Build([]string{"foo"}, "no_such_rule", nil, EdgeOptions{})
	if len(doc.Nodes()) != 3 {
		t.Fatalf("expected all appends to be accepted, got %d nodes", len(doc.Nodes()))
	}
}

func TestPreamble(t *testing.T) {
	doc := NewDocument()
	if got := doc.Preamble(); len(got) != 0 {
		t.Fatalf("unconfigured document should have no preamble, got %v", got)
	}

	doc.RequiredVersion = "1.7"
	doc.BuildDir = "dist"
	want := []Node{
		Binding{Name: "ninja_required_version", Value: "1.7"},
		Binding{Name: "builddir", Value: "dist"},
	}
	if got := doc.Preamble(); !reflect.DeepEqual(got, want) {
		t.Fatalf("preamble = %#v, want %#v", got, want)
	}
}

func TestPostamble(t *testing.T) {
	doc := NewDocument()
	if got := doc.Postamble(); len(got) != 0 {
		t.Fatalf("unconfigured document should have no postamble, got %v", got)
	}

	doc.Defaults = []string{"foo", "bar"}
	want := []Node{RawLine{Text: "default foo bar"}}
	if got := doc.Postamble(); !reflect.DeepEqual(got, want) {
		t.Fatalf("postamble = %#v, want %#v", got, want)
	}
}

func TestConvenienceAppenders(t *testing.T) {
	doc := NewDocument().
		Comment("generated").
		Newline().
		Include("rules.ninja").
		Subninja("sub/build.ninja").
		Pool("link", 4)

	want := []Node{
		RawLine{Text: "# generated"},
		RawLine{Text: ""},
		RawLine{Text: "include rules.ninja"},
		RawLine{Text: "subninja sub/build.ninja"},
		RawLine{Text: "pool link"},
		Binding{Name: "depth", Value: "4", Indent: 1},
	}
	if got := doc.Nodes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("nodes = %#v, want %#v", got, want)
	}
}
