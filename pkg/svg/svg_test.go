package svg

import (
	"sync"
	"testing"
)

func TestElementAttributesKeepOrder(t *testing.T) {
	el := NewElement("path")
	el.SetAttribute("class", "sawtooth")
	el.SetAttribute("stroke", "black")
	el.SetAttribute("fill", "none")
	el.SetAttribute("stroke", "red")

	attrs := el.Attributes()
	want := []Attr{{"class", "sawtooth"}, {"stroke", "red"}, {"fill", "none"}}
	if len(attrs) != len(want) {
		t.Fatalf("got %d attributes, want %d", len(attrs), len(want))
	}
	for i := range want {
		if attrs[i] != want[i] {
			t.Errorf("attr[%d] = %+v, want %+v", i, attrs[i], want[i])
		}
	}

	if v, ok := el.Attribute("stroke"); !ok || v != "red" {
		t.Errorf("Attribute(stroke) = %q, %v", v, ok)
	}
	if _, ok := el.Attribute("d"); ok {
		t.Error("Attribute(d) should be unset")
	}
}

func TestElementStyle(t *testing.T) {
	el := NewElement("path")
	if el.Hidden() {
		t.Error("new element should be visible")
	}
	if el.StyleString() != "" {
		t.Errorf("StyleString() = %q, want empty", el.StyleString())
	}

	el.SetStyle("opacity", "0")
	el.SetStyle("mix-blend-mode", "multiply")
	if !el.Hidden() {
		t.Error("element with opacity 0 should be hidden")
	}
	if got, want := el.StyleString(), "mix-blend-mode: multiply; opacity: 0"; got != want {
		t.Errorf("StyleString() = %q, want %q", got, want)
	}

	el.SetStyle("opacity", "0.5")
	if el.Hidden() {
		t.Error("element with opacity 0.5 should be visible")
	}
}

func TestDocumentAppendOrder(t *testing.T) {
	doc := NewDocument(800, 600)
	a, b := NewElement("path"), NewElement("path")

	if err := doc.AppendChild(a); err != nil {
		t.Fatal(err)
	}
	if err := doc.AppendChild(b); err != nil {
		t.Fatal(err)
	}
	if err := doc.AppendChild(nil); err != ErrNilElement {
		t.Errorf("AppendChild(nil) = %v, want ErrNilElement", err)
	}

	children := doc.Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("children out of order: %v", children)
	}

	a.SetStyle("opacity", "0")
	if doc.Len() != 2 || doc.VisibleLen() != 1 {
		t.Errorf("Len/VisibleLen = %d/%d, want 2/1", doc.Len(), doc.VisibleLen())
	}
}

func TestDocumentConcurrentUse(t *testing.T) {
	doc := NewDocument(100, 100)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				el := NewElement("path")
				el.SetAttribute("d", "M0 0")
				_ = doc.AppendChild(el)
				el.SetStyle("opacity", "0")
				_ = doc.VisibleLen()
			}
		}()
	}
	wg.Wait()
	if doc.Len() != 400 {
		t.Errorf("Len() = %d, want 400", doc.Len())
	}
}
