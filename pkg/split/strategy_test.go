// pkg/split/strategy_test.go
package split

import "testing"

func TestClassify(t *testing.T) {
	cases := map[string]Class{
		"doc.pdf":        ClassPaged,
		"DOC.PDF":        ClassPaged,
		"notes.txt":      ClassText,
		"app.log":        ClassText,
		"data.csv":       ClassText,
		"conf.json":      ClassText,
		"readme.md":      ClassText,
		"image.iso":      ClassBinary,
		"noextension":    ClassBinary,
		"weird.pdf.bak":  ClassBinary,
		"/a/b/movie.mkv": ClassBinary,
	}
	for path, want := range cases {
		if got := Classify(path); got != want {
			t.Errorf("Classify(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestClassStrings(t *testing.T) {
	if ClassBinary.String() != "binary" || ClassText.String() != "text" || ClassPaged.String() != "paged" {
		t.Error("unexpected class names")
	}
}

func TestSplitterSelection(t *testing.T) {
	if _, ok := splitterFor(ClassPaged).(pagedSplitter); !ok {
		t.Error("paged class should select the paged splitter")
	}
	// Text has no behavioral difference from binary
	if _, ok := splitterFor(ClassText).(binarySplitter); !ok {
		t.Error("text class should select the binary splitter")
	}
	if _, ok := splitterFor(ClassBinary).(binarySplitter); !ok {
		t.Error("binary class should select the binary splitter")
	}
}
