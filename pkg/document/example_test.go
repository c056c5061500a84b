package document_test

import (
	"fmt"

	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/flex"
)

func ExampleCompute() {
	doc, err := document.Parse([]byte(`
[viewport]
width = 200
height = 40

[root]
name = "toolbar"
orientation = "row"
spacing = 10

[[root.children]]
name = "back"
width = 50
height = 20
valign = "center"

[[root.children]]
name = "title"
width = 50
height = 20

[[root.children]]
name = "menu"
width = 50
height = 20
`), document.FormatTOML)
	if err != nil {
		panic(err)
	}

	l, err := document.Compute(doc, flex.Size{})
	if err != nil {
		panic(err)
	}
	for _, b := range l.Boxes {
		fmt.Printf("%-8s x=%g y=%g w=%g h=%g\n", b.ID, b.X, b.Y, b.Width, b.Height)
	}
	// Output:
	// toolbar  x=0 y=0 w=200 h=40
	// back     x=0 y=10 w=60 h=20
	// title    x=70 y=0 w=60 h=40
	// menu     x=140 y=0 w=60 h=40
}
