package sink

import "github.com/matzehuels/flexlayout/pkg/document"

// RenderJSON encodes the layout as indented JSON.
func RenderJSON(l document.Layout) ([]byte, error) {
	return document.MarshalLayout(l)
}
