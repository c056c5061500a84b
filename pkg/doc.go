// Package pkg holds the libraries behind flexlayout.
//
// # Overview
//
// Flexlayout arranges trees of boxes along one axis at a time. A row or
// column container measures its children, shares the leftover space among
// the flexible ones and commits a rectangle to each. The pkg directory is
// organized bottom-up:
//
//  1. [flex] - the measure/arrange algorithm and its axis adapter
//  2. [box] - a concrete element tree driven by flex containers
//  3. [document] - TOML/JSON documents, validation and computed layouts
//  4. [sink] - SVG, text, DOT, JSON, PNG and PDF output
//  5. [pipeline] - orchestration (parse → layout → render) with caching
//
// Supporting packages: [cache] (file, redis and null stores), [errors]
// (coded errors), [observability] (hooks) and [buildinfo].
//
// # Data Flow
//
//	TOML / JSON document
//	         ↓
//	    [document] package (parse + validate)
//	         ↓
//	    [box] + [flex] packages (measure, arrange)
//	         ↓
//	    [sink] package (render)
//	         ↓
//	SVG/PNG/PDF/TXT/DOT/JSON output
//
// # Quick Start
//
//	doc, err := document.ReadFile("window.toml")
//	if err != nil {
//	    return err
//	}
//	l, err := document.Compute(doc, flex.Size{})
//	svg := sink.RenderSVG(l, sink.WithLabels())
//
// [flex]: github.com/matzehuels/flexlayout/pkg/flex
// [box]: github.com/matzehuels/flexlayout/pkg/box
// [document]: github.com/matzehuels/flexlayout/pkg/document
// [sink]: github.com/matzehuels/flexlayout/pkg/sink
// [pipeline]: github.com/matzehuels/flexlayout/pkg/pipeline
// [cache]: github.com/matzehuels/flexlayout/pkg/cache
// [errors]: github.com/matzehuels/flexlayout/pkg/errors
// [observability]: github.com/matzehuels/flexlayout/pkg/observability
// [buildinfo]: github.com/matzehuels/flexlayout/pkg/buildinfo
package pkg
