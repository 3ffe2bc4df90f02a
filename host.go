package wing

import "errors"

// PathPrompter asks the user for an output path. ok is false if the user
// cancelled.
type PathPrompter interface {
	PromptPath(title, defaultExt string) (path string, ok bool)
}

// Action is a named command the host shows in its menus.
type Action struct {
	Title string
	Run   func() error
}

// ErrCancelled is returned by actions the user cancelled.
var ErrCancelled = errors.New("cancelled")

// Tools returns the tool actions of the wing. "Make Sketches" writes the
// flattened panel outline and imports it through imp.
func (w *Wing) Tools(imp DrawingImporter) []Action {
	return []Action{{
		Title: "Make Sketches",
		Run: func() error {
			_, err := w.MakeSketches(imp, DefaultSketchOptions())
			return err
		},
	}}
}

// ContextActions returns the context menu actions of the wing.
// "Export Wing" asks for a file path and writes the export set there.
func (w *Wing) ContextActions(prompt PathPrompter, opts ExportOptions) []Action {
	return []Action{{
		Title: "Export Wing",
		Run: func() error {
			path, ok := prompt.PromptPath("Export Wing", ".stl")
			if !ok {
				return ErrCancelled
			}
			_, err := w.ExportFiles(path, opts)
			return err
		},
	}}
}
