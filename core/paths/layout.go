// Package paths derives the on-disk layout of the assets tree.
//
// Every component receives its directories from a Layout instead of reading a
// global; the cache root is configuration like anything else.
package paths

import "path/filepath"

// Config holds the local directories used by a run.
type Config struct {
	// Out is the assets directory everything is written to.
	Out string `mapstructure:"out" default:"./assets"`
	// ExtraScripts is the directory of locally authored script records.
	ExtraScripts string `mapstructure:"extra_scripts" default:"./extra_scripts"`
	// HomebrewDir is the directory of homebrew script definitions.
	HomebrewDir string `mapstructure:"homebrew_dir" default:"./homebrew"`
}

// Layout is the directory tree below the assets directory.
type Layout struct {
	Root string
}

// New returns the layout rooted at root.
func New(root string) Layout {
	return Layout{Root: root}
}

// DataDir holds raw JSON game data.
func (l Layout) DataDir() string { return filepath.Join(l.Root, "data") }

// ImgDir holds wiki images.
func (l Layout) ImgDir() string { return filepath.Join(l.Root, "img") }

// IconsDir holds character icons.
func (l Layout) IconsDir() string { return filepath.Join(l.Root, "icons") }

// IconFile is the normalized icon of a character.
func (l Layout) IconFile(id string) string {
	return filepath.Join(l.IconsDir(), "Icon_"+id+".png")
}

// StaticDir holds files served verbatim, including the manifest.
func (l Layout) StaticDir() string { return filepath.Join(l.Root, "static") }

// ScriptsDir holds individually downloaded scripts.
func (l Layout) ScriptsDir() string { return filepath.Join(l.StaticDir(), "scripts") }

// ManifestFile is the merged script manifest.
func (l Layout) ManifestFile() string { return filepath.Join(l.StaticDir(), "scripts.json") }

// HomebrewFile is the homebrew override file.
func (l Layout) HomebrewFile() string { return filepath.Join(l.Root, "homebrew", "homebrews.json") }

// Published lists the directories mirrored to object storage.
func (l Layout) Published() []string {
	return []string{l.DataDir(), l.ImgDir(), l.IconsDir(), l.StaticDir()}
}
