// Package icons builds the icon categories.
//
// Each category lists the icons of one upstream set and hands the list to the
// shared gate, fetch and materialize steps:
//
//   - wiki-icons: every image linked from the wiki file listing, written to img/
//   - script-tool-icons: an icon per role in data/roles.json
//   - pocket-grimoire-icons: the images named in the pocket grimoire character list
//   - extra-icons: the files of a directory in a GitHub repository
//
// All icons are resized to fit the configured size and stored as PNG.
package icons
