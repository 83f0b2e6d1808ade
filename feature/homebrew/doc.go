// Package homebrew manages homebrew scripts.
//
// Homebrew definitions are custom-script JSON files authored by hand and kept in a
// directory: a list whose "_meta" entry names the script, followed by characters
// given either as official ids or as full objects with their own icon.
//
// Running the homebrew category downloads the icons of those characters and saves
// the definitions as overrides in homebrews.json. The script manifest later reads
// the overrides back through Store.Load; they take precedence over every other source.
package homebrew
