// Package vfs locates resource data on disk and inside archives. It supplies
// the stream-level layer below the fork package: opening a file's data or
// resource fork from the host filesystem, unwrapping the two legacy
// cross-platform encapsulation formats (AppleSingle/AppleDouble companions
// and MacBinary single files), and resolving forks inside zip archives.
//
// It also provides DirSource, a flat-namespace passthrough that serves
// resources directly from files named <TYPE>/<num> in any fs.FS tree.
package vfs
