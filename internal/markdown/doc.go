// Package markdown discovers exercise files on disk and splits them into the
// exam sections the extractor turns into question records. Discovery is
// fs.FS-based so tests can run against in-memory filesystems.
package markdown
