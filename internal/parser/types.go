package parser

type FileKind string

const (
	Source   FileKind = "source"
	Manifest FileKind = "manifest"
)

type ScanFile struct {
	Kind FileKind
	Path string
}
