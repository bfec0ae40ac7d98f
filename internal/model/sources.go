package model

// FileDescription is one hit from the native file-search collaborator.
type FileDescription struct {
	Filename string
	Path     string
	Kind     string
	Location string
}

// Bookmark is a title/url pair extracted from a browser profile.
type Bookmark struct {
	Title string
	URL   string
}

// RepoResult is one hit from the remote repository search.
type RepoResult struct {
	FullName    string
	URL         string
	Description string
	Stars       int
}

// AppEntry is one installed application as enumerated by the OS
// collaborator.
type AppEntry struct {
	Name string
	Path string
}
