package models

// Upload is an image file received from a client, read into memory.
type Upload struct {
	Filename    string
	ContentType string
	// Ext is the file extension matching the decoded format, with a leading dot.
	Ext  string
	Data []byte
}
