package uploads

// Upload describes a stored file.
type Upload struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// File is a stored file's content.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
