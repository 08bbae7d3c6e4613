package schema

// ComicTable represents the 'core.comic' table
type ComicTable struct {
	Table        string
	ID           string
	Title        string
	Editorial    string
	PDFPath      string
	IsCollection string
	Family       string
	CoverURL     string
	UploaderID   string
	CreatedAt    string
}

// Comic is the schema definition for core.comic
var Comic = ComicTable{
	Table:        "core.comic",
	ID:           "id",
	Title:        "title",
	Editorial:    "editorial",
	PDFPath:      "pdfpath",
	IsCollection: "iscollection",
	Family:       "family",
	CoverURL:     "coverurl",
	UploaderID:   "uploaderid",
	CreatedAt:    "createdat",
}

func (t ComicTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Editorial, t.PDFPath, t.IsCollection,
		t.Family, t.CoverURL, t.UploaderID, t.CreatedAt,
	}
}
