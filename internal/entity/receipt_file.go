package entity

// SourceFile identifies one candidate receipt file found during ingestion.
type SourceFile struct {
	// Path is the full path used to read the file.
	Path string `json:"path"`
	// Name is the base name including extension.
	Name string `json:"name"`
	// Ext is the normalized (lowercase, dotless) extension.
	Ext string `json:"ext"`
}
