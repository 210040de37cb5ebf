package output

import (
	"encoding/json"

	"github.com/google/uuid"
)

// JSONFormatter serializes the return document as pretty-printed JSON,
// assigning a fresh run id when the document has none.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(doc *ReturnDocument) ([]byte, error) {
	if doc.RunID == "" {
		doc.RunID = uuid.NewString()
	}
	return json.MarshalIndent(doc, "", "  ")
}

// GetFormatterByName fetches a formatter by flag value; nil when unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	}
	return nil
}
