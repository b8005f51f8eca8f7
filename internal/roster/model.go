package roster

// Row is one attendee record. Values are trimmed of surrounding
// whitespace at load time and never mutated afterwards.
type Row struct {
	Name    string `json:"name"`
	Webinar string `json:"webinar_name"`
	Date    string `json:"webinar_date"`
}
