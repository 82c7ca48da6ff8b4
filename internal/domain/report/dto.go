package report

// Export is a generated archive file ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AttendanceShare is a day's attendance digest with a WhatsApp link.
type AttendanceShare struct {
	Date    string `json:"date"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ProductionShare carries a single entry's report formatted for hand-off.
type ProductionShare struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Mailto   string `json:"mailto"`
	WhatsApp string `json:"whatsapp"`
}
