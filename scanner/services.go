package scanner

// commonPorts maps well-known port numbers to canonical service names.
// Used for display only; no probing is involved in the lookup.
var commonPorts = map[int]string{
	20:   "FTP Data",
	21:   "FTP Control",
	22:   "SSH",
	23:   "Telnet",
	25:   "SMTP",
	53:   "DNS",
	80:   "HTTP",
	110:  "POP3",
	143:  "IMAP",
	443:  "HTTPS",
	3306: "MySQL",
	3389: "RDP",
}

// ServiceName returns the canonical service name for a well-known port,
// or "Unknown" for anything not in the table.
func ServiceName(port int) string {
	if name, ok := commonPorts[port]; ok {
		return name
	}
	return "Unknown"
}
