package chat

// Request captures a single chat turn. Location is accepted for future
// geolocation-aware prompts but unused by the current responder.
type Request struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}

// Response is serialized back to API consumers.
type Response struct {
	Response string `json:"response"`
}

// Config wires runtime settings for the responder domain.
type Config struct {
	Model       string
	Temperature float32
	Prompt      string
}
