package models

// Request describes one play request. Exactly one of the fields is
// normally set: Station for an explicit acronym ("BBC"), Utterance for
// free text to be matched ("play the npr news"). Both empty means
// "play the default station".
type Request struct {
	Station   string `json:"station"`
	Utterance string `json:"utterance"`
}

// Empty reports whether the request names neither a station nor an utterance.
func (r Request) Empty() bool {
	return r.Station == "" && r.Utterance == ""
}
