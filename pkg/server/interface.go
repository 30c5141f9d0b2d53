/*
Package server implements msgpack IPC for the wordlearn completer.

Clients write msgpack-encoded requests to stdin and read one msgpack
response per request from stdout. The server first writes a status message
so clients know it is ready:

	{"status": "ready"}

Every request carries an ID and an action. Completion requests:

	{"id": "req_001", "a": "complete", "p": "te", "l": 5}

are answered with suggestions ranked by learned frequency:

	{"id": "req_001", "s": [{"w": "test", "r": 1, "f": 4, "p": 0.4}], "c": 1, "t": 12}

where r is the 1-based rank, f the raw count, p the probability among all
matches of the prefix and t the time taken in microseconds.

Training requests feed a passage to the completer:

	{"id": "req_002", "a": "train", "x": "Hello, this is a test."}

The remaining actions are "stats", which reports vocabulary statistics, and
"vocab", which lists learned words under a prefix from a patricia snapshot.
An empty action is treated as "complete".

Failures are answered with an error message and the server keeps running:

	{"id": "req_003", "e": "Unknown action: nope", "c": 400}
*/
package server

const (
	ActionComplete = "complete"
	ActionTrain    = "train"
	ActionStats    = "stats"
	ActionVocab    = "vocab"
)

// Request is the single inbound message type; fields are used per action
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Text   string `msgpack:"x,omitempty"`
}

// StatusResponse - readiness message sent once on start
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// CompletionSuggestion - one ranked word
type CompletionSuggestion struct {
	Word        string  `msgpack:"w"`
	Rank        uint16  `msgpack:"r"`
	Frequency   int     `msgpack:"f"`
	Probability float64 `msgpack:"p"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// TrainResponse - training response, Words is how many word occurrences were added
type TrainResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
}

// StatsResponse - vocabulary statistics
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// VocabEntry - a learned word and its raw count
type VocabEntry struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// VocabResponse - words under a prefix, most frequent first
type VocabResponse struct {
	ID    string       `msgpack:"id"`
	Words []VocabEntry `msgpack:"words"`
	Count int          `msgpack:"c"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
