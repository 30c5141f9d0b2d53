package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordlearn/internal/logger"
	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/bastiangx/wordlearn/pkg/config"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

// statsInterval is how many requests pass between debug stats dumps
const statsInterval int64 = 100

// Server handles the IPC for word completions. The completer is not safe
// for concurrent use, so every call into it goes through mu.
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	mu           sync.Mutex
	requestCount atomic.Int64
}

// NewServer creates a new completion server using stdin/stdout for IPC
func NewServer(completer suggest.ICompleter, cfg *config.Config) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w
func NewServerWithIO(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	writer := bufio.NewWriter(w)
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    writer,
		encoder:   msgpack.NewEncoder(writer),
		logger:    logger.New("ipc"),
	}
}

// Start announces readiness and serves requests until the input ends.
// A request that is valid msgpack but not a valid Request is answered with
// an error; input that is not msgpack at all stops the server.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client disconnected (EOF)")
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to decode request stream: %w", err)
		}

		var request Request
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			s.logger.Errorf("Unmarshaling request: %v", err)
			if err := s.send(CompletionError{Error: "Invalid msgpack request", Code: 400}); err != nil {
				return err
			}
			continue
		}

		if err := s.send(s.HandleRequest(request)); err != nil {
			return err
		}
	}
}

// HandleRequest dispatches one request and returns the response to send.
// It is safe to call from several goroutines.
func (s *Server) HandleRequest(request Request) any {
	if count := s.requestCount.Add(1); count%statsInterval == 0 {
		s.logger.Debug("Periodic stats", "requests", count, "stats", s.stats())
	}

	switch request.Action {
	case ActionComplete, "":
		return s.handleComplete(request)
	case ActionTrain:
		return s.handleTrain(request)
	case ActionStats:
		return StatsResponse{ID: request.ID, Stats: s.stats()}
	case ActionVocab:
		return s.handleVocab(request)
	default:
		return newError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleComplete validates the prefix against the server bounds, clamps
// the limit and returns the ranked suggestions.
func (s *Server) handleComplete(request Request) any {
	cfg := s.config.Server
	prefix := utils.FoldPrefix(request.Prefix, s.config.Trainer.FoldPrefix)

	prefixLen := utf8.RuneCountInString(prefix)
	if prefixLen < cfg.MinPrefix {
		s.logger.Debug("Prefix too short", "prefix", prefix)
		return newError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", cfg.MinPrefix), 400)
	}
	if prefixLen > cfg.MaxPrefix {
		s.logger.Debug("Prefix too long", "prefix", prefix)
		return newError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", cfg.MaxPrefix), 400)
	}

	limit := request.Limit
	if limit < 1 {
		limit = cfg.DefaultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	start := time.Now()
	s.mu.Lock()
	suggestions := s.completer.Suggest(prefix, limit)
	s.mu.Unlock()
	elapsed := time.Since(start)

	s.logger.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	result := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		result[i] = CompletionSuggestion{
			Word:        sg.Word,
			Rank:        uint16(i + 1),
			Frequency:   sg.Frequency,
			Probability: sg.Probability,
		}
	}

	return CompletionResponse{
		ID:          request.ID,
		Suggestions: result,
		Count:       len(result),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) handleTrain(request Request) any {
	s.mu.Lock()
	before := s.completer.Stats()["totalWords"]
	s.completer.Train(request.Text)
	after := s.completer.Stats()["totalWords"]
	s.mu.Unlock()

	s.logger.Debug("Trained", "id", request.ID, "words", after-before)
	return TrainResponse{ID: request.ID, Status: "ok", Words: after - before}
}

// handleVocab lists words from a patricia snapshot of the vocabulary.
// Only completers that can export an index support it.
func (s *Server) handleVocab(request Request) any {
	indexer, ok := s.completer.(interface{ Index() *patricia.Trie })
	if !ok {
		return newError(request.ID, "Vocabulary export not supported", 501)
	}

	prefix := utils.FoldPrefix(request.Prefix, s.config.Trainer.FoldPrefix)

	s.mu.Lock()
	idx := indexer.Index()
	s.mu.Unlock()

	entries := []VocabEntry{}
	for _, sg := range suggest.SearchIndex(idx, prefix, 0) {
		entries = append(entries, VocabEntry{Word: sg.Word, Frequency: sg.Frequency})
	}
	if request.Limit > 0 && len(entries) > request.Limit {
		entries = entries[:request.Limit]
	}
	return VocabResponse{ID: request.ID, Words: entries, Count: len(entries)}
}

func (s *Server) stats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completer.Stats()
}

// send encodes one response and flushes it so the client sees it at once
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func newError(id, message string, code int) CompletionError {
	return CompletionError{ID: id, Error: message, Code: code}
}
