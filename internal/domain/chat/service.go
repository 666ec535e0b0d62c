package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jannashin6/docease/internal/platform/assistant"
	"github.com/jannashin6/docease/internal/platform/blobstore"
)

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrAssistantBusy = errors.New("the assistant is still answering the previous message")
)

// Turn is the outcome of one user message: the stored user turn and the
// bot's answer.
type Turn struct {
	User *Message `json:"user"`
	Bot  *Message `json:"bot"`
}

// Service owns the chat transcript. The transcript is append-only for the
// session and written to the blob store in full after every change.
type Service struct {
	store       blobstore.Store
	engine      *assistant.Engine
	typingDelay time.Duration
	logger      zerolog.Logger

	mu      sync.Mutex
	history []Message
	busy    bool

	now   func() time.Time
	newID func() string
}

// NewService loads the transcript from the blob store. Missing or corrupt
// stored data is replaced with an empty history, and an empty history is
// seeded with the assistant's greeting.
func NewService(ctx context.Context, store blobstore.Store, engine *assistant.Engine, typingDelay time.Duration, logger zerolog.Logger) *Service {
	s := &Service{
		store:       store,
		engine:      engine,
		typingDelay: typingDelay,
		logger:      logger,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
	s.history = s.loadHistory(ctx)
	if len(s.history) == 0 {
		s.history = []Message{{
			ID:        s.newID(),
			Sender:    SenderBot,
			Content:   assistant.Greeting,
			Timestamp: s.now().UTC(),
		}}
		s.persist(ctx)
	}
	return s
}

// SetNowFunc overrides the clock, for tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.now = now
}

func (s *Service) loadHistory(ctx context.Context) []Message {
	data, err := s.store.Load(ctx)
	if errors.Is(err, blobstore.ErrBlobNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load chat history, starting empty")
		return nil
	}
	messages, err := DecodeHistory(data)
	if err != nil {
		s.logger.Error().Err(err).Msg("corrupt chat history, starting empty")
		return nil
	}
	return messages
}

// persist writes the full transcript; storage faults are logged and never
// surfaced to the caller.
func (s *Service) persist(ctx context.Context) {
	data, err := EncodeHistory(s.history)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode chat history")
		return
	}
	if err := s.store.Save(ctx, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to save chat history")
	}
}

// History returns a snapshot of the transcript in order.
func (s *Service) History(_ context.Context) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Send processes one user turn: the user message is appended immediately,
// the assistant's reply after the typing delay. Only one turn may be in
// flight at a time; concurrent sends get ErrAssistantBusy. Any processing
// fault is substituted with an apology bot turn rather than an error.
func (s *Service) Send(ctx context.Context, text string) (*Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrAssistantBusy
	}
	s.busy = true

	userMsg := s.append(ctx, Message{
		ID:        s.newID(),
		Sender:    SenderUser,
		Content:   text,
		Timestamp: s.now().UTC(),
	})
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	reply := s.engine.Respond(ctx, text)

	botMsg := Message{
		ID:       s.newID(),
		Sender:   SenderBot,
		Content:  reply.Content,
		Keywords: reply.Keywords,
		DoctorID: reply.DoctorID,
	}
	if len(botMsg.Keywords) == 0 {
		botMsg.Keywords = nil
	}

	// Simulated thinking delay; a cancelled turn degrades to an apology
	// rather than a lost reply.
	select {
	case <-time.After(s.typingDelay):
	case <-ctx.Done():
		s.logger.Warn().Err(ctx.Err()).Msg("chat turn interrupted")
		botMsg = Message{
			ID:      s.newID(),
			Sender:  SenderBot,
			Content: assistant.Apology,
		}
	}
	botMsg.Timestamp = s.now().UTC()

	s.mu.Lock()
	stored := s.append(context.WithoutCancel(ctx), botMsg)
	s.mu.Unlock()

	return &Turn{User: userMsg, Bot: stored}, nil
}

// append adds a message and persists; callers hold s.mu.
func (s *Service) append(ctx context.Context, m Message) *Message {
	s.history = append(s.history, m)
	s.persist(ctx)
	return &s.history[len(s.history)-1]
}
